package commander

import (
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/mwalzer/enigma/cmd/enigma/application"
	"github.com/mwalzer/enigma/cmd/enigma/build"
	"github.com/mwalzer/enigma/cmd/enigma/components/server"
)

type ServeCmd struct {
	HTTPListenAddress   string        `default:":3000" help:"Sets the address where the encoding API server listens for incoming http requests"` // nolint:lll
	HTTPReadTimeout     time.Duration `default:"5s"    help:"Sets the maximum duration to read the request body before timing out"`              // nolint:lll
	HTTPWriteTimeout    time.Duration `default:"5s"    help:"Sets the maximum duration to write a response after reading the request body"`      // nolint:lll
	HTTPShutdownTimeout time.Duration `default:"10s"   help:"Defines how long the server waits to gracefully close connections before exiting"`  // nolint:lll
}

func (c *ServeCmd) Run(_ *Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Supply(
				server.Config{
					HTTPListenAddress:   c.HTTPListenAddress,
					HTTPReadTimeout:     c.HTTPReadTimeout,
					HTTPWriteTimeout:    c.HTTPWriteTimeout,
					HTTPShutdownTimeout: c.HTTPShutdownTimeout,
				},
			),
			server.Module,
			fx.Invoke(func(logger *zerolog.Logger, _ *server.Component) {
				logger.Info().
					Str("version", build.Version).
					Str("commit", build.Commit).
					Str("built", build.Time).
					Str("address", c.HTTPListenAddress).
					Msg("Starting encoding API server")
			}),
		).
		WithServer().
		Build()
	app.Run()
	return nil
}
