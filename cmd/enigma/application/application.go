package application

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"github.com/mwalzer/enigma/cmd/enigma/components/server"
	"github.com/mwalzer/enigma/internal/core/usecases/encodemessage"
	"github.com/mwalzer/enigma/internal/metrics"
	"github.com/mwalzer/enigma/internal/rest"
	"github.com/mwalzer/enigma/internal/rest/api"
	"github.com/mwalzer/enigma/internal/validation"
)

type Builder struct {
	opts []fx.Option
}

func NewBuilder(opts ...fx.Option) *Builder {
	return &Builder{
		opts: opts,
	}
}

func (b *Builder) Add(opts ...fx.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *Builder) WithServer() *Builder {
	return b.Add(
		fx.Invoke(func(*server.Component) {}),
	)
}

func (b *Builder) Build() *fx.App {
	return fx.New(b.opts...)
}

var Module = fx.Module("application",
	fx.Provide(clockwork.NewRealClock),
	fx.Provide(validation.New),
	fx.Provide(metrics.New),
	fx.Provide(encodemessage.New),
	fx.Provide(api.New),
	fx.Provide(rest.NewRouter),
)
