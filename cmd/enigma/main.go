package main

import (
	"github.com/alecthomas/kong"
	"go.uber.org/fx"

	"github.com/mwalzer/enigma/cmd/enigma/application"
	"github.com/mwalzer/enigma/cmd/enigma/commander"
	"github.com/mwalzer/enigma/cmd/enigma/logging"
)

func main() {
	cli := commander.CLI{}
	ctx := kong.Parse(
		&cli,
		kong.Name("enigma"),
		kong.Description("Enigma M3/M4 rotor cipher machine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
	)

	builder := application.NewBuilder(
		fx.Supply(logging.Config{
			LogLevel:  cli.Globals.LogLevel,
			LogOutput: cli.Globals.LogOutput,
		}),
		fx.Provide(logging.Provide),
		fx.WithLogger(logging.FxLogger),
		application.Module,
	)

	if err := ctx.Run(&cli.Globals, builder); err != nil {
		ctx.FatalIfErrorf(err)
	}
}
