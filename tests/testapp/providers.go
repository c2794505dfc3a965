package testapp

import (
	"github.com/rs/zerolog"
)

func NoLogging() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
