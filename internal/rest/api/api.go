package api

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/mwalzer/enigma/internal/core/usecases/encodemessage"
)

type API struct {
	encoder encodemessage.UseCase
	clock   clockwork.Clock
	logger  *zerolog.Logger
	started time.Time
}

func New(
	encoder encodemessage.UseCase,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) *API {
	return &API{
		encoder: encoder,
		clock:   clock,
		logger:  logger,
		started: clock.Now(),
	}
}
