package encodemessage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/mwalzer/enigma/internal/catalog"
	"github.com/mwalzer/enigma/internal/core/entities/wheel"
	"github.com/mwalzer/enigma/internal/machine"
	"github.com/mwalzer/enigma/internal/metrics"
	"github.com/mwalzer/enigma/internal/settings"
)

var ErrInvalidSettings = errors.New("invalid machine settings")

type UseCase struct {
	validate *validator.Validate
	metrics  *metrics.Collector
	clock    clockwork.Clock
	logger   *zerolog.Logger
}

func New(
	validate *validator.Validate,
	metrics *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		validate: validate,
		metrics:  metrics,
		clock:    clock,
		logger:   logger,
	}
}

type Request struct {
	settings settings.Settings
	message  string
}

func NewRequest(cfg settings.Settings, message string) Request {
	return Request{
		settings: cfg,
		message:  message,
	}
}

type Response struct {
	Ciphertext string
	// Positions is where the rotors stopped after the message,
	// letting a caller chain a follow-up message.
	Positions string
}

// Execute assembles a machine from the requested key sheet and runs the
// message through it. Every call operates a fresh machine, so requests
// never leak rotor positions into each other.
func (uc UseCase) Execute(_ context.Context, req Request) (Response, error) {
	if err := req.settings.Validate(uc.validate); err != nil {
		uc.metrics.EncodeErrors.Inc()
		return Response{}, fmt.Errorf("%w: %s", ErrInvalidSettings, err)
	}

	cfg, err := buildConfig(req.settings)
	if err != nil {
		uc.metrics.EncodeErrors.Inc()
		return Response{}, err
	}

	enigma, err := machine.New(cfg)
	if err != nil {
		uc.metrics.EncodeErrors.Inc()
		return Response{}, err
	}

	started := uc.clock.Now()
	ciphertext, err := enigma.Encode(req.message)
	if err != nil {
		uc.metrics.EncodeErrors.Inc()
		return Response{}, err
	}

	uc.metrics.EncodeDurations.Observe(uc.clock.Since(started).Seconds())
	uc.metrics.EncodedMessages.Inc()
	uc.metrics.EncodedCharacters.Add(float64(len(req.message)))
	uc.logger.Debug().
		Strs("rotors", req.settings.Rotors).
		Str("reflector", req.settings.Reflector).
		Int("length", len(req.message)).
		Msg("Encoded message")

	return Response{
		Ciphertext: ciphertext,
		Positions:  enigma.GroundSetting(),
	}, nil
}

func buildConfig(s settings.Settings) (machine.Config, error) {
	wheels := make([]wheel.Wheel, len(s.Rotors))
	for i, name := range s.Rotors {
		w, err := catalog.LookupRotor(name)
		if err != nil {
			return machine.Config{}, err
		}
		wheels[i] = w
	}
	refl, err := catalog.LookupReflector(s.Reflector)
	if err != nil {
		return machine.Config{}, err
	}
	return machine.Config{
		Rotors:        wheels,
		Reflector:     refl,
		RingSetting:   s.RingSetting,
		GroundSetting: s.GroundSetting,
		Plugboard:     s.Plugboard,
		DoubleStep:    s.DoubleStep,
	}, nil
}
