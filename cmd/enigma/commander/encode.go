package commander

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/mwalzer/enigma/cmd/enigma/logging"
	"github.com/mwalzer/enigma/internal/core/usecases/encodemessage"
	"github.com/mwalzer/enigma/internal/metrics"
	"github.com/mwalzer/enigma/internal/settings"
	"github.com/mwalzer/enigma/internal/validation"
	"github.com/mwalzer/enigma/pkg/wartext"
)

type EncodeCmd struct {
	Rotors     []string `default:"I,II,III" help:"Selects the rotors to mount, listed left to right"`
	Reflector  string   `default:"UKWB"     help:"Selects the reflector to mount"`
	Rings      string   `default:""         help:"Sets the ring setting, one letter per rotor (defaults to all A)"`    // nolint:lll
	Ground     string   `default:""         help:"Sets the starting rotor positions, one letter per rotor (defaults to all A)"` // nolint:lll
	Plugboard  []string `help:"Defines the plugboard as pairs of letters, e.g. AB,CD"`
	DoubleStep bool     `default:"true" negatable:"" help:"Toggles the double-stepping of the middle rotor"`
	KeySheet   string   `type:"existingfile" help:"Reads the machine settings from a YAML key sheet instead of flags"` // nolint:lll
	Normalize  bool     `help:"Strips the message down to the letters A-Z before encoding, spelling punctuation as X"` // nolint:lll

	Message string `arg:"" help:"The message to encode"`
}

func (c *EncodeCmd) Run(globals *Globals) error {
	logResult, err := logging.Provide(logging.Config{
		LogLevel:  globals.LogLevel,
		LogOutput: globals.LogOutput,
	})
	if err != nil {
		return err
	}

	sheet, err := c.keySheet()
	if err != nil {
		return err
	}

	message := c.Message
	if c.Normalize {
		message = wartext.Normalize(message)
	}

	validate, err := validation.New()
	if err != nil {
		return err
	}

	uc := encodemessage.New(validate, metrics.New(), clockwork.NewRealClock(), logResult.Logger)
	resp, err := uc.Execute(context.TODO(), encodemessage.NewRequest(sheet, message))
	if err != nil {
		return err
	}

	fmt.Println(resp.Ciphertext) // nolint: forbidigo
	return nil
}

func (c *EncodeCmd) keySheet() (settings.Settings, error) {
	if c.KeySheet != "" {
		return settings.Load(c.KeySheet)
	}
	return settings.Settings{
		Rotors:        c.Rotors,
		Reflector:     c.Reflector,
		RingSetting:   c.Rings,
		GroundSetting: c.Ground,
		Plugboard:     c.Plugboard,
		DoubleStep:    c.DoubleStep,
	}, nil
}
