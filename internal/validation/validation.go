package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/mwalzer/enigma/internal/validation/validators"
)

func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("rotor", validators.ValidateRotorName); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("reflector", validators.ValidateReflectorName); err != nil {
		return nil, err
	}
	return validate, nil
}
