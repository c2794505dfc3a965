package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/mwalzer/enigma/internal/catalog"
)

func ValidateRotorName(fl validator.FieldLevel) bool {
	_, err := catalog.LookupRotor(fl.Field().String())
	return err == nil
}

func ValidateReflectorName(fl validator.FieldLevel) bool {
	_, err := catalog.LookupReflector(fl.Field().String())
	return err == nil
}
