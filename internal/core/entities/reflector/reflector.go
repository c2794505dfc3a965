package reflector

import (
	"errors"

	"github.com/mwalzer/enigma/internal/core/entities/permutation"
)

var ErrNotSelfInverse = errors.New("reflector wiring must be its own inverse")

// Reflector is an immutable reflector definition (Umkehrwalze). It folds
// the signal path back through the rotors, so its wiring must map every
// pair of letters onto each other. Thin variants pair with a Greek wheel
// to fit a 4-rotor stack.
type Reflector struct {
	Name   string
	Wiring permutation.Permutation
	Thin   bool
}

var Blank Reflector // nolint: gochecknoglobals

func New(name, wiring string) (Reflector, error) {
	perm, err := permutation.New(wiring)
	if err != nil {
		return Blank, err
	}
	if !perm.SelfInverse() {
		return Blank, ErrNotSelfInverse
	}
	return Reflector{Name: name, Wiring: perm}, nil
}

func NewThin(name, wiring string) (Reflector, error) {
	r, err := New(name, wiring)
	if err != nil {
		return Blank, err
	}
	r.Thin = true
	return r, nil
}

func MustNew(name, wiring string) Reflector {
	r, err := New(name, wiring)
	if err != nil {
		panic(err)
	}
	return r
}

func MustNewThin(name, wiring string) Reflector {
	r, err := NewThin(name, wiring)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Reflector) String() string {
	return r.Name
}
