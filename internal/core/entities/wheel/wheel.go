package wheel

import (
	"errors"
	"strings"

	"github.com/mwalzer/enigma/internal/core/entities/alphabet"
	"github.com/mwalzer/enigma/internal/core/entities/permutation"
)

var ErrInvalidNotch = errors.New("notches must be letters of the alphabet")

// Wheel is an immutable rotor definition: a named wiring plus the letters
// at which the wheel pushes its left neighbour over. A single definition
// is shared by any number of machines; the rotational state lives with
// the machine that mounts it.
type Wheel struct {
	Name   string
	Wiring permutation.Permutation
	Greek  bool

	notches [alphabet.Size]bool
}

var Blank Wheel // nolint: gochecknoglobals

func New(name, wiring, notches string) (Wheel, error) {
	perm, err := permutation.New(wiring)
	if err != nil {
		return Blank, err
	}
	w := Wheel{Name: name, Wiring: perm}
	for i := 0; i < len(notches); i++ {
		c := strings.ToUpper(notches)[i]
		if !alphabet.Valid(c) {
			return Blank, ErrInvalidNotch
		}
		w.notches[alphabet.Index(c)] = true
	}
	return w, nil
}

// NewGreek constructs one of the thin fourth wheels (BETA, GAMMA).
// Greek wheels carry no notch and never cause a turnover of their own.
func NewGreek(name, wiring string) (Wheel, error) {
	w, err := New(name, wiring, "")
	if err != nil {
		return Blank, err
	}
	w.Greek = true
	return w, nil
}

func MustNew(name, wiring, notches string) Wheel {
	w, err := New(name, wiring, notches)
	if err != nil {
		panic(err)
	}
	return w
}

func MustNewGreek(name, wiring string) Wheel {
	w, err := NewGreek(name, wiring)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Wheel) NotchAt(pos int) bool {
	return w.notches[alphabet.Mod(pos)]
}

func (w Wheel) Notches() string {
	letters := make([]byte, 0, 2)
	for i, notched := range w.notches {
		if notched {
			letters = append(letters, alphabet.Letter(i))
		}
	}
	return string(letters)
}

func (w Wheel) String() string {
	return w.Name
}
