package permutation

import (
	"errors"
	"strings"

	"github.com/mwalzer/enigma/internal/core/entities/alphabet"
)

var ErrInvalidWiring = errors.New("wiring is not a permutation of the alphabet")

// Permutation is an immutable bijection over the 26-letter alphabet.
// Both lookup directions are precomputed so that Apply and Invert are O(1).
type Permutation struct {
	forward  [alphabet.Size]int
	backward [alphabet.Size]int
}

var Blank Permutation // nolint: gochecknoglobals

func New(wiring string) (Permutation, error) {
	if len(wiring) != alphabet.Size {
		return Blank, ErrInvalidWiring
	}
	wiring = strings.ToUpper(wiring)
	p := Permutation{}
	var seen [alphabet.Size]bool
	for i := 0; i < alphabet.Size; i++ {
		c := wiring[i]
		if !alphabet.Valid(c) {
			return Blank, ErrInvalidWiring
		}
		out := alphabet.Index(c)
		if seen[out] {
			return Blank, ErrInvalidWiring
		}
		seen[out] = true
		p.forward[i] = out
		p.backward[out] = i
	}
	return p, nil
}

func MustNew(wiring string) Permutation {
	p, err := New(wiring)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Permutation) Apply(x int) int {
	return p.forward[x]
}

// Invert returns the unique letter whose forward image is x.
func (p Permutation) Invert(x int) int {
	return p.backward[x]
}

// Shifted conjugates the permutation by an offset n,
// yielding x -> (p(x+n) - n) mod 26. This single operation covers
// both the ring setting and the rotational position of a rotor.
func (p Permutation) Shifted(n int) Permutation {
	shifted := Permutation{}
	for x := 0; x < alphabet.Size; x++ {
		out := alphabet.Mod(p.forward[alphabet.Mod(x+n)] - n)
		shifted.forward[x] = out
		shifted.backward[out] = x
	}
	return shifted
}

func (p Permutation) SelfInverse() bool {
	for x := 0; x < alphabet.Size; x++ {
		if p.forward[p.forward[x]] != x {
			return false
		}
	}
	return true
}

func (p Permutation) String() string {
	letters := make([]byte, alphabet.Size)
	for i, out := range p.forward {
		letters[i] = alphabet.Letter(out)
	}
	return string(letters)
}
