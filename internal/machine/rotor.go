package machine

import (
	"github.com/mwalzer/enigma/internal/core/entities/alphabet"
	"github.com/mwalzer/enigma/internal/core/entities/permutation"
	"github.com/mwalzer/enigma/internal/core/entities/wheel"
)

// transform is the directional substitution contract shared by a mounted
// rotor and the reflector: forward carries the signal towards the
// reflector, backward carries it back out.
type transform interface {
	forward(x int) int
	backward(x int) int
}

// rotorSlot is a wheel mounted into a machine: the shared immutable
// definition plus the ring offset and rotational position owned by this
// machine alone. The effective wiring is the definition conjugated by
// net = (pos - ring) mod 26, recomputed whenever either changes.
var _ transform = (*rotorSlot)(nil)

type rotorSlot struct {
	wheel   wheel.Wheel
	ring    int
	pos     int
	mapping permutation.Permutation
}

func newRotorSlot(w wheel.Wheel) *rotorSlot {
	s := &rotorSlot{wheel: w}
	s.remap()
	return s
}

func (s *rotorSlot) remap() {
	s.mapping = s.wheel.Wiring.Shifted(alphabet.Mod(s.pos - s.ring))
}

func (s *rotorSlot) forward(x int) int {
	return s.mapping.Apply(x)
}

func (s *rotorSlot) backward(x int) int {
	return s.mapping.Invert(x)
}

func (s *rotorSlot) turn() {
	s.pos = alphabet.Mod(s.pos + 1)
	s.remap()
}

// atNotch reports whether the wheel currently sits at one of its
// turnover notches, before any pending turn of this keypress.
func (s *rotorSlot) atNotch() bool {
	return s.wheel.NotchAt(s.pos)
}

func (s *rotorSlot) setRing(ring int) {
	s.ring = ring
	s.remap()
}

func (s *rotorSlot) setPos(pos int) {
	s.pos = pos
	s.remap()
}
