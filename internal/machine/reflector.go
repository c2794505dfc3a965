package machine

import (
	"github.com/mwalzer/enigma/internal/core/entities/reflector"
)

// reflectorSlot mounts a reflector into the signal path. Reflectors in
// this machine family carry no position or ring, so both directions are
// the same self-inverse substitution.
var _ transform = reflectorSlot{}

type reflectorSlot struct {
	def reflector.Reflector
}

func newReflectorSlot(def reflector.Reflector) reflectorSlot {
	return reflectorSlot{def: def}
}

func (s reflectorSlot) forward(x int) int {
	return s.def.Wiring.Apply(x)
}

func (s reflectorSlot) backward(x int) int {
	return s.forward(x)
}
