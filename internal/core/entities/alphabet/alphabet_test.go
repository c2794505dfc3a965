package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwalzer/enigma/internal/core/entities/alphabet"
)

func TestValid(t *testing.T) {
	tests := []struct {
		char byte
		want bool
	}{
		{'A', true},
		{'M', true},
		{'Z', true},
		{'a', false},
		{'z', false},
		{'@', false},
		{'[', false},
		{' ', false},
		{'1', false},
	}
	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			assert.Equal(t, tt.want, alphabet.Valid(tt.char))
		})
	}
}

func TestIndexLetterRoundtrip(t *testing.T) {
	for i := 0; i < alphabet.Size; i++ {
		assert.Equal(t, i, alphabet.Index(alphabet.Letter(i)))
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{25, 25},
		{26, 0},
		{27, 1},
		{-1, 25},
		{-26, 0},
		{-27, 25},
		{52, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, alphabet.Mod(tt.n))
	}
}
