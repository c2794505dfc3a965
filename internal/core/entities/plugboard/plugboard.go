package plugboard

import (
	"errors"
	"sort"
	"strings"

	"github.com/mwalzer/enigma/internal/core/entities/alphabet"
)

var (
	ErrInvalidPair     = errors.New("a plugboard pair must be two distinct letters")
	ErrDuplicateLetter = errors.New("a letter may be plugged at most once")
)

// Plugboard is a symmetric exchange of letter pairs (Steckerbrett),
// applied both before and after the rotor pass. Letters without a cable
// pass through unchanged.
type Plugboard struct {
	wired [alphabet.Size]int
}

func New(pairs []string) (Plugboard, error) {
	pb := Plugboard{}
	for i := range pb.wired {
		pb.wired[i] = i
	}
	var used [alphabet.Size]bool
	for _, pair := range pairs {
		pair = strings.ToUpper(pair)
		if len(pair) != 2 || !alphabet.Valid(pair[0]) || !alphabet.Valid(pair[1]) || pair[0] == pair[1] {
			return Plugboard{}, ErrInvalidPair
		}
		a, b := alphabet.Index(pair[0]), alphabet.Index(pair[1])
		if used[a] || used[b] {
			return Plugboard{}, ErrDuplicateLetter
		}
		used[a], used[b] = true, true
		pb.wired[a], pb.wired[b] = b, a
	}
	return pb, nil
}

func MustNew(pairs []string) Plugboard {
	pb, err := New(pairs)
	if err != nil {
		panic(err)
	}
	return pb
}

func (pb Plugboard) Swap(x int) int {
	return pb.wired[x]
}

// Pairs reads the wired pairs back as two-letter strings, sorted by the
// lower letter of each pair.
func (pb Plugboard) Pairs() []string {
	pairs := make([]string, 0)
	for a, b := range pb.wired {
		if a < b {
			pairs = append(pairs, string([]byte{alphabet.Letter(a), alphabet.Letter(b)}))
		}
	}
	sort.Strings(pairs)
	return pairs
}
