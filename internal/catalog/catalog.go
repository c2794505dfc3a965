package catalog

import (
	"errors"
	"strings"

	"github.com/mwalzer/enigma/internal/core/entities/reflector"
	"github.com/mwalzer/enigma/internal/core/entities/wheel"
)

// The standard wheel and reflector set of the Kriegsmarine M3/M4.
// Wiring and notch data per https://www.cryptomuseum.com/crypto/enigma/m3/
// I-V carry a single turnover notch, VI-VIII carry two. BETA and GAMMA are
// the thin Greek wheels, usable only in the leftmost slot of an M4 stack.
var (
	RotorI    = wheel.MustNew("I", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q")
	RotorII   = wheel.MustNew("II", "AJDKSIRUXBLHWTMCQGZNPYFVOE", "E")
	RotorIII  = wheel.MustNew("III", "BDFHJLCPRTXVZNYEIWGAKMUSQO", "V")
	RotorIV   = wheel.MustNew("IV", "ESOVPZJAYQUIRHXLNFTGKDCMWB", "J")
	RotorV    = wheel.MustNew("V", "VZBRGITYUPSDNHLXAWMJQOFECK", "Z")
	RotorVI   = wheel.MustNew("VI", "JPGVOUMFYQBENHZRDKASXLICTW", "ZM")
	RotorVII  = wheel.MustNew("VII", "NZJHGRCXMYSWBOUFAIVLPEKQDT", "ZM")
	RotorVIII = wheel.MustNew("VIII", "FKQHTLXOCBJSPDZRAMEWNIUYGV", "ZM")
	Beta      = wheel.MustNewGreek("BETA", "LEYJVCNIXWPBQMDRTAKZGFUHOS")
	Gamma     = wheel.MustNewGreek("GAMMA", "FSOKANUERHMBTIYCWLQPZXVGJD")

	UKWB     = reflector.MustNew("UKWB", "YRUHQSLDPXNGOKMIEBFZCWVJAT")
	UKWC     = reflector.MustNew("UKWC", "FVPJIAOYEDRZXWGCTKUQSBNMHL")
	UKWBThin = reflector.MustNewThin("UKWB_THIN", "ENKQAUYWJICOPBLMDXZVFTHRGS")
	UKWCThin = reflector.MustNewThin("UKWC_THIN", "RDOBJNTKVEHMLFCWZAXGYIPSUQ")
)

var (
	ErrUnknownRotor     = errors.New("unknown rotor name")
	ErrUnknownReflector = errors.New("unknown reflector name")
)

var rotors = map[string]wheel.Wheel{ // nolint: gochecknoglobals
	"I":     RotorI,
	"II":    RotorII,
	"III":   RotorIII,
	"IV":    RotorIV,
	"V":     RotorV,
	"VI":    RotorVI,
	"VII":   RotorVII,
	"VIII":  RotorVIII,
	"BETA":  Beta,
	"GAMMA": Gamma,
}

var reflectors = map[string]reflector.Reflector{ // nolint: gochecknoglobals
	"UKWB":      UKWB,
	"UKWC":      UKWC,
	"UKWB_THIN": UKWBThin,
	"UKWC_THIN": UKWCThin,
}

func LookupRotor(name string) (wheel.Wheel, error) {
	w, ok := rotors[strings.ToUpper(name)]
	if !ok {
		return wheel.Blank, ErrUnknownRotor
	}
	return w, nil
}

func LookupReflector(name string) (reflector.Reflector, error) {
	r, ok := reflectors[strings.ToUpper(name)]
	if !ok {
		return reflector.Blank, ErrUnknownReflector
	}
	return r, nil
}

func RotorNames() []string {
	return []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "BETA", "GAMMA"}
}

func ReflectorNames() []string {
	return []string{"UKWB", "UKWC", "UKWB_THIN", "UKWC_THIN"}
}
