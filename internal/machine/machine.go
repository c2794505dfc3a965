package machine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mwalzer/enigma/internal/core/entities/alphabet"
	"github.com/mwalzer/enigma/internal/core/entities/plugboard"
	"github.com/mwalzer/enigma/internal/core/entities/reflector"
	"github.com/mwalzer/enigma/internal/core/entities/wheel"
)

var (
	ErrInvalidRotorCount  = errors.New("a machine mounts 3 or 4 rotors")
	ErrGreekWheelPosition = errors.New("a greek wheel fits only the leftmost slot of a 4-rotor stack")
	ErrReflectorMismatch  = errors.New("reflector width does not match the rotor count")
	ErrSettingLength      = errors.New("setting length does not match the rotor count")
	ErrSettingCharacter   = errors.New("settings must consist of letters A-Z")
	ErrInvalidCharacter   = errors.New("message must consist of letters A-Z")
)

// Config carries the full initial configuration of a machine. Ring and
// ground settings default to "A" per rotor when left empty, matching how
// an operator would receive an incomplete key sheet.
type Config struct {
	Rotors        []wheel.Wheel
	Reflector     reflector.Reflector
	RingSetting   string
	GroundSetting string
	Plugboard     []string
	DoubleStep    bool
}

// Machine is a single M3 or M4 instance: an ordered rotor stack (leftmost
// first), a reflector, a plugboard and the stepping flag. Rotor positions
// are the only state that mutates as a side effect of encoding; they
// persist between Encode calls the way a real machine keeps spinning
// through a message. A Machine is not safe for concurrent use.
type Machine struct {
	rotors     []*rotorSlot
	reflector  reflectorSlot
	plugboard  plugboard.Plugboard
	doublestep bool
	tracer     *zerolog.Logger
}

func New(cfg Config) (*Machine, error) {
	if err := validateStack(cfg.Rotors, cfg.Reflector); err != nil {
		return nil, err
	}
	m := &Machine{doublestep: cfg.DoubleStep}
	m.reflector = newReflectorSlot(cfg.Reflector)
	m.rotors = make([]*rotorSlot, len(cfg.Rotors))
	for i, w := range cfg.Rotors {
		m.rotors[i] = newRotorSlot(w)
	}
	if err := m.SetRingSetting(defaultSetting(cfg.RingSetting, len(cfg.Rotors))); err != nil {
		return nil, err
	}
	if err := m.SetGroundSetting(defaultSetting(cfg.GroundSetting, len(cfg.Rotors))); err != nil {
		return nil, err
	}
	if err := m.SetPlugboard(cfg.Plugboard); err != nil {
		return nil, err
	}
	return m, nil
}

func MustNew(cfg Config) *Machine {
	m, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return m
}

// SetRotors replaces the rotor stack, re-validating it against the
// mounted reflector. The stored ring and ground settings are re-applied
// to the new stack; if the rotor count changed they no longer fit and
// both fall back to "A" per rotor.
func (m *Machine) SetRotors(wheels ...wheel.Wheel) error {
	if err := validateStack(wheels, m.reflector.def); err != nil {
		return err
	}
	rings, grounds := m.RingSetting(), m.GroundSetting()
	if len(rings) != len(wheels) {
		rings, grounds = defaultSetting("", len(wheels)), defaultSetting("", len(wheels))
	}
	m.rotors = make([]*rotorSlot, len(wheels))
	for i, w := range wheels {
		m.rotors[i] = newRotorSlot(w)
	}
	if err := m.SetRingSetting(rings); err != nil {
		return err
	}
	return m.SetGroundSetting(grounds)
}

// SetReflector replaces the reflector, re-validating it against the
// mounted rotor stack.
func (m *Machine) SetReflector(def reflector.Reflector) error {
	if err := validateStack(m.Rotors(), def); err != nil {
		return err
	}
	m.reflector = newReflectorSlot(def)
	return nil
}

// SetRingSetting reassigns the ring offset of every rotor, leftmost
// first, preserving the current positions.
func (m *Machine) SetRingSetting(setting string) error {
	rings, err := parseSetting(setting, len(m.rotors))
	if err != nil {
		return err
	}
	for i, s := range m.rotors {
		s.setRing(rings[i])
	}
	return nil
}

// SetGroundSetting reassigns the rotational position of every rotor,
// leftmost first, preserving the ring offsets.
func (m *Machine) SetGroundSetting(setting string) error {
	positions, err := parseSetting(setting, len(m.rotors))
	if err != nil {
		return err
	}
	for i, s := range m.rotors {
		s.setPos(positions[i])
	}
	return nil
}

func (m *Machine) SetPlugboard(pairs []string) error {
	pb, err := plugboard.New(pairs)
	if err != nil {
		return err
	}
	m.plugboard = pb
	return nil
}

func (m *Machine) SetDoubleStep(doublestep bool) {
	m.doublestep = doublestep
}

// Trace attaches a logger that records rotor positions and the letter
// substitution of every keypress at debug level.
func (m *Machine) Trace(logger *zerolog.Logger) {
	m.tracer = logger
}

func (m *Machine) Rotors() []wheel.Wheel {
	wheels := make([]wheel.Wheel, len(m.rotors))
	for i, s := range m.rotors {
		wheels[i] = s.wheel
	}
	return wheels
}

func (m *Machine) Reflector() reflector.Reflector {
	return m.reflector.def
}

func (m *Machine) Plugboard() []string {
	return m.plugboard.Pairs()
}

func (m *Machine) DoubleStep() bool {
	return m.doublestep
}

// RingSetting reads the ring offsets back as letters, leftmost first.
func (m *Machine) RingSetting() string {
	letters := make([]byte, len(m.rotors))
	for i, s := range m.rotors {
		letters[i] = alphabet.Letter(s.ring)
	}
	return string(letters)
}

// GroundSetting reads the current rotor positions back as letters,
// leftmost first. After an Encode call this is where the message left
// the machine, not where it started.
func (m *Machine) GroundSetting() string {
	letters := make([]byte, len(m.rotors))
	for i, s := range m.rotors {
		letters[i] = alphabet.Letter(s.pos)
	}
	return string(letters)
}

// Encode transforms a message, advancing the rotors from wherever the
// previous call left them. Encoding is an involution: running the
// ciphertext through a machine in the same starting state yields the
// plaintext again. The message is validated up front, so a rejected
// message leaves the positions untouched.
func (m *Machine) Encode(message string) (string, error) {
	for i := 0; i < len(message); i++ {
		if !alphabet.Valid(message[i]) {
			return "", fmt.Errorf("%w: %q", ErrInvalidCharacter, message[i])
		}
	}
	out := make([]byte, len(message))
	for i := 0; i < len(message); i++ {
		// the stepping gear moves on key-down, before the circuit closes
		m.step()
		c := alphabet.Index(message[i])
		c = m.plugboard.Swap(c)
		for j := len(m.rotors) - 1; j >= 0; j-- {
			c = m.rotors[j].forward(c)
		}
		c = m.reflector.forward(c)
		for j := 0; j < len(m.rotors); j++ {
			c = m.rotors[j].backward(c)
		}
		c = m.plugboard.Swap(c)
		out[i] = alphabet.Letter(c)
		if m.tracer != nil {
			m.tracer.Debug().
				Str("positions", m.GroundSetting()).
				Str("in", string(message[i])).
				Str("out", string(out[i])).
				Msg("Keypress encoded")
		}
	}
	return string(out), nil
}

// EncodeAt resets the rotor positions to the given ground setting and
// then encodes the message.
func (m *Machine) EncodeAt(message, ground string) (string, error) {
	if err := m.SetGroundSetting(ground); err != nil {
		return "", err
	}
	return m.Encode(message)
}

func validateStack(wheels []wheel.Wheel, def reflector.Reflector) error {
	switch len(wheels) {
	case 3:
		for _, w := range wheels {
			if w.Greek {
				return ErrGreekWheelPosition
			}
		}
		if def.Thin {
			return ErrReflectorMismatch
		}
	case 4:
		if !wheels[0].Greek {
			return ErrGreekWheelPosition
		}
		for _, w := range wheels[1:] {
			if w.Greek {
				return ErrGreekWheelPosition
			}
		}
		if !def.Thin {
			return ErrReflectorMismatch
		}
	default:
		return ErrInvalidRotorCount
	}
	return nil
}

func parseSetting(setting string, rotors int) ([]int, error) {
	setting = strings.ToUpper(setting)
	if len(setting) != rotors {
		return nil, ErrSettingLength
	}
	parsed := make([]int, len(setting))
	for i := 0; i < len(setting); i++ {
		if !alphabet.Valid(setting[i]) {
			return nil, ErrSettingCharacter
		}
		parsed[i] = alphabet.Index(setting[i])
	}
	return parsed, nil
}

func defaultSetting(setting string, rotors int) string {
	if setting == "" {
		return strings.Repeat("A", rotors)
	}
	return setting
}
