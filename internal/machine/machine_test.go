package machine_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalzer/enigma/internal/catalog"
	"github.com/mwalzer/enigma/internal/core/entities/plugboard"
	"github.com/mwalzer/enigma/internal/core/entities/reflector"
	"github.com/mwalzer/enigma/internal/core/entities/wheel"
	"github.com/mwalzer/enigma/internal/machine"
)

func newM3(t *testing.T) *machine.Machine {
	t.Helper()
	m, err := machine.New(machine.Config{
		Rotors:     []wheel.Wheel{catalog.RotorI, catalog.RotorII, catalog.RotorIII},
		Reflector:  catalog.UKWB,
		DoubleStep: true,
	})
	require.NoError(t, err)
	return m
}

func newM4(t *testing.T) *machine.Machine {
	t.Helper()
	m, err := machine.New(machine.Config{
		Rotors:        []wheel.Wheel{catalog.Beta, catalog.RotorV, catalog.RotorVI, catalog.RotorVIII},
		Reflector:     catalog.UKWCThin,
		RingSetting:   "EPEL",
		GroundSetting: "NAEM",
		Plugboard:     []string{"AE", "BF", "CM", "DQ", "HU", "JN", "LX", "PR", "SZ", "VW"},
		DoubleStep:    true,
	})
	require.NoError(t, err)
	return m
}

func TestEncodeM3KnownVectors(t *testing.T) {
	tests := []struct {
		name    string
		rings   string
		ground  string
		message string
		want    string
	}{
		{
			name:    "no rings",
			rings:   "AAA",
			ground:  "AAA",
			message: "AAAAA",
			want:    "BDZGO",
		},
		{
			name:    "hello world",
			rings:   "AAA",
			ground:  "AAA",
			message: "HELLOWORLD",
			want:    "ILBDAAMTAZ",
		},
		{
			name:    "offset rings",
			rings:   "BBB",
			ground:  "AAA",
			message: "AAAAA",
			want:    "EWTYX",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := machine.New(machine.Config{
				Rotors:      []wheel.Wheel{catalog.RotorI, catalog.RotorII, catalog.RotorIII},
				Reflector:   catalog.UKWB,
				RingSetting: tt.rings,
				DoubleStep:  true,
			})
			require.NoError(t, err)

			ciphertext, err := m.EncodeAt(tt.message, tt.ground)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ciphertext)

			// the transform is an involution under matched settings
			plaintext, err := m.EncodeAt(ciphertext, tt.ground)
			require.NoError(t, err)
			assert.Equal(t, tt.message, plaintext)
		})
	}
}

func TestEncodeM4KnownVector(t *testing.T) {
	m := newM4(t)

	ciphertext, err := m.Encode("QEOB")
	require.NoError(t, err)
	assert.Equal(t, "CDSZ", ciphertext)

	plaintext, err := m.EncodeAt("CDSZ", "NAEM")
	require.NoError(t, err)
	assert.Equal(t, "QEOB", plaintext)
}

func TestEncodeDoenitzMessage(t *testing.T) {
	m := newM4(t)

	plaintext, err := m.EncodeAt("LANOTCTOUARBBFPMHPHGCZXTDYGAHGUFXGEWKBLKGJWL", "CDSZ")
	require.NoError(t, err)
	assert.Equal(t, "KRKRALLEXXFOLGENDESISTSOFORTBEKANNTZUGEBENXX", plaintext)

	ciphertext, err := m.EncodeAt("KRKRALLEXXFOLGENDESISTSOFORTBEKANNTZUGEBENXX", "CDSZ")
	require.NoError(t, err)
	assert.Equal(t, "LANOTCTOUARBBFPMHPHGCZXTDYGAHGUFXGEWKBLKGJWL", ciphertext)
}

func TestStepping(t *testing.T) {
	tests := []struct {
		name       string
		ground     string
		doublestep bool
		want       string
	}{
		{
			name:       "normal turnover sequence",
			ground:     "AAT",
			doublestep: true,
			want:       "ABY",
		},
		{
			name:       "middle rotor double-steps over its notch",
			ground:     "ADT",
			doublestep: true,
			want:       "BFY",
		},
		{
			name:       "no double-step with the anomaly disabled",
			ground:     "ADT",
			doublestep: false,
			want:       "AEY",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newM3(t)
			m.SetDoubleStep(tt.doublestep)
			_, err := m.EncodeAt("HELLO", tt.ground)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.GroundSetting())
		})
	}
}

func TestGreekWheelNeverTurns(t *testing.T) {
	m := newM4(t)
	_, err := m.EncodeAt(strings.Repeat("A", 100), "NZZZ")
	require.NoError(t, err)
	assert.Equal(t, byte('N'), m.GroundSetting()[0])
}

func TestPositionsPersistBetweenCalls(t *testing.T) {
	m := newM3(t)

	whole, err := m.EncodeAt("HELLOWORLD", "AAA")
	require.NoError(t, err)

	first, err := m.EncodeAt("HELLO", "AAA")
	require.NoError(t, err)
	second, err := m.Encode("WORLD")
	require.NoError(t, err)
	assert.Equal(t, whole, first+second)
}

func TestSameLetterEncodesDifferentlyAsRotorsAdvance(t *testing.T) {
	m := newM3(t)
	ciphertext, err := m.EncodeAt(strings.Repeat("A", 26), "AAA")
	require.NoError(t, err)
	distinct := make(map[byte]struct{})
	for i := 0; i < len(ciphertext); i++ {
		// a letter never encodes to itself through the reflector
		assert.NotEqual(t, byte('A'), ciphertext[i])
		distinct[ciphertext[i]] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1)
}

func TestNewValidation(t *testing.T) {
	m3Stack := []wheel.Wheel{catalog.RotorI, catalog.RotorII, catalog.RotorIII}
	tests := []struct {
		name    string
		cfg     machine.Config
		wantErr error
	}{
		{
			name: "two rotors are rejected",
			cfg: machine.Config{
				Rotors:    []wheel.Wheel{catalog.RotorI, catalog.RotorII},
				Reflector: catalog.UKWB,
			},
			wantErr: machine.ErrInvalidRotorCount,
		},
		{
			name: "five rotors are rejected",
			cfg: machine.Config{
				Rotors: []wheel.Wheel{
					catalog.RotorI, catalog.RotorII, catalog.RotorIII, catalog.RotorIV, catalog.RotorV,
				},
				Reflector: catalog.UKWB,
			},
			wantErr: machine.ErrInvalidRotorCount,
		},
		{
			name: "greek wheel in a 3-rotor stack is rejected",
			cfg: machine.Config{
				Rotors:    []wheel.Wheel{catalog.Beta, catalog.RotorI, catalog.RotorII},
				Reflector: catalog.UKWB,
			},
			wantErr: machine.ErrGreekWheelPosition,
		},
		{
			name: "4-rotor stack without a leading greek wheel is rejected",
			cfg: machine.Config{
				Rotors:    []wheel.Wheel{catalog.RotorV, catalog.RotorIII, catalog.RotorI, catalog.RotorII},
				Reflector: catalog.UKWBThin,
			},
			wantErr: machine.ErrGreekWheelPosition,
		},
		{
			name: "greek wheel in a non-leftmost slot is rejected",
			cfg: machine.Config{
				Rotors:    []wheel.Wheel{catalog.Beta, catalog.Gamma, catalog.RotorI, catalog.RotorII},
				Reflector: catalog.UKWBThin,
			},
			wantErr: machine.ErrGreekWheelPosition,
		},
		{
			name: "thin reflector on a 3-rotor stack is rejected",
			cfg: machine.Config{
				Rotors:    m3Stack,
				Reflector: catalog.UKWBThin,
			},
			wantErr: machine.ErrReflectorMismatch,
		},
		{
			name: "full reflector on a 4-rotor stack is rejected",
			cfg: machine.Config{
				Rotors:    []wheel.Wheel{catalog.Beta, catalog.RotorI, catalog.RotorII, catalog.RotorIII},
				Reflector: catalog.UKWB,
			},
			wantErr: machine.ErrReflectorMismatch,
		},
		{
			name: "short ring setting is rejected",
			cfg: machine.Config{
				Rotors:      m3Stack,
				Reflector:   catalog.UKWB,
				RingSetting: "A",
			},
			wantErr: machine.ErrSettingLength,
		},
		{
			name: "non-letter ring setting is rejected",
			cfg: machine.Config{
				Rotors:      m3Stack,
				Reflector:   catalog.UKWB,
				RingSetting: "A1A",
			},
			wantErr: machine.ErrSettingCharacter,
		},
		{
			name: "long ground setting is rejected",
			cfg: machine.Config{
				Rotors:        m3Stack,
				Reflector:     catalog.UKWB,
				GroundSetting: "AAAA",
			},
			wantErr: machine.ErrSettingLength,
		},
		{
			name: "conflicting plugboard is rejected",
			cfg: machine.Config{
				Rotors:    m3Stack,
				Reflector: catalog.UKWB,
				Plugboard: []string{"AB", "BC"},
			},
			wantErr: plugboard.ErrDuplicateLetter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := machine.New(tt.cfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEncodeRejectsNonLetters(t *testing.T) {
	m := newM3(t)
	before := m.GroundSetting()
	for _, message := range []string{"HELLO WORLD", "hello", "HELLO!", "H3LLO"} {
		_, err := m.Encode(message)
		require.ErrorIs(t, err, machine.ErrInvalidCharacter)
	}
	// a rejected message must not advance the rotors
	assert.Equal(t, before, m.GroundSetting())
}

func TestSetRingSettingPreservesPositions(t *testing.T) {
	m := newM3(t)
	require.NoError(t, m.SetGroundSetting("QEV"))
	require.NoError(t, m.SetRingSetting("FCD"))
	assert.Equal(t, "FCD", m.RingSetting())
	assert.Equal(t, "QEV", m.GroundSetting())
}

func TestSetGroundSettingPreservesRings(t *testing.T) {
	m := newM4(t)
	require.NoError(t, m.SetGroundSetting("AAAA"))
	assert.Equal(t, "EPEL", m.RingSetting())
	assert.Equal(t, "AAAA", m.GroundSetting())
}

func TestSetRotors(t *testing.T) {
	m := newM3(t)
	require.NoError(t, m.SetRingSetting("FCD"))

	// same rotor count keeps the stored settings
	require.NoError(t, m.SetRotors(catalog.RotorIV, catalog.RotorV, catalog.RotorVI))
	assert.Equal(t, "FCD", m.RingSetting())

	// a greek wheel cannot join a 3-rotor stack
	require.ErrorIs(
		t,
		m.SetRotors(catalog.Beta, catalog.RotorI, catalog.RotorII),
		machine.ErrGreekWheelPosition,
	)

	// a 4-rotor stack needs the thin reflector currently not mounted
	require.ErrorIs(
		t,
		m.SetRotors(catalog.Beta, catalog.RotorI, catalog.RotorII, catalog.RotorIII),
		machine.ErrReflectorMismatch,
	)
}

func TestSetReflector(t *testing.T) {
	m := newM3(t)
	require.NoError(t, m.SetReflector(catalog.UKWC))
	assert.Equal(t, "UKWC", m.Reflector().Name)
	require.ErrorIs(t, m.SetReflector(catalog.UKWBThin), machine.ErrReflectorMismatch)
}

func TestSettingsReadBack(t *testing.T) {
	m := newM4(t)
	assert.Equal(t, []string{"AE", "BF", "CM", "DQ", "HU", "JN", "LX", "PR", "SZ", "VW"}, m.Plugboard())
	assert.True(t, m.DoubleStep())
	rotors := m.Rotors()
	require.Len(t, rotors, 4)
	assert.Equal(t, "BETA", rotors[0].Name)
	assert.Equal(t, "VIII", rotors[3].Name)
	assert.Equal(t, "UKWC_THIN", m.Reflector().Name)
}

func TestCustomDefinitions(t *testing.T) {
	// the machine works with wheels outside the standard catalog
	w, err := wheel.New("X", "QWERTYUIOPASDFGHJKLZXCVBNM", "A")
	require.NoError(t, err)
	r, err := reflector.New("UKWX", "YRUHQSLDPXNGOKMIEBFZCWVJAT")
	require.NoError(t, err)
	m, err := machine.New(machine.Config{
		Rotors:    []wheel.Wheel{w, w, w},
		Reflector: r,
	})
	require.NoError(t, err)
	ciphertext, err := m.EncodeAt("ENIGMA", "AAA")
	require.NoError(t, err)
	plaintext, err := m.EncodeAt(ciphertext, "AAA")
	require.NoError(t, err)
	assert.Equal(t, "ENIGMA", plaintext)
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	m := newM3(t)
	m.Trace(&logger)
	_, err := m.EncodeAt("AAAAA", "AAA")
	require.NoError(t, err)

	lines := strings.Count(buf.String(), "Keypress encoded")
	assert.Equal(t, 5, lines)
	assert.Contains(t, buf.String(), `"positions":"AAB"`)
}
