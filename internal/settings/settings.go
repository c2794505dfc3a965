package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Settings is the operator-facing key sheet: rotor and reflector names
// to be resolved against the catalog, letter-string settings and the
// plugboard pairs. It is the shape shared by the CLI flags, the YAML
// key sheet file and the HTTP API payload.
type Settings struct {
	Rotors        []string `yaml:"rotors"     validate:"required,min=3,max=4,dive,rotor"`
	Reflector     string   `yaml:"reflector"  validate:"required,reflector"`
	RingSetting   string   `yaml:"rings"      validate:"omitempty,alpha"`
	GroundSetting string   `yaml:"ground"     validate:"omitempty,alpha"`
	Plugboard     []string `yaml:"plugboard"  validate:"omitempty,dive,len=2,alpha"`
	DoubleStep    bool     `yaml:"doublestep"`
}

func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	return Parse(data)
}

func Parse(data []byte) (Settings, error) {
	// the anomaly is part of the real machine, so it defaults to on
	s := Settings{DoubleStep: true}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate(v *validator.Validate) error {
	return v.Struct(&s)
}
