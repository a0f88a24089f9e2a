// Package config loads balancing values from an optional tuning file and
// process settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Tuning holds every balancing value the simulation reads. Chances are
// integer percentages.
type Tuning struct {
	MinStatValue   int `mapstructure:"minStatValue"`
	MaxStatValue   int `mapstructure:"maxStatValue"`
	MaxOnMapActors int `mapstructure:"maxOnMapActors"`

	BreakdownChance     int `mapstructure:"breakdownChance"`
	SecretChance        int `mapstructure:"secretChance"`
	ActorResignChance   int `mapstructure:"actorResignChance"`
	TraitorActiveChance int `mapstructure:"traitorActiveChance"`

	UnhappyLoseMotivationChance int `mapstructure:"unhappyLoseMotivationChance"`
	UnhappyTakeActionChance     int `mapstructure:"unhappyTakeActionChance"`
	UnhappyRevealSecretChance   int `mapstructure:"unhappyRevealSecretChance"`
	UnhappyResignChance         int `mapstructure:"unhappyResignChance"`
	UnhappyComplainChance       int `mapstructure:"unhappyComplainChance"`
	UnhappyTimerBase            int `mapstructure:"unhappyTimerBase"`

	ManageSecretRenown int `mapstructure:"manageSecretRenown"`
	DismissRenown      int `mapstructure:"dismissRenown"`
	DisposeRenown      int `mapstructure:"disposeRenown"`
	StressLeaveRenown  int `mapstructure:"stressLeaveRenown"`
	MaxGenericOptions  int `mapstructure:"maxGenericOptions"`
	RecruitCopies      int `mapstructure:"recruitCopies"`

	BlackmailTimer int `mapstructure:"blackmailTimer"`
	CaptureTimer   int `mapstructure:"captureTimer"`
	RelationTimer  int `mapstructure:"relationTimer"`
	LieLowTimer    int `mapstructure:"lieLowTimer"`
}

// ErrInvalidTuning is returned when loaded values can't run a simulation.
var ErrInvalidTuning = errors.New("invalid tuning")

func setDefaults(v *viper.Viper) {
	v.SetDefault("minStatValue", 0)
	v.SetDefault("maxStatValue", 3)
	v.SetDefault("maxOnMapActors", 4)

	v.SetDefault("breakdownChance", 5)
	v.SetDefault("secretChance", 10)
	v.SetDefault("actorResignChance", 5)
	v.SetDefault("traitorActiveChance", 5)

	v.SetDefault("unhappyLoseMotivationChance", 40)
	v.SetDefault("unhappyTakeActionChance", 20)
	v.SetDefault("unhappyRevealSecretChance", 50)
	v.SetDefault("unhappyResignChance", 30)
	v.SetDefault("unhappyComplainChance", 50)
	v.SetDefault("unhappyTimerBase", 5)

	v.SetDefault("manageSecretRenown", 1)
	v.SetDefault("dismissRenown", 2)
	v.SetDefault("disposeRenown", 3)
	v.SetDefault("stressLeaveRenown", 2)
	v.SetDefault("maxGenericOptions", 3)
	v.SetDefault("recruitCopies", 1)

	v.SetDefault("blackmailTimer", 10)
	v.SetDefault("captureTimer", 5)
	v.SetDefault("relationTimer", 5)
	v.SetDefault("lieLowTimer", 10)
}

// DefaultTuning returns the built-in balancing values.
func DefaultTuning() Tuning {
	v := viper.New()
	setDefaults(v)
	var t Tuning
	// Defaults always decode.
	_ = v.Unmarshal(&t)
	return t
}

// LoadTuning reads balancing values from path (YAML, JSON or TOML by
// extension) over the defaults. An empty path returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Tuning{}, fmt.Errorf("error reading tuning file: %w", err)
		}
	}

	var t Tuning
	if err := v.Unmarshal(&t); err != nil {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values the engine can't honour.
func (t Tuning) Validate() error {
	switch {
	case t.MaxStatValue <= t.MinStatValue:
		return fmt.Errorf("%w: maxStatValue %d must exceed minStatValue %d", ErrInvalidTuning, t.MaxStatValue, t.MinStatValue)
	case t.MaxOnMapActors < 1:
		return fmt.Errorf("%w: maxOnMapActors must be positive", ErrInvalidTuning)
	case t.MaxGenericOptions < 1:
		return fmt.Errorf("%w: maxGenericOptions must be positive", ErrInvalidTuning)
	case t.UnhappyTimerBase < 1:
		return fmt.Errorf("%w: unhappyTimerBase must be positive", ErrInvalidTuning)
	}
	return nil
}
