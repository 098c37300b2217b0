// File: utils/config.go
package utils

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvPrefix is the prefix of every environment key read by LoadConfig.
const EnvPrefix = "BOMBGRID_"

// Config holds all configurable game parameters.
type Config struct {
	// Player & Bag
	PlayerSpeed     float64 `json:"playerSpeed"`     // Cells per second at level start
	StartBombs      int     `json:"startBombs"`      // Bombs in the bag at level start
	StartMaxBombs   int     `json:"startMaxBombs"`   // Bag capacity at level start
	StartBlastRange Vector  `json:"startBlastRange"` // Blast reach (cells) of placed bombs at level start
	ReloadCooldown  float64 `json:"reloadCooldown"`  // Seconds between bag refills, also reset on placement

	// Bombs
	BombFuse         float64 `json:"bombFuse"`         // Seconds from placement to detonation
	SpawnedBombRange Vector  `json:"spawnedBombRange"` // Blast reach of bombs present in the level plan
	PushDamping      float64 `json:"pushDamping"`      // Divisor applied to a pushed bomb's velocity
	ChainFuse        float64 `json:"chainFuse"`        // Fuse given to a bomb caught in another bomb's blast

	// Explosions & Add-ons
	ExplosionLifetime float64 `json:"explosionLifetime"` // Seconds an explosion cell stays lethal
	AddOnBobSpeed     float64 `json:"addOnBobSpeed"`     // Phase advance per second of the add-on bobbing
	AddOnBobAmplitude float64 `json:"addOnBobAmplitude"` // Vertical bobbing distance in cells
	DropChance        float64 `json:"dropChance"`        // Chance (0.0 to 1.0) a destroyed brick drops an add-on
	Seed              uint64  `json:"seed"`              // Seed of the default random source

	// Rules
	WinWhenCleared bool `json:"winWhenCleared"` // Level is won once its last brick is destroyed

	// Harness timing
	FramePeriod  time.Duration `json:"framePeriod"`  // Time between frames driven by the campaign runner
	MaxFrameStep time.Duration `json:"maxFrameStep"` // Upper clamp of the elapsed time fed to a tick
	EndingGrace  time.Duration `json:"endingGrace"`  // Ticks keep running this long after a level ends
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		// Player & Bag
		PlayerSpeed:     7,
		StartBombs:      3,
		StartMaxBombs:   3,
		StartBlastRange: Vec(1, 1),
		ReloadCooldown:  1,

		// Bombs
		BombFuse:         2.2,
		SpawnedBombRange: Vec(5, 5),
		PushDamping:      3,
		ChainFuse:        0.002,

		// Explosions & Add-ons
		ExplosionLifetime: 0.3,
		AddOnBobSpeed:     8,
		AddOnBobAmplitude: 0.07,
		DropChance:        0.1, // 10% chance
		Seed:              1,

		WinWhenCleared: true,

		// Harness timing
		FramePeriod:  16 * time.Millisecond,
		MaxFrameStep: 100 * time.Millisecond,
		EndingGrace:  time.Second,
	}
}

// Validate reports the first parameter that would break the simulation.
func (c Config) Validate() error {
	switch {
	case c.PlayerSpeed <= 0:
		return errors.Errorf("playerSpeed must be positive, got %v", c.PlayerSpeed)
	case c.StartMaxBombs < 0 || c.StartBombs < 0 || c.StartBombs > c.StartMaxBombs:
		return errors.Errorf("startBombs must be within [0, %d], got %d", c.StartMaxBombs, c.StartBombs)
	case c.ReloadCooldown <= 0:
		return errors.Errorf("reloadCooldown must be positive, got %v", c.ReloadCooldown)
	case c.BombFuse <= 0:
		return errors.Errorf("bombFuse must be positive, got %v", c.BombFuse)
	case c.PushDamping <= 0:
		return errors.Errorf("pushDamping must be positive, got %v", c.PushDamping)
	case c.ChainFuse <= 0:
		return errors.Errorf("chainFuse must be positive, got %v", c.ChainFuse)
	case c.ExplosionLifetime <= 0:
		return errors.Errorf("explosionLifetime must be positive, got %v", c.ExplosionLifetime)
	case c.DropChance < 0 || c.DropChance > 1:
		return errors.Errorf("dropChance must be within [0, 1], got %v", c.DropChance)
	case c.FramePeriod <= 0 || c.MaxFrameStep <= 0:
		return errors.New("framePeriod and maxFrameStep must be positive")
	case c.EndingGrace < 0:
		return errors.Errorf("endingGrace must not be negative, got %v", c.EndingGrace)
	}
	return nil
}

// LoadConfig starts from DefaultConfig, applies the BOMBGRID_* keys found in
// the dotenv file at path (skipped when path is empty or missing) and then the
// process environment, which wins over the file.
func LoadConfig(path string) (Config, error) {
	values := map[string]string{}
	if path != "" {
		fileValues, err := godotenv.Read(path)
		if err != nil && !os.IsNotExist(errors.Cause(err)) {
			return Config{}, errors.Wrapf(err, "reading config file %s", path)
		}
		for key, value := range fileValues {
			values[key] = value
		}
	}
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if ok && strings.HasPrefix(key, EnvPrefix) {
			values[key] = value
		}
	}

	cfg := DefaultConfig()
	if err := cfg.apply(values); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func (c *Config) apply(values map[string]string) error {
	floats := map[string]*float64{
		"PLAYER_SPEED":        &c.PlayerSpeed,
		"RELOAD_COOLDOWN":     &c.ReloadCooldown,
		"BOMB_FUSE":           &c.BombFuse,
		"PUSH_DAMPING":        &c.PushDamping,
		"CHAIN_FUSE":          &c.ChainFuse,
		"EXPLOSION_LIFETIME":  &c.ExplosionLifetime,
		"ADDON_BOB_SPEED":     &c.AddOnBobSpeed,
		"ADDON_BOB_AMPLITUDE": &c.AddOnBobAmplitude,
		"DROP_CHANCE":         &c.DropChance,
	}
	ints := map[string]*int{
		"START_BOMBS":     &c.StartBombs,
		"START_MAX_BOMBS": &c.StartMaxBombs,
	}
	durations := map[string]*time.Duration{
		"FRAME_PERIOD":   &c.FramePeriod,
		"MAX_FRAME_STEP": &c.MaxFrameStep,
		"ENDING_GRACE":   &c.EndingGrace,
	}
	vectors := map[string]*Vector{
		"START_BLAST_RANGE":  &c.StartBlastRange,
		"SPAWNED_BOMB_RANGE": &c.SpawnedBombRange,
	}

	for key, raw := range values {
		name := strings.TrimPrefix(key, EnvPrefix)
		if name == key {
			continue
		}
		raw = strings.TrimSpace(raw)
		var err error
		if target, ok := floats[name]; ok {
			*target, err = strconv.ParseFloat(raw, 64)
		} else if target, ok := ints[name]; ok {
			*target, err = strconv.Atoi(raw)
		} else if target, ok := durations[name]; ok {
			*target, err = time.ParseDuration(raw)
		} else if target, ok := vectors[name]; ok {
			*target, err = ParseVector(raw)
		} else if name == "SEED" {
			c.Seed, err = strconv.ParseUint(raw, 10, 64)
		} else if name == "WIN_WHEN_CLEARED" {
			c.WinWhenCleared, err = strconv.ParseBool(raw)
		} else {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "parsing %s=%q", key, raw)
		}
	}
	return nil
}
