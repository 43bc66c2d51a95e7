package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Deck   DeckConfig          `mapstructure:"deck"`
	Snap   SnapConfig          `mapstructure:"snap"`
	Scroll ScrollConfig        `mapstructure:"scroll"`
	Input  InputConfig         `mapstructure:"input"`
	Log    LogConfig           `mapstructure:"log"`
	Keys   map[string][]string `mapstructure:"keys"`
}

// DeckConfig points at the deck file; empty means the built-in deck.
type DeckConfig struct {
	Path string `mapstructure:"path"`
}

// SnapConfig tunes input normalisation and the transition lock.
type SnapConfig struct {
	WheelNoise          float64       `mapstructure:"wheel_noise"`
	SwipeDistance       float64       `mapstructure:"swipe_distance"`
	TouchCooldown       time.Duration `mapstructure:"touch_cooldown"`
	LockDuration        time.Duration `mapstructure:"lock_duration"`
	VisibilityThreshold float64       `mapstructure:"visibility_threshold"`
}

// ScrollConfig tunes the smooth scroll animation.
type ScrollConfig struct {
	Duration time.Duration `mapstructure:"duration"`
	Frame    time.Duration `mapstructure:"frame"`
}

// InputConfig converts terminal input into pixel-based events.
type InputConfig struct {
	RowHeightPx float64 `mapstructure:"row_height_px"`
	WheelDelta  float64 `mapstructure:"wheel_delta"`
}

// LogConfig holds logging settings. An empty Dir disables the log file.
type LogConfig struct {
	Dir     string `mapstructure:"dir"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// SNAPDECK_. path wins over $SNAPDECK_CONFIG, which wins over
// ~/.config/snapdeck/config.toml.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("deck.path", "")
	v.SetDefault("snap.wheel_noise", 10.0)
	v.SetDefault("snap.swipe_distance", 50.0)
	v.SetDefault("snap.touch_cooldown", "500ms")
	v.SetDefault("snap.lock_duration", "700ms")
	v.SetDefault("snap.visibility_threshold", 0.6)
	v.SetDefault("scroll.duration", "600ms")
	v.SetDefault("scroll.frame", "16ms")
	v.SetDefault("input.row_height_px", 16.0)
	v.SetDefault("input.wheel_delta", 100.0)
	v.SetDefault("log.dir", "")
	v.SetDefault("log.verbose", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SNAPDECK_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "snapdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SNAPDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the controller cannot work with.
func (c Config) Validate() error {
	if c.Snap.WheelNoise < 0 {
		return errors.Errorf("snap.wheel_noise must not be negative, got %v", c.Snap.WheelNoise)
	}
	if c.Snap.SwipeDistance < 0 {
		return errors.Errorf("snap.swipe_distance must not be negative, got %v", c.Snap.SwipeDistance)
	}
	if c.Snap.TouchCooldown <= 0 || c.Snap.LockDuration <= 0 {
		return errors.New("snap.touch_cooldown and snap.lock_duration must be positive")
	}
	if c.Snap.VisibilityThreshold <= 0 || c.Snap.VisibilityThreshold > 1 {
		return errors.Errorf("snap.visibility_threshold must be in (0,1], got %v", c.Snap.VisibilityThreshold)
	}
	if c.Scroll.Duration <= 0 || c.Scroll.Frame <= 0 {
		return errors.New("scroll.duration and scroll.frame must be positive")
	}
	if c.Scroll.Duration > c.Snap.LockDuration {
		return errors.Errorf("scroll.duration (%v) must not exceed snap.lock_duration (%v)", c.Scroll.Duration, c.Snap.LockDuration)
	}
	if c.Input.RowHeightPx <= 0 {
		return errors.Errorf("input.row_height_px must be positive, got %v", c.Input.RowHeightPx)
	}
	return nil
}
