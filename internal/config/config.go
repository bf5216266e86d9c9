// Package config loads settings from config.yaml under the workouts config
// directory, with WORKOUTS_* environment overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"workout_tui/internal/screen"
	"workout_tui/internal/workout"
)

const appDir = "workouts"

type Config struct {
	DataDir   string          `mapstructure:"data_dir"`
	ImportDir string          `mapstructure:"import_dir"`
	SoundsDir string          `mapstructure:"sounds_dir"`
	HistoryDB string          `mapstructure:"history_db"`
	LogFile   string          `mapstructure:"log_file"`
	LogLevel  string          `mapstructure:"log_level"`
	Sound     SoundConfig     `mapstructure:"sound"`
	Narrative NarrativeConfig `mapstructure:"narrative"`
}

type SoundConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Player is the command used to play wav files, e.g. "aplay -q".
	// Empty means pick the first known player found on PATH.
	Player string `mapstructure:"player"`
	// BellFallback rings the terminal bell for cues with no playable file.
	BellFallback bool `mapstructure:"bell_fallback"`
}

type TextConfig struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// NarrativeConfig is the text of the warm-up, rest and cooldown screens.
type NarrativeConfig struct {
	WarmUp   TextConfig `mapstructure:"warmup"`
	Rest     TextConfig `mapstructure:"rest"`
	Cooldown TextConfig `mapstructure:"cooldown"`
}

func (n NarrativeConfig) Narrative() screen.Narrative {
	return screen.Narrative{
		WarmUp:   workout.NewExercise(n.WarmUp.Name, n.WarmUp.Description),
		Rest:     workout.NewExercise(n.Rest.Name, n.Rest.Description),
		Cooldown: workout.NewExercise(n.Cooldown.Name, n.Cooldown.Description),
	}
}

// Level parses LogLevel, falling back to info.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Load reads config.yaml from the user config directory. A missing file is
// not an error.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(UserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromPath reads configuration from a specific file, which must exist.
func LoadFromPath(path string) (*Config, error) {
	v := newViper()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	return unmarshal(v)
}

// UserConfigPath is where Load looks for config.yaml.
func UserConfigPath() string {
	return filepath.Join(UserConfigDir(), "config.yaml")
}

// UserConfigDir is $XDG_CONFIG_HOME/workouts, or ~/.config/workouts.
func UserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appDir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", appDir)
	}
	return filepath.Join(home, ".config", appDir)
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	base := UserConfigDir()
	n := screen.DefaultNarrative()
	return &Config{
		DataDir:   filepath.Join(base, "data"),
		ImportDir: filepath.Join(base, "import"),
		SoundsDir: filepath.Join(base, "sounds"),
		HistoryDB: filepath.Join(base, "history.db"),
		LogFile:   filepath.Join(base, "workouts.log"),
		LogLevel:  "info",
		Sound: SoundConfig{
			Enabled:      true,
			BellFallback: true,
		},
		Narrative: NarrativeConfig{
			WarmUp:   TextConfig{Name: n.WarmUp.Name, Description: n.WarmUp.Description},
			Rest:     TextConfig{Name: n.Rest.Name, Description: n.Rest.Description},
			Cooldown: TextConfig{Name: n.Cooldown.Name, Description: n.Cooldown.Description},
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("WORKOUTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("import_dir", d.ImportDir)
	v.SetDefault("sounds_dir", d.SoundsDir)
	v.SetDefault("history_db", d.HistoryDB)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)

	v.SetDefault("sound.enabled", d.Sound.Enabled)
	v.SetDefault("sound.player", d.Sound.Player)
	v.SetDefault("sound.bell_fallback", d.Sound.BellFallback)

	v.SetDefault("narrative.warmup.name", d.Narrative.WarmUp.Name)
	v.SetDefault("narrative.warmup.description", d.Narrative.WarmUp.Description)
	v.SetDefault("narrative.rest.name", d.Narrative.Rest.Name)
	v.SetDefault("narrative.rest.description", d.Narrative.Rest.Description)
	v.SetDefault("narrative.cooldown.name", d.Narrative.Cooldown.Name)
	v.SetDefault("narrative.cooldown.description", d.Narrative.Cooldown.Description)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	for _, p := range []*string{&cfg.DataDir, &cfg.ImportDir, &cfg.SoundsDir, &cfg.HistoryDB, &cfg.LogFile} {
		*p = expandPath(*p)
	}
	return cfg, nil
}

// expandPath expands $VAR references and a leading ~.
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}
