package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/tabuada/internal/quiz"
	"github.com/abhisek/tabuada/internal/store"
)

// Config holds the application settings.
type Config struct {
	// DBPath is the SQLite file holding saved games. Empty resolves
	// store.DefaultDBPath.
	DBPath string `yaml:"db_path"`

	// LogPath is the log file. The terminal belongs to the UI, so logs
	// never go to stdout. Empty resolves DefaultLogPath.
	LogPath string `yaml:"log_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Difficulty and MaxLives are the defaults offered for a new game.
	Difficulty quiz.Difficulty `yaml:"difficulty"`
	MaxLives   int             `yaml:"max_lives"`

	// LeaderboardSize is the number of leaderboard rows shown.
	LeaderboardSize int `yaml:"leaderboard_size"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:        "info",
		Difficulty:      quiz.DifficultyMedium,
		MaxLives:        quiz.DefaultMaxLives,
		LeaderboardSize: store.DefaultLeaderboardSize,
	}
}

// Load builds the configuration from defaults, an optional YAML file, a
// .env file in the working directory and TABUADA_* environment variables,
// later sources overriding earlier ones. An empty path uses DefaultPath;
// a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	// A missing .env is normal.
	_ = godotenv.Load()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath resolves the config file path:
// 1. TABUADA_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/tabuada/config.yaml
// 3. ~/.config/tabuada/config.yaml
func DefaultPath() string {
	if p := os.Getenv("TABUADA_CONFIG"); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tabuada", "config.yaml")
}

// DefaultLogPath resolves the log file path under $XDG_STATE_HOME
// (default ~/.local/state).
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "tabuada", "tabuada.log"), nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TABUADA_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("TABUADA_LOG"); v != "" {
		c.LogPath = v
	}
	if v := os.Getenv("TABUADA_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("TABUADA_DIFFICULTY"); v != "" {
		c.Difficulty = quiz.Difficulty(v)
	}
	if v := os.Getenv("TABUADA_MAX_LIVES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TABUADA_MAX_LIVES=%q: %w", v, err)
		}
		c.MaxLives = n
	}
	if v := os.Getenv("TABUADA_LEADERBOARD_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TABUADA_LEADERBOARD_SIZE=%q: %w", v, err)
		}
		c.LeaderboardSize = n
	}
	return nil
}

// Validate checks the configured values and normalizes the difficulty.
func (c *Config) Validate() error {
	d, err := quiz.ParseDifficulty(string(c.Difficulty))
	if err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}
	c.Difficulty = d

	if err := quiz.ValidateLives(c.MaxLives); err != nil {
		return fmt.Errorf("max_lives: %w", err)
	}
	if c.LeaderboardSize < 1 {
		return fmt.Errorf("leaderboard_size must be positive, got %d", c.LeaderboardSize)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
