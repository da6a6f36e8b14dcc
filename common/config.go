package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSchtasksTimeout bounds a single schtasks invocation.
const DefaultSchtasksTimeout = 30 * time.Second

// Config holds the runtime settings resolved from the environment.
type Config struct {
	// SchtasksPath is the scheduler tool to invoke.
	SchtasksPath string

	// SchtasksTimeout bounds every scheduler invocation. Zero means no timeout.
	SchtasksTimeout time.Duration

	// AudioPath overrides the alert sound location when non-empty.
	AudioPath string

	// Volume is passed to the volume effect (base 2). Zero plays unchanged.
	Volume float64

	// Debug enables debug level console logging.
	Debug bool
}

// LoadConfig reads the optional EnvFileName from dir (variables already
// present in the environment win) and then resolves Config from the environment.
func LoadConfig(dir string) (Config, error) {
	if dir != "" {
		err := godotenv.Load(filepath.Join(dir, EnvFileName))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", EnvFileName, err)
		}
	}
	return ConfigFromEnv()
}

// ConfigFromEnv resolves Config from the process environment only.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		SchtasksPath:    DefaultSchtasksPath,
		SchtasksTimeout: DefaultSchtasksTimeout,
		AudioPath:       strings.TrimSpace(os.Getenv(AudioPathEnv)),
	}
	if p := strings.TrimSpace(os.Getenv(SchtasksPathEnv)); p != "" {
		cfg.SchtasksPath = p
	}
	if v := strings.TrimSpace(os.Getenv(SchtasksTimeoutEnv)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid %s %q, expected a duration like 30s", SchtasksTimeoutEnv, v)
		}
		cfg.SchtasksTimeout = d
	}
	if v := strings.TrimSpace(os.Getenv(VolumeEnv)); v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", VolumeEnv, v, err)
		}
		cfg.Volume = vol
	}
	if v := strings.TrimSpace(os.Getenv(DebugEnv)); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", DebugEnv, v, err)
		}
		cfg.Debug = debug
	}
	return cfg, nil
}
