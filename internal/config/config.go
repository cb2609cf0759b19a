package config

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Config holds the host settings shared by the server and the simulator.
type Config struct {
	ListenAddr   string        `env:"HYDRO_LISTEN_ADDR" envDefault:":8080"`
	TickInterval time.Duration `env:"HYDRO_TICK_INTERVAL" envDefault:"3s"`
	Seed         uint64        `env:"HYDRO_SEED" envDefault:"0"`
	LogLevel     string        `env:"HYDRO_LOG_LEVEL" envDefault:"info"`
	Autostart    bool          `env:"HYDRO_AUTOSTART" envDefault:"true"`
	AllowOrigin  string        `env:"HYDRO_CORS_ORIGIN"`
	EnvFile      string        `env:"HYDRO_ENV_FILE"`
}

var ErrInvalidConfig = errors.New("invalid config")

// Load reads an optional dotenv file and then parses the process
// environment. Variables already set in the environment win over the file.
func Load() (Config, error) {
	if err := loadEnvFile(os.Getenv("HYDRO_ENV_FILE")); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("%w: HYDRO_TICK_INTERVAL must be positive, got %s", ErrInvalidConfig, cfg.TickInterval)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		// The default file is optional.
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", defaultEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseLevel maps a level name onto hlog's levels.
func ParseLevel(name string) (hlog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return hlog.LevelTrace, nil
	case "debug":
		return hlog.LevelDebug, nil
	case "", "info":
		return hlog.LevelInfo, nil
	case "notice":
		return hlog.LevelNotice, nil
	case "warn", "warning":
		return hlog.LevelWarn, nil
	case "error":
		return hlog.LevelError, nil
	default:
		return hlog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, name)
	}
}

// ApplyLogLevel sets hlog's global level; Load has already validated it.
func (c Config) ApplyLogLevel() {
	lv, err := ParseLevel(c.LogLevel)
	if err != nil {
		return
	}
	hlog.SetLevel(lv)
}

// ResolveSeed returns the configured seed, or a fresh one when it is zero.
func (c Config) ResolveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
