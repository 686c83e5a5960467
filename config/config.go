package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	BackendGoCV      = "gocv"
	BackendSimulated = "simulated"

	DefaultCascadePath  = "haarcascade_frontalface_default.xml"
	DefaultDisplayTitle = "Face Detector"
	DefaultQuitKey      = 'q'
	DefaultFrameDelay   = 10 * time.Millisecond
)

type Config struct {
	CascadePath   string
	DisplayTitle  string
	QuitKey       rune
	FrameDelay    time.Duration
	LogLevel      string
	CameraBackend string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		CascadePath:   envOr("CASCADE_PATH", DefaultCascadePath),
		DisplayTitle:  envOr("DISPLAY_TITLE", DefaultDisplayTitle),
		QuitKey:       DefaultQuitKey,
		FrameDelay:    DefaultFrameDelay,
		LogLevel:      strings.ToLower(envOr("LOG_LEVEL", "info")),
		CameraBackend: strings.ToLower(envOr("CAMERA_BACKEND", BackendGoCV)),
	}

	if key := os.Getenv("QUIT_KEY"); key != "" {
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, errors.Errorf("QUIT_KEY must be a single character, got %q", key)
		}
		cfg.QuitKey = runes[0]
	}

	if raw := os.Getenv("FRAME_DELAY_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrap(err, "parse FRAME_DELAY_MS")
		}
		cfg.FrameDelay = time.Duration(ms) * time.Millisecond
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, которые нельзя исправить по умолчанию.
func (c *Config) Validate() error {
	if c.CascadePath == "" {
		return errors.New("CASCADE_PATH must not be empty")
	}
	if c.FrameDelay <= 0 {
		return errors.Errorf("frame delay must be positive, got %s", c.FrameDelay)
	}
	switch c.CameraBackend {
	case BackendGoCV, BackendSimulated:
	default:
		return errors.Errorf("unknown CAMERA_BACKEND %q", c.CameraBackend)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
