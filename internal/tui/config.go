package tui

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the demo configuration loaded from environment variables.
type Config struct {
	FPS         int    `env:"LOOPDEMO_FPS" envDefault:"24"`
	FrameStart  int    `env:"LOOPDEMO_FRAME_START" envDefault:"1"`
	FrameEnd    int    `env:"LOOPDEMO_FRAME_END" envDefault:"120"`
	DefaultMode string `env:"LOOPDEMO_DEFAULT_MODE" envDefault:"loop"`
	IconsOnly   bool   `env:"LOOPDEMO_ICONS_ONLY" envDefault:"true"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values for consistency.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.FrameStart > c.FrameEnd {
		return fmt.Errorf("frame range start %d exceeds end %d", c.FrameStart, c.FrameEnd)
	}
	return nil
}
