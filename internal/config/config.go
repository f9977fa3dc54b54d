package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/grayramp/grayramp/internal/gradient"
	"github.com/grayramp/grayramp/internal/overlay"
)

type Config struct {
	Port           int        `envconfig:"PORT" default:"8080"`
	WebDir         string     `envconfig:"WEB_DIR" default:"./web"`
	AllowedOrigins []string   `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel       slog.Level `envconfig:"LOG_LEVEL" default:"INFO"`

	Width        int     `envconfig:"WIDTH" default:"500"`
	Height       int     `envconfig:"HEIGHT" default:"300"`
	HitRadius    float64 `envconfig:"HIT_RADIUS" default:"10"`
	MarkerRadius float64 `envconfig:"MARKER_RADIUS" default:"6"`
	LineWidth    float64 `envconfig:"LINE_WIDTH" default:"2"`
	GuideColor   string  `envconfig:"GUIDE_COLOR" default:"#ffffff"`
	GuideAlpha   float64 `envconfig:"GUIDE_ALPHA" default:"0.5"`
	AccentColor  string  `envconfig:"ACCENT_COLOR" default:"#ff0000"`
	Seed         Seed    `envconfig:"SEED" default:"0:0.2,0.2:1,0.4:0.2,0.6:1,0.8:0.2,1:0.7"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("grayramp", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the editor cannot run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface size %dx%d must be positive", c.Width, c.Height)
	}
	if c.HitRadius <= 0 {
		return errors.New("hit radius must be positive")
	}
	if len(c.Seed) > gradient.MaxPoints {
		return fmt.Errorf("seed has %d points, at most %d allowed", len(c.Seed), gradient.MaxPoints)
	}
	return nil
}

// Style builds the overlay style from the colour and size settings.
func (c *Config) Style() (overlay.Style, error) {
	return overlay.ParseStyle(c.GuideColor, c.GuideAlpha, c.AccentColor, c.LineWidth, c.MarkerRadius)
}

// Points returns a point set holding the configured seed.
func (c *Config) Points() (*gradient.PointSet, error) {
	return gradient.NewPointSet(c.Seed...)
}

// Seed is a list of "position:gray" pairs separated by commas. An empty value
// starts the editor with no points.
type Seed []gradient.ControlPoint

// Decode implements envconfig.Decoder.
func (s *Seed) Decode(value string) error {
	*s = nil
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, pair := range strings.Split(value, ",") {
		x, gray, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return fmt.Errorf("seed point %q: want position:gray", pair)
		}
		px, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return fmt.Errorf("seed point %q: %w", pair, err)
		}
		pg, err := strconv.ParseFloat(gray, 64)
		if err != nil {
			return fmt.Errorf("seed point %q: %w", pair, err)
		}
		*s = append(*s, gradient.ControlPoint{Position: px, Intensity: pg})
	}
	return nil
}
