// Package config holds the YAML configuration of the display-test program.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
)

// I2C describes the bus the display is attached to.
type I2C struct {
	// Bus is the I²C bus name as known to i2creg; empty selects the first available bus.
	Bus string `yaml:"bus"`

	// Addr is the 7-bit device address.
	Addr uint8 `yaml:"addr"`

	// Speed is the bus clock, for example "400kHz". Empty keeps the bus default.
	Speed string `yaml:"speed"`

	// Reset is the name of the GPIO pin wired to the display reset line, if any.
	Reset string `yaml:"reset"`
}

// Display describes the panel.
type Display struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// ExternalVCC is set when the panel is powered externally instead of
	// through the internal charge pump.
	ExternalVCC bool `yaml:"external_vcc"`

	// Contrast applied after initialization, 0-255.
	Contrast *uint8 `yaml:"contrast,omitempty"`
}

// Config is the top-level configuration.
type Config struct {
	I2C     I2C     `yaml:"i2c"`
	Display Display `yaml:"display"`
}

// DefaultConfig returns an in-memory default configuration for a 128x64 panel
// at address 0x3C.
func DefaultConfig() *Config {
	c := new(Config)
	c.Normalize()
	return c
}

// Normalize fills in missing/zero values with defaults.
func (c *Config) Normalize() {
	if c.I2C.Addr == 0 {
		c.I2C.Addr = 0x3c
	}
	if c.Display.Width == 0 {
		c.Display.Width = 128
	}
	if c.Display.Height == 0 {
		c.Display.Height = 64
	}
	if c.Display.Contrast == nil {
		contrast := uint8(0xff)
		c.Display.Contrast = &contrast
	}
}

// Frequency parses the configured bus speed; zero means unset.
func (c *I2C) Frequency() (physic.Frequency, error) {
	var f physic.Frequency
	if c.Speed == "" {
		return f, nil
	}
	if err := f.Set(c.Speed); err != nil {
		return 0, fmt.Errorf("config: invalid i2c speed %q: %w", c.Speed, err)
	}
	return f, nil
}

// Load loads configuration from the given YAML path. A missing file is not an
// error, the defaults are returned instead.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Normalize()

	if _, err := cfg.I2C.Frequency(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
