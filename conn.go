package ssd1306

import (
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/ssd1306/conn"
	"github.com/BeatGlow/ssd1306/internal/log"
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Write sends p to the display in a single bus transaction.
	Write(p []byte) (int, error)
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Bus is the I²C bus name, use "" to use the first available bus.
	Bus string

	// Addr is the I²C address.
	Addr uint8

	// Speed of the bus clock, zero keeps the current speed.
	Speed physic.Frequency
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Addr: 0x3c,
}

// OpenI2C opens the I²C bus and binds the display address. A nil config uses
// DefaultI2CConfig.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}
	if config.Addr == 0 {
		config.Addr = DefaultI2CConfig.Addr
	}

	c, err := conn.OpenI2C(config.Bus, config.Addr)
	if err != nil {
		return nil, err
	}

	if config.Speed > 0 {
		if err = c.SetSpeed(config.Speed); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	log.Debug("ssd1306: opened", "conn", c, "speed", config.Speed)
	return c, nil
}
