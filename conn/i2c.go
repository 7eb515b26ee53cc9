// Package conn implements bus connections to display controllers.
package conn

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
)

// I2C is a device at a fixed address on an I²C bus. Every Write is one bus
// transaction; nothing is ever read back.
type I2C struct {
	bus   i2c.Bus
	conn  conn.Conn
	addr  uint16
	owned bool
}

// OpenI2C opens the named bus from the i2creg registry, use "" for the first
// available bus. The bus is closed along with the connection.
func OpenI2C(name string, addr uint8) (*I2C, error) {
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, err
	}

	c := NewI2C(bus, addr)
	c.owned = true
	return c, nil
}

// NewI2C binds addr on an already opened bus. Close leaves the bus open.
func NewI2C(bus i2c.Bus, addr uint8) *I2C {
	return &I2C{
		bus:  bus,
		conn: &i2c.Dev{Bus: bus, Addr: uint16(addr)},
		addr: uint16(addr),
	}
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s addr %#02x", c.bus, c.addr)
}

// Addr is the 7-bit device address.
func (c *I2C) Addr() uint16 {
	return c.addr
}

// SetSpeed changes the bus clock.
func (c *I2C) SetSpeed(f physic.Frequency) error {
	return c.bus.SetSpeed(f)
}

func (c *I2C) Close() error {
	if !c.owned {
		return nil
	}
	if closer, ok := c.bus.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *I2C) Write(p []byte) (int, error) {
	if err := c.conn.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}
