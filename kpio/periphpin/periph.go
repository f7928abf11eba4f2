// Package periphpin binds the keypad matrix to periph.io GPIO pins.
//
// Open-drain rows are emulated the same way as on the Pi: a released row
// floats as an input, a driven row is an output at Low. Pin errors after a
// successful Configure are not expected from memory-mapped hosts and are
// ignored in the scan path.
package periphpin

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"keypad-go/keypad"
)

// Open initializes the periph host drivers. Call once before Configure.
func Open() error {
	_, err := host.Init()
	return err
}

var (
	_ keypad.RowPin = (*RowPin)(nil)
	_ keypad.ColPin = (*ColPin)(nil)
)

type RowPin struct {
	p gpio.PinIO
}

// Row binds a matrix row to a pin.
func Row(p gpio.PinIO) *RowPin { return &RowPin{p: p} }

// RowByName binds a matrix row to a registered pin name, e.g. "GPIO6".
func RowByName(name string) (*RowPin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, errors.New("periphpin: no pin named " + name)
	}
	return Row(p), nil
}

func (r *RowPin) Configure() error { return r.p.In(gpio.Float, gpio.NoEdge) }
func (r *RowPin) Drive()           { _ = r.p.Out(gpio.Low) }
func (r *RowPin) Release()         { _ = r.p.In(gpio.Float, gpio.NoEdge) }

type ColPin struct {
	p gpio.PinIO
}

// Col binds a matrix column to a pin.
func Col(p gpio.PinIO) *ColPin { return &ColPin{p: p} }

// ColByName binds a matrix column to a registered pin name.
func ColByName(name string) (*ColPin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, errors.New("periphpin: no pin named " + name)
	}
	return Col(p), nil
}

func (c *ColPin) Configure() error { return c.p.In(gpio.PullUp, gpio.NoEdge) }
func (c *ColPin) Get() bool        { return c.p.Read() == gpio.High }
