// Package rpiopin binds the keypad matrix to Raspberry Pi GPIO through
// github.com/stianeikeland/go-rpio.
//
// The BCM283x pads have no open-drain output mode, so the row contract is
// emulated: a released row is switched to a floating input and a driven row
// to an output sinking low. The pin is never configured as a driven-high
// output, preserving the anti-short property.
package rpiopin

import (
	"github.com/stianeikeland/go-rpio"

	"keypad-go/keypad"
)

// Open memory-maps the GPIO registers. Call once before Configure.
func Open() error { return rpio.Open() }

// Close unmaps the GPIO registers.
func Close() error { return rpio.Close() }

var (
	_ keypad.RowPin = (*RowPin)(nil)
	_ keypad.ColPin = (*ColPin)(nil)
)

type RowPin struct {
	p rpio.Pin
}

// Row binds a matrix row to a BCM pin number.
func Row(bcm uint8) *RowPin { return &RowPin{p: rpio.Pin(bcm)} }

func (r *RowPin) Configure() error {
	r.Release()
	return nil
}

func (r *RowPin) Drive() {
	r.p.Output()
	r.p.Low()
}

func (r *RowPin) Release() {
	r.p.Input()
	r.p.PullOff()
}

type ColPin struct {
	p rpio.Pin
}

// Col binds a matrix column to a BCM pin number.
func Col(bcm uint8) *ColPin { return &ColPin{p: rpio.Pin(bcm)} }

func (c *ColPin) Configure() error {
	c.p.Input()
	c.p.PullUp()
	return nil
}

func (c *ColPin) Get() bool { return c.p.Read() == rpio.High }
