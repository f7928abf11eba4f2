//go:build rp2040 || rp2350

// Package rp2pin binds the keypad matrix to RP2 family GPIO through the
// TinyGo machine package. The SIO block has no open-drain output mode, so a
// released row floats as a plain input and a driven row is reconfigured as
// an output sinking low.
package rp2pin

import (
	"machine"

	"keypad-go/keypad"
)

var (
	_ keypad.RowPin = (*RowPin)(nil)
	_ keypad.ColPin = (*ColPin)(nil)
)

type RowPin struct {
	p machine.Pin
}

// Row binds a matrix row to GPn.
func Row(n int) *RowPin { return &RowPin{p: machine.Pin(n)} }

func (r *RowPin) Configure() error {
	r.Release()
	return nil
}

func (r *RowPin) Drive() {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Low()
}

func (r *RowPin) Release() {
	r.p.Configure(machine.PinConfig{Mode: machine.PinInput})
}

type ColPin struct {
	p machine.Pin
}

// Col binds a matrix column to GPn.
func Col(n int) *ColPin { return &ColPin{p: machine.Pin(n)} }

func (c *ColPin) Configure() error {
	c.p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

func (c *ColPin) Get() bool { return c.p.Get() }
