// Package pcf857x drives a keypad matrix wired to a PCF8574 (8-bit) or
// PCF8575 (16-bit) I2C port expander.
//
// The PCF857x quasi-bidirectional port is a natural match for the matrix
// contract: a bit written 1 is a weak pull-up that can be read back as an
// input, a bit written 0 sinks current. Rows therefore get genuine
// open-drain behavior and columns get their pull-up from the same latch.
//
// The expander has no registers: a write sets the whole latch (LSB first on
// the PCF8575), a read returns the pin levels. A shadow of the latch is kept
// so driving one row costs a single transfer.
package pcf857x

import (
	"sync"

	"tinygo.org/x/drivers"

	"keypad-go/keypad"
)

// DefaultAddress is the PCF857x base address with A2..A0 strapped low.
const DefaultAddress = 0x20

// Width selects the expander variant.
type Width int

const (
	PCF8574 Width = 8
	PCF8575 Width = 16
)

type Device struct {
	bus   drivers.I2C
	addr  uint16
	width Width

	mu    sync.Mutex
	latch uint16 // shadow of the output latch; 1 = released/pull-up
}

// New creates a driver on a preconfigured I2C bus. The latch starts fully
// released (all ones), the chip's power-on state.
func New(bus drivers.I2C, addr uint16, width Width) *Device {
	if addr == 0 {
		addr = DefaultAddress
	}
	return &Device{bus: bus, addr: addr, width: width, latch: 0xFFFF}
}

// Configure writes the fully-released latch so every pin is a weak high.
func (d *Device) Configure() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.latch = 0xFFFF
	return d.flush()
}

func (d *Device) flush() error {
	if d.width == PCF8574 {
		buf := [1]byte{byte(d.latch)}
		return d.bus.Tx(d.addr, buf[:], nil)
	}
	buf := [2]byte{byte(d.latch), byte(d.latch >> 8)}
	return d.bus.Tx(d.addr, buf[:], nil)
}

func (d *Device) read() (uint16, error) {
	if d.width == PCF8574 {
		var buf [1]byte
		err := d.bus.Tx(d.addr, nil, buf[:])
		return uint16(buf[0]), err
	}
	var buf [2]byte
	err := d.bus.Tx(d.addr, nil, buf[:])
	return uint16(buf[0]) | uint16(buf[1])<<8, err
}

// setPin updates one latch bit: true releases to weak high, false sinks low.
func (d *Device) setPin(pin uint8, release bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if release {
		d.latch |= 1 << pin
	} else {
		d.latch &^= 1 << pin
	}
	return d.flush()
}

// getPin reads the level of one port pin.
func (d *Device) getPin(pin uint8) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.read()
	if err != nil {
		// An unreadable expander looks like an open column, not a press.
		return true
	}
	return v&(1<<pin) != 0
}

// Row binds a matrix row to an expander pin.
func (d *Device) Row(pin uint8) *RowPin { return &RowPin{d: d, pin: pin} }

// Col binds a matrix column to an expander pin.
func (d *Device) Col(pin uint8) *ColPin { return &ColPin{d: d, pin: pin} }

var (
	_ keypad.RowPin = (*RowPin)(nil)
	_ keypad.ColPin = (*ColPin)(nil)
)

type RowPin struct {
	d   *Device
	pin uint8
}

func (r *RowPin) Configure() error { return r.d.setPin(r.pin, true) }
func (r *RowPin) Drive()           { _ = r.d.setPin(r.pin, false) }
func (r *RowPin) Release()         { _ = r.d.setPin(r.pin, true) }

type ColPin struct {
	d   *Device
	pin uint8
}

// Configure leaves the latch bit high; the PCF857x weak pull-up doubles as
// the column pull-up.
func (c *ColPin) Configure() error { return c.d.setPin(c.pin, true) }
func (c *ColPin) Get() bool        { return c.d.getPin(c.pin) }
