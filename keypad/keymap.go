package keypad

import "strconv"

// Keys is a key-code bitmask. Bit r*colCount+c corresponds to the switch at
// row r, column c of the matrix; the integrator keeps any symbolic labels
// consistent with that ordering.
type Keys uint32

// Labels for the stock 4x4 layout:
//
//	1  2  3  MEM
//	4  5  6  CHECK
//	7  8  9  MESSAGE
//	*  0  #  ENTER
//
// KeyLong sits above the electrical mask. It is reserved for an application
// that synthesizes long-press codes; the scanner never sets it.
const (
	KeyNone Keys = 0

	Key1       Keys = 0x0001
	Key2       Keys = 0x0002
	Key3       Keys = 0x0004
	KeyMem     Keys = 0x0008
	Key4       Keys = 0x0010
	Key5       Keys = 0x0020
	Key6       Keys = 0x0040
	KeyCheck   Keys = 0x0080
	Key7       Keys = 0x0100
	Key8       Keys = 0x0200
	Key9       Keys = 0x0400
	KeyMessage Keys = 0x0800
	KeyStar    Keys = 0x1000
	Key0       Keys = 0x2000
	KeyPound   Keys = 0x4000
	KeyEnter   Keys = 0x8000

	KeyLong Keys = 0x10000
)

var keyNames = []struct {
	k    Keys
	name string
}{
	{Key1, "1"}, {Key2, "2"}, {Key3, "3"}, {KeyMem, "MEM"},
	{Key4, "4"}, {Key5, "5"}, {Key6, "6"}, {KeyCheck, "CHECK"},
	{Key7, "7"}, {Key8, "8"}, {Key9, "9"}, {KeyMessage, "MESSAGE"},
	{KeyStar, "*"}, {Key0, "0"}, {KeyPound, "#"}, {KeyEnter, "ENTER"},
	{KeyLong, "LONG"},
}

// Has reports whether every key in want is present in k.
func (k Keys) Has(want Keys) bool { return k&want == want }

// String names the set keys of the stock 4x4 layout, "+"-joined. Bits with
// no label are rendered as their hex value. KeyNone renders as "none".
func (k Keys) String() string {
	if k == KeyNone {
		return "none"
	}
	var s string
	rest := k
	for _, kn := range keyNames {
		if k&kn.k != 0 {
			if s != "" {
				s += "+"
			}
			s += kn.name
			rest &^= kn.k
		}
	}
	if rest != 0 {
		if s != "" {
			s += "+"
		}
		s += "0x" + strconv.FormatUint(uint64(rest), 16)
	}
	return s
}
