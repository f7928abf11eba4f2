package simpin

import (
	"testing"
	"time"

	"keypad-go/keypad"
)

func newTestKeypad(t *testing.T, m *Matrix) *keypad.Keypad {
	t.Helper()
	kp, err := keypad.New(keypad.Config{
		Rows:  m.Rows(),
		Cols:  m.Cols(),
		Sleep: func(time.Duration) {},
	})
	if err != nil {
		t.Fatalf("keypad.New: %v", err)
	}
	return kp
}

func TestOpenMatrixScansZero(t *testing.T) {
	m := NewMatrix(4, 4)
	kp := newTestKeypad(t, m)
	if got := kp.Scan(); got != 0 {
		t.Fatalf("scan = %#x, want 0", got)
	}
}

func TestSinglePressUnambiguous(t *testing.T) {
	m := NewMatrix(4, 4)
	kp := newTestKeypad(t, m)

	m.Press(2, 1)
	if got, want := kp.Scan(), uint32(1)<<(2*4+1); got != want {
		t.Fatalf("scan = %#x, want %#x", got, want)
	}
}

func TestTwoKeysSameColumnNoGhost(t *testing.T) {
	m := NewMatrix(4, 4)
	kp := newTestKeypad(t, m)

	// Two keys on one column share no 2x2 subgrid: no phantom.
	m.Press(0, 2)
	m.Press(3, 2)
	want := uint32(1)<<(0*4+2) | uint32(1)<<(3*4+2)
	if got := kp.Scan(); got != want {
		t.Fatalf("scan = %#x, want %#x", got, want)
	}
}

func TestGhostKeyAtFourthCorner(t *testing.T) {
	m := NewMatrix(4, 4)
	kp := newTestKeypad(t, m)

	// (0,0), (0,1), (1,0) closed: current reaches column 1 through the
	// row-0/row-1 bridge, so (1,1) reads closed too.
	m.Press(0, 0)
	m.Press(0, 1)
	m.Press(1, 0)

	got := kp.Scan()
	phantom := uint32(1) << (1*4 + 1)
	if got&phantom == 0 {
		t.Fatalf("scan = %#x, expected phantom at (1,1)", got)
	}
	pressed := uint32(1)<<0 | uint32(1)<<1 | uint32(1)<<4
	if got != pressed|phantom {
		t.Fatalf("scan = %#x, want %#x", got, pressed|phantom)
	}
}

func TestAtMostOneRowDriven(t *testing.T) {
	m := NewMatrix(4, 4)
	kp := newTestKeypad(t, m)

	// Multi-press across rows is the case open-drain protects against.
	m.Press(0, 0)
	m.Press(1, 0)
	m.Press(2, 3)
	for i := 0; i < 10; i++ {
		kp.Scan()
	}

	if n := m.MaxDriven(); n > 1 {
		t.Fatalf("%d rows driven low simultaneously", n)
	}
}

func TestRowsReleasedAfterScan(t *testing.T) {
	m := NewMatrix(2, 2)
	kp := newTestKeypad(t, m)

	kp.Scan()
	m.mu.Lock()
	defer m.mu.Unlock()
	for r, d := range m.driven {
		if d {
			t.Fatalf("row %d left driven after scan", r)
		}
	}
}
