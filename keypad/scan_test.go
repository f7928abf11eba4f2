package keypad

import (
	"testing"
	"time"
)

// tracePin records drive ordering so scan discipline can be asserted.
type traceState struct {
	events []string // "drive0", "release0", ...
	driven map[int]bool
}

type traceRow struct {
	s *traceState
	i int
}

func (p *traceRow) Configure() error { return nil }
func (p *traceRow) Drive() {
	p.s.driven[p.i] = true
	p.s.events = append(p.s.events, "drive"+itoa(p.i))
	n := 0
	for _, d := range p.s.driven {
		if d {
			n++
		}
	}
	if n > 1 {
		p.s.events = append(p.s.events, "SHORT")
	}
}
func (p *traceRow) Release() {
	p.s.driven[p.i] = false
	p.s.events = append(p.s.events, "release"+itoa(p.i))
}

type traceCol struct{ i int }

func (traceCol) Configure() error { return nil }
func (traceCol) Get() bool        { return true }

func itoa(i int) string { return string(rune('0' + i)) }

func newTraceKeypad(t *testing.T, rows int) (*Keypad, *traceState) {
	t.Helper()
	s := &traceState{driven: map[int]bool{}}
	var rp []RowPin
	for i := 0; i < rows; i++ {
		rp = append(rp, &traceRow{s: s, i: i})
	}
	kp, err := New(Config{
		Rows:  rp,
		Cols:  []ColPin{traceCol{i: 0}, traceCol{i: 1}},
		Sleep: func(time.Duration) {},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return kp, s
}

func TestNew_DistinctValuePinsAccepted(t *testing.T) {
	// Value-typed pins of one type are distinct bindings as long as they
	// carry their own identity; only a genuinely repeated pin conflicts.
	s := &traceState{driven: map[int]bool{}}
	_, err := New(Config{
		Rows:  []RowPin{&traceRow{s: s, i: 0}, &traceRow{s: s, i: 1}},
		Cols:  []ColPin{traceCol{i: 0}, traceCol{i: 1}},
		Sleep: func(time.Duration) {},
	})
	if err != nil {
		t.Fatalf("New rejected distinct value-typed pins: %v", err)
	}
}

func TestScan_RowOrderAndExclusiveDrive(t *testing.T) {
	kp, s := newTraceKeypad(t, 4)

	if got := kp.Scan(); got != 0 {
		t.Fatalf("open matrix scanned %#x, want 0", got)
	}

	want := []string{
		"drive0", "release0",
		"drive1", "release1",
		"drive2", "release2",
		"drive3", "release3",
	}
	if len(s.events) != len(want) {
		t.Fatalf("events = %v, want %v", s.events, want)
	}
	for i := range want {
		if s.events[i] != want[i] {
			t.Fatalf("event %d = %q, want %q (full: %v)", i, s.events[i], want[i], s.events)
		}
	}
}

func TestScan_BitsWithinElectricalRange(t *testing.T) {
	m := newFakeMatrix(3, 5)
	kp, err := New(Config{
		Rows:  m.rowPins(),
		Cols:  m.colPins(),
		Sleep: func(time.Duration) {},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for r := 0; r < 3; r++ {
		for c := 0; c < 5; c++ {
			m.press(r, c)
		}
	}

	got := kp.Scan()
	limit := uint32(1)<<(3*5) - 1
	if got&^limit != 0 {
		t.Fatalf("scan %#x set bits at or above position %d", got, 3*5)
	}
	if got != limit {
		t.Fatalf("scan %#x, want every key of the 3x5 matrix", got)
	}
}

func TestScan_BitPositionIsRowTimesColsPlusCol(t *testing.T) {
	m := newFakeMatrix(4, 3)
	kp, err := New(Config{
		Rows:  m.rowPins(),
		Cols:  m.colPins(),
		Sleep: func(time.Duration) {},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for r := 0; r < 4; r++ {
		for c := 0; c < 3; c++ {
			m.press(r, c)
			if got, want := kp.Scan(), uint32(1)<<(r*3+c); got != want {
				t.Fatalf("key (%d,%d): scan %#x, want %#x", r, c, got, want)
			}
			m.release(r, c)
		}
	}
}

func TestScan_SleepsPerRow(t *testing.T) {
	m := newFakeMatrix(4, 2)
	var naps int
	kp, err := New(Config{
		Rows:  m.rowPins(),
		Cols:  m.colPins(),
		Sleep: func(time.Duration) { naps++ },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	kp.Scan()
	if naps != 4 {
		t.Fatalf("stabilization slept %d times, want once per row", naps)
	}
}
