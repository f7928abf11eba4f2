// Package keypad scans a passive matrix of momentary switches, debounces the
// observed contacts, and publishes the set of keys held during a stable press
// through two channels: a latched event-bit group and a bounded FIFO.
//
// The matrix is electrically passive: rows are open-drain outputs, columns
// are inputs with pull-ups. At most one row is ever driven low, so multiple
// simultaneous presses cannot short row drivers against each other. With
// presses forming a 2x2 subgrid the scan reports a phantom closure at the
// fourth corner; the scanner does not attempt to detect or suppress this.
package keypad

import (
	"context"
	"sync/atomic"
	"time"

	"keypad-go/errcode"
	"keypad-go/notify"
)

// -----------------------------------------------------------------------------
// Configuration
// -----------------------------------------------------------------------------

// MaxKeys is the largest supported matrix, dictated by the 24-bit event
// group: every electrical key code must fit inside notify.EventMask.
const MaxKeys = 24

// Defaults applied to zero-valued Config fields.
const (
	DefaultStabilize = 1 * time.Millisecond  // per-row RC settle delay
	DefaultPeriod    = 5 * time.Millisecond  // scan cycle period
	DefaultDebounce  = 50 * time.Millisecond // debounce window
	DefaultQueueSize = 10
)

// Config wires a Keypad to its pins and timings. Rows and Cols are the pin
// binding tables; their lengths define the matrix dimensions and the bit
// position of key (r,c) is r*len(Cols)+c.
type Config struct {
	Rows []RowPin
	Cols []ColPin

	Stabilize time.Duration // settle delay after driving a row; default 1ms
	Period    time.Duration // scan task period; default 5ms
	Debounce  time.Duration // debounce window; default 50ms
	QueueSize int           // FIFO depth; default 10

	// Now and Sleep default to the time package. Tests inject a fake clock
	// and a no-op sleep to run the state machine deterministically.
	Now   func() time.Time
	Sleep func(time.Duration)
}

func (c *Config) applyDefaults() {
	if c.Stabilize == 0 {
		c.Stabilize = DefaultStabilize
	}
	if c.Period == 0 {
		c.Period = DefaultPeriod
	}
	if c.Debounce == 0 {
		c.Debounce = DefaultDebounce
	}
	if c.QueueSize == 0 {
		c.QueueSize = DefaultQueueSize
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Sleep == nil {
		c.Sleep = time.Sleep
	}
}

// -----------------------------------------------------------------------------
// Keypad
// -----------------------------------------------------------------------------

// Keypad owns the matrix pins and the press/release state machine. After New
// the pins belong exclusively to the Keypad; after Start the mutable state is
// touched only by the scan task, so no lock guards it.
type Keypad struct {
	cfg  Config
	rows []RowPin
	cols []ColPin

	keysPressed uint32 // sample from the most recent scan
	keysDown    uint32 // OR-accumulated keys of the current press episode

	// Debounce deadline: the window is active while now < debounceUntil.
	// Replaces the original one-shot timer whose expiry callback was empty;
	// the only observable ever needed is "has the window elapsed".
	debounceUntil time.Time

	events *notify.EventGroup
	queue  *notify.Queue

	started atomic.Bool
}

// New validates the binding tables, configures every pin, and creates the
// notification channels. Configuration errors are init-time bugs; the caller
// is expected to treat them as fatal.
func New(cfg Config) (*Keypad, error) {
	cfg.applyDefaults()

	if len(cfg.Rows) == 0 {
		return nil, errcode.NoRows
	}
	if len(cfg.Cols) == 0 {
		return nil, errcode.NoCols
	}
	if len(cfg.Rows)*len(cfg.Cols) > MaxKeys {
		return nil, errcode.TooManyKeys
	}
	if err := checkBindings(cfg.Rows, cfg.Cols); err != nil {
		return nil, err
	}

	k := &Keypad{
		cfg:    cfg,
		rows:   cfg.Rows,
		cols:   cfg.Cols,
		events: notify.NewEventGroup(),
		queue:  notify.NewQueue(cfg.QueueSize),
	}

	for _, r := range k.rows {
		if err := r.Configure(); err != nil {
			return nil, &errcode.E{C: errcode.PinConfig, Op: "configure row", Err: err}
		}
		r.Release()
	}
	for _, c := range k.cols {
		if err := c.Configure(); err != nil {
			return nil, &errcode.E{C: errcode.PinConfig, Op: "configure column", Err: err}
		}
	}
	return k, nil
}

// checkBindings rejects a pin bound to more than one matrix line. Pins are
// compared by value, so implementations must be comparable and carry one
// identity per physical pin (see pin.go).
func checkBindings(rows []RowPin, cols []ColPin) error {
	seen := make(map[any]struct{}, len(rows)+len(cols))
	for _, r := range rows {
		if _, dup := seen[r]; dup {
			return errcode.PinConflict
		}
		seen[r] = struct{}{}
	}
	for _, c := range cols {
		if _, dup := seen[c]; dup {
			return errcode.PinConflict
		}
		seen[c] = struct{}{}
	}
	return nil
}

// Events returns the latched event-bit group. Publication OR-sets the bits
// keysDown & notify.EventMask; consumers wait on any combination of bits.
func (k *Keypad) Events() *notify.EventGroup { return k.events }

// Queue returns the bounded FIFO. Publication enqueues the full 32-bit value
// without blocking and drops it silently when the queue is full.
func (k *Keypad) Queue() *notify.Queue { return k.queue }

// RowCount returns the number of driven rows.
func (k *Keypad) RowCount() int { return len(k.rows) }

// ColCount returns the number of sense columns.
func (k *Keypad) ColCount() int { return len(k.cols) }

// Start spawns the periodic scan task. The first call wins; any later call
// returns errcode.Busy. The task runs until ctx is cancelled.
func (k *Keypad) Start(ctx context.Context) error {
	if !k.started.CompareAndSwap(false, true) {
		return errcode.Busy
	}
	go k.loop(ctx)
	return nil
}

func (k *Keypad) loop(ctx context.Context) {
	tick := time.NewTicker(k.cfg.Period)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			k.step(k.Scan(), k.cfg.Now())
		}
	}
}

// -----------------------------------------------------------------------------
// Debounce / publication state machine
// -----------------------------------------------------------------------------

// step consumes one scan sample.
//
// While any key is held, keysDown accumulates every intersection seen since
// the press began, and the debounce window restarts whenever the sample
// differs from the previous one. On an all-open sample the accumulated set
// is published once, but only if the window has elapsed: a release observed
// inside the window is bounce, and the whole episode is discarded. Presses
// shorter than the debounce window are therefore suppressed entirely.
func (k *Keypad) step(sample uint32, now time.Time) {
	prev := k.keysPressed
	k.keysPressed = sample

	if sample != 0 {
		if sample != prev {
			k.debounceUntil = now.Add(k.cfg.Debounce)
		}
		k.keysDown |= sample
		return
	}

	if k.keysDown != 0 && !k.debounceActive(now) {
		k.events.Set(k.keysDown & notify.EventMask)
		k.queue.TrySend(k.keysDown)
	}
	k.keysDown = 0
}

func (k *Keypad) debounceActive(now time.Time) bool {
	return now.Before(k.debounceUntil)
}
