// notify/eventgroup.go
package notify

import (
	"context"
	"sync"
)

// EventMask is the set of flag bits an EventGroup can carry. The upper
// byte of the 32-bit word is reserved for synthesized key codes and is
// never latched here.
const EventMask uint32 = 0x00FFFFFF

// -----------------------------------------------------------------------------
// EventGroup
// -----------------------------------------------------------------------------

// EventGroup is a 24-bit wide set of latched flags with broadcast wakeup.
// Setting bits is lossy fan-out: there is no queueing and no back-pressure,
// so a waiter that misses a transition observes only the currently-set bits.
type EventGroup struct {
	mu      sync.Mutex
	bits    uint32
	changed chan struct{} // closed and replaced on every Set
}

// NewEventGroup creates an event group with all bits cleared.
func NewEventGroup() *EventGroup {
	return &EventGroup{changed: make(chan struct{})}
}

// Set ORs bits (masked to EventMask) into the group and wakes all waiters.
// It returns the bit state after the update.
func (g *EventGroup) Set(bits uint32) uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	bits &= EventMask
	if bits == 0 {
		return g.bits
	}
	g.bits |= bits
	close(g.changed)
	g.changed = make(chan struct{})
	return g.bits
}

// Clear removes bits from the group and returns the state before the clear.
func (g *EventGroup) Clear(bits uint32) uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	prev := g.bits
	g.bits &^= bits
	return prev
}

// Bits returns the currently-set flags.
func (g *EventGroup) Bits() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bits
}

// Wait blocks until the wanted bits are satisfied or ctx is done.
//
// With waitAll=false any one of the wanted bits satisfies the wait; with
// waitAll=true every wanted bit must be set at the same time. When
// clearOnExit is true the wanted bits are cleared atomically with a
// successful return, so a flag is consumed by exactly one waiter.
//
// The returned value is the bit state at the moment the wait was satisfied
// (before any clear). On ctx expiry it returns the current bits and ctx.Err().
func (g *EventGroup) Wait(ctx context.Context, bits uint32, waitAll, clearOnExit bool) (uint32, error) {
	bits &= EventMask
	for {
		g.mu.Lock()
		got := g.bits
		ok := false
		if waitAll {
			ok = bits != 0 && got&bits == bits
		} else {
			ok = got&bits != 0
		}
		if ok {
			if clearOnExit {
				g.bits &^= bits
			}
			g.mu.Unlock()
			return got, nil
		}
		ch := g.changed
		g.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return g.Bits(), ctx.Err()
		}
	}
}
