package notify

import (
	"context"
	"testing"
	"time"

	"keypad-go/errcode"
)

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue(4)
	for _, v := range []uint32{1, 2, 3} {
		if !q.TrySend(v) {
			t.Fatalf("TrySend(%d) refused with room left", v)
		}
	}
	for _, want := range []uint32{1, 2, 3} {
		v, ok := q.TryReceive()
		if !ok || v != want {
			t.Fatalf("got %d/%v, want %d", v, ok, want)
		}
	}
	if _, ok := q.TryReceive(); ok {
		t.Fatal("receive from empty queue succeeded")
	}
}

func TestQueueDropsOnFullWithoutEviction(t *testing.T) {
	q := NewQueue(2)
	if !q.TrySend(10) || !q.TrySend(11) {
		t.Fatal("fill failed")
	}
	if q.TrySend(12) {
		t.Fatal("send into full queue accepted")
	}
	// Existing entries survive the dropped send.
	if v, _ := q.TryReceive(); v != 10 {
		t.Fatalf("head = %d, want 10", v)
	}
	if v, _ := q.TryReceive(); v != 11 {
		t.Fatalf("next = %d, want 11", v)
	}
}

func TestQueueReceiveBlocksUntilSend(t *testing.T) {
	q := NewQueue(1)
	done := make(chan uint32, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		v, err := q.Receive(ctx)
		if err != nil {
			close(done)
			return
		}
		done <- v
	}()

	time.Sleep(5 * time.Millisecond)
	q.TrySend(42)

	select {
	case v, ok := <-done:
		if !ok || v != 42 {
			t.Fatalf("got %d/%v, want 42", v, ok)
		}
	case <-time.After(time.Second):
		t.Fatal("receiver never woke")
	}
}

func TestQueueReceiveTimeout(t *testing.T) {
	q := NewQueue(1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := q.Receive(ctx); errcode.Of(err) != errcode.Timeout {
		t.Fatalf("got %v, want timeout", err)
	}
}

func TestQueueReceiveCancelledIsNotTimeout(t *testing.T) {
	q := NewQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	_, err := q.Receive(ctx)
	if err != context.Canceled {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestQueueLenCap(t *testing.T) {
	q := NewQueue(3)
	q.TrySend(1)
	if q.Len() != 1 || q.Cap() != 3 {
		t.Fatalf("len=%d cap=%d, want 1/3", q.Len(), q.Cap())
	}
}
