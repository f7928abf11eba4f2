package main

import (
	"context"
	"time"

	"keypad-go/keypad"
	"keypad-go/kpio/simpin"
)

// Demo against the simulated matrix: a clean press, a chord, and a tap too
// short to survive the debounce window.
func main() {
	sim := simpin.NewMatrix(4, 4)

	kp, err := keypad.New(keypad.Config{
		Rows: sim.Rows(),
		Cols: sim.Cols(),
	})
	if err != nil {
		println("Error: keypad init:", err.Error())
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := kp.Start(ctx); err != nil {
		println("Error: keypad start:", err.Error())
		return
	}

	go func() {
		press := func(r, c int, hold time.Duration) {
			sim.Press(r, c)
			time.Sleep(hold)
			sim.Release(r, c)
			time.Sleep(100 * time.Millisecond)
		}

		press(0, 0, 150*time.Millisecond) // "1"
		press(3, 2, 150*time.Millisecond) // "#"

		// Chord: 5 + 6 held together.
		sim.Press(1, 1)
		sim.Press(1, 2)
		time.Sleep(150 * time.Millisecond)
		sim.ReleaseAll()
		time.Sleep(100 * time.Millisecond)

		// Too short to register.
		press(2, 0, 10*time.Millisecond)

		time.Sleep(200 * time.Millisecond)
		cancel()
	}()

	for {
		v, err := kp.Queue().Receive(ctx)
		if err != nil {
			println("Info: demo done")
			return
		}
		println("Info: keys", keypad.Keys(v).String())
	}
}
