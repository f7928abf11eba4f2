//go:build rp2040

// pico-keypad runs the matrix scanner on a Raspberry Pi Pico and mirrors
// every registered press to UART0 for a host console.
package main

import (
	"context"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"keypad-go/keypad"
	"keypad-go/kpio/rp2pin"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	uart := uartx.UART0
	_ = uart.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})

	kp, err := keypad.New(keypad.Config{
		Rows: []keypad.RowPin{
			rp2pin.Row(2), rp2pin.Row(3), rp2pin.Row(4), rp2pin.Row(5),
		},
		Cols: []keypad.ColPin{
			rp2pin.Col(6), rp2pin.Col(7), rp2pin.Col(8), rp2pin.Col(9),
		},
	})
	if err != nil {
		println("Error: keypad init:", err.Error())
		return
	}

	ctx := context.Background()
	if err := kp.Start(ctx); err != nil {
		println("Error: keypad start:", err.Error())
		return
	}

	for {
		v, err := kp.Queue().Receive(ctx)
		if err != nil {
			return
		}
		line := "keys " + keypad.Keys(v).String() + "\r\n"
		_, _ = uart.Write([]byte(line))
		println("Info: keys", keypad.Keys(v).String())
	}
}
