// hat-keypad scans a 4x4 keypad hat through periph.io and prints every
// registered press. Pin names are whatever the host registers ("GPIO6",
// "P1_31", ...).
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"keypad-go/keypad"
	"keypad-go/kpio/periphpin"
)

func main() {
	rowNames := flag.String("rows", "GPIO6,GPIO19,GPIO5,GPIO26", "row pins, driven")
	colNames := flag.String("cols", "GPIO21,GPIO20,GPIO16,GPIO13", "column pins, sensed")
	flag.Parse()

	if err := periphpin.Open(); err != nil {
		println("Error: host init:", err.Error())
		os.Exit(1)
	}

	var cfg keypad.Config
	for _, name := range strings.Split(*rowNames, ",") {
		p, err := periphpin.RowByName(name)
		if err != nil {
			println("Error:", err.Error())
			os.Exit(1)
		}
		cfg.Rows = append(cfg.Rows, p)
	}
	for _, name := range strings.Split(*colNames, ",") {
		p, err := periphpin.ColByName(name)
		if err != nil {
			println("Error:", err.Error())
			os.Exit(1)
		}
		cfg.Cols = append(cfg.Cols, p)
	}

	kp, err := keypad.New(cfg)
	if err != nil {
		println("Error: keypad init:", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := kp.Start(ctx); err != nil {
		println("Error: keypad start:", err.Error())
		os.Exit(1)
	}

	for {
		v, err := kp.Queue().Receive(ctx)
		if err != nil {
			println("Info: stopping")
			return
		}
		println("Info: keys", keypad.Keys(v).String())
	}
}
