// rpi-keypad scans a 4x3 telephone-style keypad wired to Raspberry Pi GPIO
// and publishes every registered press to an MQTT topic.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"keypad-go/keypad"
	"keypad-go/kpio/rpiopin"
)

func main() {
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	topic := flag.String("topic", "keypad/keys", "MQTT topic for key events")
	flag.Parse()

	if err := rpiopin.Open(); err != nil {
		println("Error: gpio open:", err.Error())
		os.Exit(1)
	}
	defer rpiopin.Close()

	// BCM numbering, matching the stock door-panel wiring.
	kp, err := keypad.New(keypad.Config{
		Rows: []keypad.RowPin{
			rpiopin.Row(10), rpiopin.Row(3), rpiopin.Row(4), rpiopin.Row(27),
		},
		Cols: []keypad.ColPin{
			rpiopin.Col(22), rpiopin.Col(9), rpiopin.Col(17),
		},
	})
	if err != nil {
		println("Error: keypad init:", err.Error())
		os.Exit(1)
	}

	opts := mqtt.NewClientOptions().AddBroker(*broker).SetClientID("rpi-keypad")
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		println("Error: mqtt connect:", token.Error().Error())
		os.Exit(1)
	}
	defer client.Disconnect(250)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := kp.Start(ctx); err != nil {
		println("Error: keypad start:", err.Error())
		os.Exit(1)
	}
	println("Info: scanning, publishing to", *topic)

	for {
		v, err := kp.Queue().Receive(ctx)
		if err != nil {
			println("Info: stopping")
			return
		}
		payload := "0x" + strconv.FormatUint(uint64(v), 16)
		client.Publish(*topic, 0, false, payload)
		println("Info: keys", keypad.Keys(v).String())
	}
}
