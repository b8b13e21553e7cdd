package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ecc1/bluefruit"
)

func main() {
	d := bluefruit.Open()
	if d.Error() != nil {
		log.Fatal(d.Error())
	}
	defer d.Close()
	for !d.Connected() {
		if d.Error() != nil {
			log.Fatal(d.Error())
		}
		time.Sleep(1 * time.Second)
	}
	log.Printf("connected; waiting for Connect app events")
	for {
		for _, e := range d.ReadPackets() {
			switch e := e.(type) {
			case bluefruit.Button:
				fmt.Printf("button %d %s\n", e.Index, buttonState(e.Pressed))
			case bluefruit.Color:
				fmt.Printf("color #%02X%02X%02X\n", e.Red, e.Green, e.Blue)
			default:
				fmt.Printf("event %+v\n", e)
			}
		}
		if d.Error() != nil {
			log.Fatal(d.Error())
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func buttonState(pressed bool) string {
	if pressed {
		return "pressed"
	}
	return "released"
}
