package main

import (
	"fmt"
	"log"

	"github.com/ecc1/bluefruit"
)

func main() {
	d := bluefruit.Open()
	if d.Error() != nil {
		log.Fatal(d.Error())
	}
	defer d.Close()
	d.Init()
	fmt.Printf("%s\n", d.Info())
	fmt.Printf("connected: %v\n", d.Connected())
	if d.Error() != nil {
		log.Fatal(d.Error())
	}
}
