// pico303-monitor follows the control-change stream a pico303 device
// emits over USB serial and prints each parameter change with its name
// resolved from the firmware's parameter table.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"pico303/core"
	"pico303/host/serial"
	"pico303/midi"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	raw    = flag.Bool("raw", false, "Also print unknown control numbers")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	if err := port.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: flush failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("pico303-monitor - listening on %s\n", *device)

	params := core.NewParamStore()
	var dec midi.Decoder
	buf := make([]byte, 64)

	for {
		n, err := port.Read(buf)
		if err != nil && err != io.EOF {
			fmt.Fprintf(os.Stderr, "Error: read failed: %v\n", err)
			os.Exit(1)
		}

		for _, b := range buf[:n] {
			cc, value, ok := dec.Feed(b)
			if !ok {
				continue
			}
			printChange(params, cc, value)
		}
	}
}

func printChange(params *core.ParamStore, cc, value uint8) {
	if p := params.FindByCC(cc); p != nil {
		fmt.Printf("%-10s (CC %3d) = %3d\n", p.Name, cc, value)
		return
	}
	if *raw {
		fmt.Printf("%-10s (CC %3d) = %3d\n", "?", cc, value)
	}
}
