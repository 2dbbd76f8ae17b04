//go:build rp2040 || rp2350

package main

import (
	"machine"

	"pico303/core"
)

// rpPinDriver implements core.PinDriver on RP2040-class boards. Pin
// numbers map directly onto machine.Pin.
type rpPinDriver struct{}

func (d *rpPinDriver) ConfigureInputPullUp(pin core.Pin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

func (d *rpPinDriver) ReadPin(pin core.Pin) bool {
	return machine.Pin(pin).Get()
}
