//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"pico303/core"
	"pico303/display"
	"pico303/midi"
)

// Board wiring and tunables.
const (
	encoderPinA  core.Pin = 6
	encoderPinB  core.Pin = 7
	encoderPinSW core.Pin = 8

	displayAddr   = 0x3C
	displayWidth  = 128
	displayHeight = 32

	midiChannel = 0

	// Poll cadence of the input subsystem. The encoder itself is
	// interrupt driven; only the drain, button and redraw run here.
	pollInterval = 5 * time.Millisecond
)

var (
	encoder *core.Encoder
	button  *core.Button
	ui      *core.UI
	screen  *display.Screen

	displayOK bool
)

func main() {
	core.SetDebugWriter(func(s string) { println(s) })
	core.SetPinDriver(&rpPinDriver{})
	UpdateSystemTime()

	encoder = core.NewEncoder(encoderPinA, encoderPinB)
	if err := encoder.Configure(); err != nil {
		core.DebugPrintln("encoder configure failed: " + err.Error())
		return
	}
	button = core.NewButton(encoderPinSW)
	if err := button.Configure(); err != nil {
		core.DebugPrintln("button configure failed: " + err.Error())
		return
	}

	// Parameter changes go out as MIDI CC over the USB CDC port.
	ccOut := midi.NewCCWriter(machine.Serial, midiChannel)
	ui = core.NewUI(core.NewParamStore(), encoder, button, ccOut.Change)

	attachEncoderInterrupts()
	initDisplay()

	if displayOK {
		if err := screen.Render(ui); err != nil {
			core.DebugPrintln("initial render failed: " + err.Error())
		}
	}

	for {
		UpdateSystemTime()
		if ui.Update() && displayOK {
			if err := screen.Render(ui); err != nil {
				core.DebugPrintln("render failed: " + err.Error())
			}
		}
		time.Sleep(pollInterval)
	}
}

// attachEncoderInterrupts routes both channel edges into the decoder.
// Both pins share one handler; the decoder re-reads the pair itself.
func attachEncoderInterrupts() {
	handler := func(machine.Pin) {
		encoder.HandlePinChange()
	}
	machine.Pin(encoderPinA).SetInterrupt(machine.PinToggle, handler)
	machine.Pin(encoderPinB).SetInterrupt(machine.PinToggle, handler)
}

// initDisplay brings up the OLED on I2C1 (GPIO2/GPIO3). Failure is
// survivable: the instrument keeps playing, just without a screen.
func initDisplay() {
	err := machine.I2C1.Configure(machine.I2CConfig{
		SDA:       machine.GPIO2,
		SCL:       machine.GPIO3,
		Frequency: 400_000,
	})
	if err != nil {
		core.DebugPrintln("display i2c init failed: " + err.Error())
		return
	}

	dev := ssd1306.NewI2C(machine.I2C1)
	dev.Configure(ssd1306.Config{
		Address: displayAddr,
		Width:   displayWidth,
		Height:  displayHeight,
	})
	dev.ClearDisplay()

	screen = display.New(&dev)
	displayOK = true
}
