// Package display renders the menu and edit screens of the parameter UI
// onto a 128x32 monochrome OLED. It draws through the drivers.Displayer
// interface so any framebuffer-style device (or a test double) works;
// board code supplies the real ssd1306 device.
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"pico303/core"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// Screen layout for the 128x32 panel.
const (
	nameX    = 6
	nameY    = 17 // text baseline
	valueX   = 65
	valueY   = 9

	barX = 65
	barY = 12
	barW = 62
	barH = 7

	// Fill width range inside the bar outline, in pixels.
	barFillMin = 2
	barFillMax = 61
)

// Arrow glyphs, one byte per row, MSB = leftmost pixel.
var (
	arrowUp   = []byte{0x10, 0x38, 0x7c, 0xfe}                   // 7x4
	arrowDown = []byte{0xfe, 0x7c, 0x38, 0x10}                   // 7x4
	arrowLeft = []byte{0x10, 0x30, 0x70, 0xf0, 0x70, 0x30, 0x10} // 4x7
)

// Screen draws UI frames onto a display device.
type Screen struct {
	dev    drivers.Displayer
	width  int16
	height int16
}

// New creates a Screen over the given device.
func New(dev drivers.Displayer) *Screen {
	w, h := dev.Size()
	return &Screen{dev: dev, width: w, height: h}
}

// Render draws the frame for the UI's current mode and pushes it to the
// device: the menu view shows the parameter name, its value bar and
// up/down navigation arrows; the edit view adds the numeric value and a
// left "back" arrow instead.
func (s *Screen) Render(ui *core.UI) error {
	p := ui.Param(ui.CurrentIndex())
	s.clearBuffer()

	tinyfont.WriteLine(s.dev, &proggy.TinySZ8pt7b, nameX, nameY, p.Name, white)
	s.drawRoundRect(barX, barY, barW, barH)
	s.fillRect(barX+1, barY+1, barFill(p), barH-2, white)

	if ui.Mode() == core.ModeEdit {
		tinyfont.WriteLine(s.dev, &proggy.TinySZ8pt7b, valueX, valueY, itoa(int(p.Value)), white)
		s.drawBitmap(0, 12, arrowLeft, 4)
	} else {
		s.drawBitmap(3, 0, arrowUp, 7)
		s.drawBitmap(3, s.height-4, arrowDown, 7)
	}

	return s.dev.Display()
}

// Clear blanks the device.
func (s *Screen) Clear() error {
	s.clearBuffer()
	return s.dev.Display()
}

func (s *Screen) clearBuffer() {
	s.fillRect(0, 0, s.width, s.height, black)
}

// barFill maps a parameter value from [Min, Max] to the bar fill width
// in [barFillMin, barFillMax].
func barFill(p core.Parameter) int16 {
	span := int(p.Max) - int(p.Min)
	if span <= 0 {
		return barFillMin
	}
	pos := int(p.Value) - int(p.Min)
	return int16(barFillMin + pos*(barFillMax-barFillMin)/span)
}

func (s *Screen) fillRect(x, y, w, h int16, c color.RGBA) {
	for dy := int16(0); dy < h; dy++ {
		for dx := int16(0); dx < w; dx++ {
			s.dev.SetPixel(x+dx, y+dy, c)
		}
	}
}

// drawRoundRect outlines a rectangle with radius-2 corners.
func (s *Screen) drawRoundRect(x, y, w, h int16) {
	for dx := int16(2); dx < w-2; dx++ {
		s.dev.SetPixel(x+dx, y, white)
		s.dev.SetPixel(x+dx, y+h-1, white)
	}
	for dy := int16(2); dy < h-2; dy++ {
		s.dev.SetPixel(x, y+dy, white)
		s.dev.SetPixel(x+w-1, y+dy, white)
	}
	s.dev.SetPixel(x+1, y+1, white)
	s.dev.SetPixel(x+w-2, y+1, white)
	s.dev.SetPixel(x+1, y+h-2, white)
	s.dev.SetPixel(x+w-2, y+h-2, white)
}

// drawBitmap draws a glyph stored one byte per row, MSB first.
func (s *Screen) drawBitmap(x, y int16, rows []byte, w int16) {
	for dy, row := range rows {
		for dx := int16(0); dx < w; dx++ {
			if row&(0x80>>uint(dx)) != 0 {
				s.dev.SetPixel(x+dx, y+int16(dy), white)
			}
		}
	}
}
