package display

import (
	"image/color"
	"testing"

	"pico303/core"
)

type mockDisplay struct {
	width, height int16
	lit           map[[2]int16]bool
	frames        int
}

func newMockDisplay() *mockDisplay {
	return &mockDisplay{
		width:  128,
		height: 32,
		lit:    make(map[[2]int16]bool),
	}
}

func (m *mockDisplay) Size() (int16, int16) {
	return m.width, m.height
}

func (m *mockDisplay) SetPixel(x, y int16, c color.RGBA) {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		delete(m.lit, [2]int16{x, y})
		return
	}
	m.lit[[2]int16{x, y}] = true
}

func (m *mockDisplay) Display() error {
	m.frames++
	return nil
}

// litInRect counts lit pixels inside the given rectangle.
func (m *mockDisplay) litInRect(x, y, w, h int16) int {
	count := 0
	for p := range m.lit {
		if p[0] >= x && p[0] < x+w && p[1] >= y && p[1] < y+h {
			count++
		}
	}
	return count
}

type fakePins struct {
	levels map[core.Pin]bool
}

func (f *fakePins) ConfigureInputPullUp(pin core.Pin) error {
	if _, ok := f.levels[pin]; !ok {
		f.levels[pin] = true
	}
	return nil
}

func (f *fakePins) ReadPin(pin core.Pin) bool {
	if level, ok := f.levels[pin]; ok {
		return level
	}
	return true
}

// newTestUI builds a UI whose mode can be toggled through the fake
// button line.
func newTestUI(t *testing.T) (*core.UI, *fakePins) {
	t.Helper()
	pins := &fakePins{levels: make(map[core.Pin]bool)}
	core.SetPinDriver(pins)
	core.SetMillis(0)

	enc := core.NewEncoder(6, 7)
	if err := enc.Configure(); err != nil {
		t.Fatalf("encoder Configure failed: %v", err)
	}
	btn := core.NewButton(8)
	if err := btn.Configure(); err != nil {
		t.Fatalf("button Configure failed: %v", err)
	}
	return core.NewUI(core.NewParamStore(), enc, btn, nil), pins
}

func enterEdit(ui *core.UI, pins *fakePins) {
	core.SetMillis(core.Millis() + 200)
	pins.levels[8] = false
	ui.Update()
	core.SetMillis(core.Millis() + 200)
	pins.levels[8] = true
	ui.Update()
}

func TestRenderMenuFrame(t *testing.T) {
	ui, _ := newTestUI(t)
	dev := newMockDisplay()
	s := New(dev)

	if err := s.Render(ui); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if dev.frames != 1 {
		t.Errorf("Display called %d times, want 1", dev.frames)
	}

	// Menu view shows the navigation arrows, not the back arrow.
	if dev.litInRect(3, 0, 7, 4) == 0 {
		t.Error("menu view missing up arrow")
	}
	if dev.litInRect(3, 28, 7, 4) == 0 {
		t.Error("menu view missing down arrow")
	}
	if dev.litInRect(0, 12, 4, 7) != 0 {
		t.Error("menu view unexpectedly shows the edit back arrow")
	}

	// Bar outline is present.
	if dev.litInRect(barX, barY, barW, 1) == 0 {
		t.Error("bar outline missing")
	}
}

func TestRenderEditFrame(t *testing.T) {
	ui, pins := newTestUI(t)
	enterEdit(ui, pins)
	dev := newMockDisplay()
	s := New(dev)

	if err := s.Render(ui); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if dev.litInRect(0, 12, 4, 7) == 0 {
		t.Error("edit view missing back arrow")
	}
	if dev.litInRect(3, 0, 7, 4) != 0 {
		t.Error("edit view unexpectedly shows the menu up arrow")
	}
	// Numeric value text above the bar.
	if dev.litInRect(valueX, 0, 40, barY-1) == 0 {
		t.Error("edit view missing numeric value")
	}
}

func TestBarFillTracksValue(t *testing.T) {
	ui, _ := newTestUI(t)
	dev := newMockDisplay()
	s := New(dev)

	// Volume defaults to 76/127; drop it to 0 and the fill shrinks.
	ui.SetValueByCC(7, 127)
	s.Render(ui)
	full := dev.litInRect(barX+1, barY+1, barW-2, barH-2)

	ui.SetValueByCC(7, 0)
	s.Render(ui)
	empty := dev.litInRect(barX+1, barY+1, barW-2, barH-2)

	if full <= empty {
		t.Errorf("bar fill did not track value: full=%d empty=%d", full, empty)
	}
}

func TestBarFillMapping(t *testing.T) {
	testCases := []struct {
		value    uint8
		expected int16
	}{
		{0, barFillMin},
		{127, barFillMax},
		{64, barFillMin + int16(64*(barFillMax-barFillMin)/127)},
	}

	for _, tc := range testCases {
		p := core.Parameter{Min: 0, Max: 127, Value: tc.value}
		if got := barFill(p); got != tc.expected {
			t.Errorf("barFill(value=%d) = %d, want %d", tc.value, got, tc.expected)
		}
	}

	// A degenerate range must not divide by zero.
	p := core.Parameter{Min: 5, Max: 5, Value: 5}
	if got := barFill(p); got != barFillMin {
		t.Errorf("barFill(degenerate) = %d, want %d", got, barFillMin)
	}
}

func TestClear(t *testing.T) {
	ui, _ := newTestUI(t)
	dev := newMockDisplay()
	s := New(dev)

	s.Render(ui)
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if len(dev.lit) != 0 {
		t.Errorf("%d pixels lit after Clear, want 0", len(dev.lit))
	}
}

func TestItoa(t *testing.T) {
	testCases := []struct {
		n        int
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{64, "64"},
		{127, "127"},
		{-3, "-3"},
	}

	for _, tc := range testCases {
		if got := itoa(tc.n); got != tc.expected {
			t.Errorf("itoa(%d) = %q, want %q", tc.n, got, tc.expected)
		}
	}
}
