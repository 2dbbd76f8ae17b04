package core

// mockPins is a test implementation of PinDriver. Unset pins read high,
// matching the pull-up idle level of the real hardware.
type mockPins struct {
	levels     map[Pin]bool
	configured map[Pin]bool
}

func newMockPins() *mockPins {
	return &mockPins{
		levels:     make(map[Pin]bool),
		configured: make(map[Pin]bool),
	}
}

func (m *mockPins) ConfigureInputPullUp(pin Pin) error {
	m.configured[pin] = true
	if _, ok := m.levels[pin]; !ok {
		m.levels[pin] = true
	}
	return nil
}

func (m *mockPins) ReadPin(pin Pin) bool {
	if level, ok := m.levels[pin]; ok {
		return level
	}
	return true
}

func (m *mockPins) set(pin Pin, level bool) {
	m.levels[pin] = level
}

// Test pin assignments, mirroring the reference board wiring.
const (
	testPinA  Pin = 6
	testPinB  Pin = 7
	testPinSW Pin = 8
)

// grayCycle is the quadrature state sequence for clockwise rotation.
var grayCycle = [4]uint8{0b00, 0b01, 0b11, 0b10}

// grayIndex returns the position of state in grayCycle.
func grayIndex(state uint8) int {
	for i, s := range grayCycle {
		if s == state {
			return i
		}
	}
	return 0
}

// setEncoderPins drives the mock channel pins to the given 2-bit state
// (bit 1 = channel A, bit 0 = channel B).
func setEncoderPins(pins *mockPins, state uint8) {
	pins.set(testPinA, state&0x02 != 0)
	pins.set(testPinB, state&0x01 != 0)
}

// spin advances the encoder by quarterSteps transitions (positive =
// clockwise), stepping the clock by stepMS before each transition and
// invoking the interrupt handler as the hardware would.
func spin(e *Encoder, pins *mockPins, quarterSteps int, stepMS uint32) {
	idx := grayIndex(e.lastState)
	dir := 1
	if quarterSteps < 0 {
		dir = -1
		quarterSteps = -quarterSteps
	}
	for i := 0; i < quarterSteps; i++ {
		idx = (idx + dir + len(grayCycle)) % len(grayCycle)
		SetMillis(Millis() + stepMS)
		setEncoderPins(pins, grayCycle[idx])
		e.HandlePinChange()
	}
}
