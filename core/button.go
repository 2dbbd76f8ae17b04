package core

// debounceMS is the minimum time a level change must be separated from
// the previous committed transition before it is believed. Applied to
// both press and release edges.
const debounceMS = 100

// Button debounces an active-low push-button line into single press
// events. Poll context only; no synchronization needed.
type Button struct {
	pin            Pin
	stablePressed  bool   // debounced level, true = pressed
	lastTransition uint32 // ms timestamp of the last committed transition
}

// NewButton creates a debouncer for the given active-low pin.
func NewButton(pin Pin) *Button {
	return &Button{pin: pin}
}

// Configure sets the pin as a pulled-up input and captures the current
// level as the initial stable state.
func (b *Button) Configure() error {
	pins := MustPins()
	if err := pins.ConfigureInputPullUp(b.pin); err != nil {
		return err
	}
	b.stablePressed = !pins.ReadPin(b.pin)
	b.lastTransition = Millis()
	return nil
}

// Poll samples the line once and reports whether a debounced press edge
// occurred. Exactly one true per physical press; releases update state
// silently. Bounce within the debounce window of the previous committed
// transition is ignored.
func (b *Button) Poll() bool {
	rawPressed := !MustPins().ReadPin(b.pin) // active low
	if rawPressed == b.stablePressed {
		return false
	}

	now := Millis()
	if elapsedMillis(b.lastTransition, now) <= debounceMS {
		return false
	}

	b.stablePressed = rawPressed
	b.lastTransition = now
	return rawPressed
}
