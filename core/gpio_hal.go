package core

// Pin identifies a hardware digital input pin number.
type Pin uint8

// PinDriver is the abstract digital-input interface the subsystem uses.
// Platform-specific code supplies the real implementation; tests supply
// a mock. The encoder and button lines are the only pins this subsystem
// touches, and only as pulled-up inputs.
type PinDriver interface {
	// ConfigureInputPullUp configures a pin as a digital input with
	// the internal pull-up enabled.
	ConfigureInputPullUp(pin Pin) error

	// ReadPin reads the current pin level (true = high).
	// Must be safe to call from interrupt context.
	ReadPin(pin Pin) bool
}

// Global singleton used by core code.
var pinDriver PinDriver

// SetPinDriver is called by target-specific code to register its driver.
func SetPinDriver(d PinDriver) {
	pinDriver = d
}

// MustPins returns the configured driver or panics if missing.
func MustPins() PinDriver {
	if pinDriver == nil {
		panic("pin driver not configured")
	}
	return pinDriver
}
