package core

// The subsystem keeps time with a monotonic millisecond counter supplied
// by the platform. The counter is free to wrap; all elapsed-time math is
// done with unsigned subtraction so a single wraparound between two
// readings still yields the correct interval.

// Millis returns the current monotonic time in milliseconds.
func Millis() uint32 {
	return getMillis()
}

// SetMillis sets the millisecond counter. Platform code calls this from
// its main loop (or a timer tick); host tests call it to drive time.
func SetMillis(ms uint32) {
	setMillis(ms)
}

// elapsedMillis returns now-since, correct across a single uint32 wrap.
func elapsedMillis(since, now uint32) uint32 {
	return now - since
}
