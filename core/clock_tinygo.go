//go:build tinygo

package core

import "sync/atomic"

var millisValue uint32

// getMillis returns the millisecond counter. Atomic because the encoder
// interrupt reads it while the main loop updates it.
func getMillis() uint32 {
	return atomic.LoadUint32(&millisValue)
}

// setMillis sets the millisecond counter.
func setMillis(ms uint32) {
	atomic.StoreUint32(&millisValue, ms)
}
