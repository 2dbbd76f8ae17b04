//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks interrupts and returns the previous state.
// Critical sections around the encoder drain must stay as short as
// possible to avoid inflating interrupt latency elsewhere in the device.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts restores a previously saved interrupt state.
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
