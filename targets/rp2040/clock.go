//go:build rp2040 || rp2350

package main

import (
	"runtime/volatile"
	"unsafe"

	"pico303/core"
)

// RP2040/RP2350 timer peripheral: a 64-bit microsecond counter at 1MHz.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08 // Raw timer high word
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// hardwareMicros reads the full 64-bit microsecond counter.
// High word first, then low, then high again to detect rollover.
func hardwareMicros() uint64 {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
		// Rollover happened mid-read, retry.
	}
}

// UpdateSystemTime feeds the core millisecond clock from the hardware
// timer. The 64-bit read keeps the derived millisecond value monotonic
// through the raw counter's 32-bit microsecond wrap.
func UpdateSystemTime() {
	core.SetMillis(uint32(hardwareMicros() / 1000))
}
