package core

// DebugWriter is a function type for writing debug messages.
type DebugWriter func(string)

// debugPrintln is the global debug print function. No-op by default so
// core code can log unconditionally without a configured platform.
var debugPrintln DebugWriter = func(string) {}

// SetDebugWriter sets the platform-specific debug output function.
// Platforms redirect output to UART, USB CDC, or stdout on the host.
func SetDebugWriter(writer DebugWriter) {
	if writer != nil {
		debugPrintln = writer
	}
}

// DebugPrintln writes a debug message using the platform writer. Never
// call from interrupt context; writers are allowed to block briefly.
func DebugPrintln(msg string) {
	debugPrintln(msg)
}
