// Package serial provides the host-side serial port used to follow a
// pico303 device over its USB CDC connection.
package serial

import (
	"io"
)

// Port represents a serial port. An interface so tools can substitute
// a mock (or any io.ReadWriteCloser-backed transport) in tests.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data.
	Flush() error
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate. USB CDC ignores this, but real UART bridges need it.
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the firmware's USB
// CDC endpoint.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
