// Package midi encodes parameter changes as MIDI control-change
// messages and parses them back out of a byte stream. The firmware
// writes the stream over USB CDC; the host monitor reads it.
package midi

import "io"

// MIDI status bytes (upper nibble).
const (
	MsgControlChange = 0xB0

	statusBit = 0x80
	dataMask  = 0x7F
)

// CCWriter emits 3-byte control-change messages on a fixed channel.
// Its Change method satisfies the UI change-notification signature, so
// it can be handed to the state machine directly.
type CCWriter struct {
	w      io.Writer
	status byte
	buf    [3]byte
}

// NewCCWriter creates a writer for the given MIDI channel (0-15).
func NewCCWriter(w io.Writer, channel uint8) *CCWriter {
	return &CCWriter{w: w, status: MsgControlChange | (channel & 0x0F)}
}

// WriteCC sends one control-change message.
func (c *CCWriter) WriteCC(cc, value uint8) error {
	c.buf[0] = c.status
	c.buf[1] = cc & dataMask
	c.buf[2] = value & dataMask
	_, err := c.w.Write(c.buf[:])
	return err
}

// Change adapts WriteCC to the change-notification callback. Write
// errors are dropped: the poll path has no error channel and a stalled
// host must not wedge the UI.
func (c *CCWriter) Change(cc, value uint8) {
	_ = c.WriteCC(cc, value)
}

// Decoder incrementally extracts control-change messages from a MIDI
// byte stream. Non-CC messages are skipped and running status is
// honored, so the decoder stays in sync on a shared stream.
type Decoder struct {
	status byte
	first  byte
	have   bool
}

// Feed consumes one byte. ok is true when a complete control-change
// message has been assembled; cc and value are its data bytes.
func (d *Decoder) Feed(b byte) (cc, value uint8, ok bool) {
	if b&statusBit != 0 {
		d.status = b
		d.have = false
		return 0, 0, false
	}

	if d.status&0xF0 != MsgControlChange {
		return 0, 0, false
	}

	if !d.have {
		d.first = b
		d.have = true
		return 0, 0, false
	}

	d.have = false // running status: keep d.status for the next pair
	return d.first, b, true
}
