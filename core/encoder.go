package core

// Detent and acceleration tuning for the reference encoder hardware.
const (
	// detentThreshold is the number of summed quarter steps that make
	// up one physical click. The fitted encoder reports two table
	// transitions per detent.
	detentThreshold = 2

	// Inter-detent times (ms) below these bounds select the 4x and 2x
	// acceleration multipliers. Conservative so slow turns never skip.
	accelFastMS   = 15
	accelMediumMS = 30
)

// Encoder turns raw quadrature pin transitions into an accumulated,
// acceleration-weighted movement count.
//
// HandlePinChange runs in interrupt context and is the sole writer of
// every field. DrainDelta runs in the poll context and is the sole
// reader of pendingDelta; it masks interrupts for the read-and-reset so
// no detent is dropped or double counted. All other fields are private
// to the interrupt side.
type Encoder struct {
	pinA Pin
	pinB Pin

	lastState    uint8  // previous 2-bit pin code
	stepAccum    int8   // quarter steps toward the next detent
	lastDetent   uint32 // ms timestamp of the previous emitted detent
	pendingDelta int16  // summed detents awaiting the next drain
}

// NewEncoder creates an encoder on the two given channel pins.
func NewEncoder(pinA, pinB Pin) *Encoder {
	return &Encoder{pinA: pinA, pinB: pinB}
}

// Configure sets both channel pins as pulled-up inputs and samples the
// initial pin state so the first real transition decodes correctly.
// Call before attaching the pin-change interrupt.
func (e *Encoder) Configure() error {
	pins := MustPins()
	if err := pins.ConfigureInputPullUp(e.pinA); err != nil {
		return err
	}
	if err := pins.ConfigureInputPullUp(e.pinB); err != nil {
		return err
	}
	e.lastState = e.readState()
	e.lastDetent = Millis()
	return nil
}

// HandlePinChange decodes one pin transition. Attach it to the change
// interrupt of both channel pins. It never blocks and never allocates.
func (e *Encoder) HandlePinChange() {
	state := e.readState()
	step := decodeQuadrature(e.lastState, state)
	e.lastState = state
	if step == 0 {
		return
	}

	e.stepAccum += step
	if e.stepAccum < detentThreshold && e.stepAccum > -detentThreshold {
		return
	}

	direction := int16(1)
	if e.stepAccum < 0 {
		direction = -1
	}
	e.stepAccum = 0

	now := Millis()
	mult := accelMultiplier(elapsedMillis(e.lastDetent, now))
	e.lastDetent = now

	e.pendingDelta += direction * int16(mult)
}

// DrainDelta atomically reads and resets the accumulated movement.
// Poll context only. Detents that land during the critical section are
// deferred to the next drain, never lost.
func (e *Encoder) DrainDelta() int {
	state := disableInterrupts()
	delta := e.pendingDelta
	e.pendingDelta = 0
	restoreInterrupts(state)
	return int(delta)
}

func (e *Encoder) readState() uint8 {
	pins := MustPins()
	var state uint8
	if pins.ReadPin(e.pinA) {
		state |= 0x02
	}
	if pins.ReadPin(e.pinB) {
		state |= 0x01
	}
	return state
}

// accelMultiplier maps the time since the previous detent to a movement
// multiplier, so fast turns cover a 0..127 range without wrist strain.
func accelMultiplier(elapsedMS uint32) uint8 {
	switch {
	case elapsedMS < accelFastMS:
		return 4
	case elapsedMS < accelMediumMS:
		return 2
	default:
		return 1
	}
}
