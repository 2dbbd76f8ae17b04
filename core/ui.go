package core

// Mode is the UI state: browsing the parameter menu or editing the
// selected parameter.
type Mode uint8

const (
	ModeMenu Mode = iota
	ModeEdit
)

// ChangeHandler is notified when an edit commits a changed parameter
// value. Called synchronously from the poll context; must not block.
type ChangeHandler func(cc, value uint8)

// UI is the Menu/Edit state machine. It consumes drained encoder
// movement and debounced button presses, mutates the parameter store,
// and reports whether the display needs a redraw. Poll context only.
type UI struct {
	store *ParamStore
	enc   *Encoder
	btn   *Button

	mode     Mode
	index    int
	onChange ChangeHandler
}

// NewUI creates the state machine in Menu mode on the first parameter.
// onChange may be nil when no change consumer is attached.
func NewUI(store *ParamStore, enc *Encoder, btn *Button, onChange ChangeHandler) *UI {
	return &UI{
		store:    store,
		enc:      enc,
		btn:      btn,
		onChange: onChange,
	}
}

// Update runs one poll cycle: drain the encoder, poll the button, and
// apply both to the current mode. Returns true if the display needs a
// redraw. Movement accumulated since the previous poll is applied as
// one combined jump, so fast turns skip intermediate values by design.
func (u *UI) Update() bool {
	redraw := false

	if delta := u.enc.DrainDelta(); delta != 0 {
		switch u.mode {
		case ModeMenu:
			u.index = wrapIndex(u.index+delta, u.store.Count())
			redraw = true
		case ModeEdit:
			if u.applyEdit(delta) {
				redraw = true
			}
		}
	}

	if u.btn.Poll() {
		if u.mode == ModeMenu {
			u.mode = ModeEdit
		} else {
			u.mode = ModeMenu
		}
		redraw = true
	}

	return redraw
}

// applyEdit adds delta to the selected parameter, clamped to its
// bounds, and notifies the change handler. Reports whether the value
// actually changed; turning past an end stop changes nothing.
func (u *UI) applyEdit(delta int) bool {
	p := &u.store.params[u.index]
	v := int(p.Value) + delta
	if v < int(p.Min) {
		v = int(p.Min)
	} else if v > int(p.Max) {
		v = int(p.Max)
	}
	if uint8(v) == p.Value {
		return false
	}
	p.Value = uint8(v)
	if u.onChange != nil {
		u.onChange(p.CC, p.Value)
	}
	return true
}

// Mode returns the current UI mode.
func (u *UI) Mode() Mode {
	return u.mode
}

// CurrentIndex returns the selected parameter index.
func (u *UI) CurrentIndex() int {
	return u.index
}

// Count returns the number of parameters.
func (u *UI) Count() int {
	return u.store.Count()
}

// Param returns the parameter at index, with the store's index-0
// fallback for out-of-range values.
func (u *UI) Param(index int) Parameter {
	return u.store.Param(index)
}

// SetValueByCC injects an externally sourced value. It deliberately
// bypasses the change handler: the handler feeds the outgoing control
// stream, and echoing injected values back out would loop them.
func (u *UI) SetValueByCC(cc, value uint8) {
	u.store.SetValueByCC(cc, value)
}

// wrapIndex reduces i into [0, count) with wraparound in both
// directions.
func wrapIndex(i, count int) int {
	i %= count
	if i < 0 {
		i += count
	}
	return i
}
