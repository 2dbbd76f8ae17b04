package core

// Parameter is one named, bounded synth control. Only Value mutates
// after construction, and only within [Min, Max].
type Parameter struct {
	Name  string
	CC    uint8 // MIDI control-change number, unique per parameter
	Value uint8
	Min   uint8
	Max   uint8
}

// defaultParameters is the fixed control set of the instrument. Order
// is menu order. CC numbers must be unique; that is by construction,
// not checked at runtime.
var defaultParameters = [...]Parameter{
	{"Volume", 7, 76, 0, 127}, // ~60% volume
	{"Wave ", 18, 0, 0, 127},
	{"Pitch", 16, 64, 0, 127}, // 64 = center, 0 semitones
	{"Cutoff", 74, 64, 0, 127},
	{"Res", 71, 0, 0, 127},
	{"Env", 17, 64, 0, 127},
	{"Decay", 75, 64, 0, 127},
	{"Accent", 15, 64, 0, 127},
	{"SubOsc", 14, 0, 0, 127},
	{"Dist On", 80, 0, 0, 127}, // >63 = on
	{"Dist Mode", 77, 0, 0, 4},
	{"Dist Amt", 78, 0, 0, 127},
	{"Dist Mix", 79, 0, 0, 127},
	{"Dly Time", 81, 32, 0, 127},
	{"Dly Fdbk", 82, 64, 0, 127},
	{"Dly Sync", 86, 32, 0, 127},
	{"Dly L Div", 91, 32, 0, 127},
	{"Dly R Div", 92, 32, 0, 127},
	{"Dly L Mod", 93, 0, 0, 2},
	{"Dly R Mod", 94, 0, 0, 2},
	{"Dly Mix", 83, 38, 0, 127},
	{"Glide", 100, 64, 0, 127},
}

// ParamStore is the fixed, ordered parameter list. Poll context only.
type ParamStore struct {
	params [len(defaultParameters)]Parameter
}

// NewParamStore returns a store initialized from the default table.
func NewParamStore() *ParamStore {
	return &ParamStore{params: defaultParameters}
}

// Count returns the number of parameters.
func (s *ParamStore) Count() int {
	return len(s.params)
}

// Param returns the parameter at index. An out-of-range index falls
// back to index 0; indices are produced internally and there is no
// error channel in this subsystem, so the fallback is a defined
// contract rather than a failure.
func (s *ParamStore) Param(index int) Parameter {
	if index < 0 || index >= len(s.params) {
		index = 0
	}
	return s.params[index]
}

// FindByCC returns a pointer to the first parameter with the given CC
// number, or nil if no parameter carries it.
func (s *ParamStore) FindByCC(cc uint8) *Parameter {
	for i := range s.params {
		if s.params[i].CC == cc {
			return &s.params[i]
		}
	}
	return nil
}

// SetValueByCC updates a parameter from an external source (incoming
// control messages). Values are clamped to the parameter's bounds so
// the store invariant holds no matter what the caller sends. Unknown
// CC numbers are ignored. Does not emit a change notification; see
// UI.SetValueByCC.
func (s *ParamStore) SetValueByCC(cc, value uint8) {
	p := s.FindByCC(cc)
	if p == nil {
		return
	}
	p.Value = clampValue(value, p.Min, p.Max)
}

func clampValue(v, min, max uint8) uint8 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
