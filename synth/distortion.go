// Package synth holds the distortion waveshaping stage of the audio
// path: pure per-sample float math with no state beyond the control
// values, so it is safe to call from the audio callback.
package synth

// DistMode selects the waveshaping curve.
type DistMode uint8

const (
	SoftClip DistMode = iota
	HardClip
	Wavefolder
	Diode
	Tube

	distModeCount
)

// Control-change numbers of the distortion parameters.
const (
	ccDistOn   = 80
	ccDistMode = 77
	ccDistAmt  = 78
	ccDistMix  = 79
)

// Distortion is the waveshaping stage. Amount and Mix are normalized to
// [0, 1]; samples are expected in [-1, 1].
type Distortion struct {
	Enabled bool
	Mode    DistMode
	Amount  float32
	Mix     float32
}

// Process runs one sample through the selected curve and blends it with
// the dry signal. Disabled or near-zero amounts pass the input through
// untouched.
func (d *Distortion) Process(in float32) float32 {
	if !d.Enabled || d.Amount <= 0.01 {
		return in
	}

	drive := 1 + d.Amount*9 // map 0..1 to 1..10
	var wet float32
	switch d.Mode {
	case SoftClip:
		wet = softClip(in, drive)
	case HardClip:
		wet = hardClip(in, drive)
	case Wavefolder:
		wet = wavefold(in, drive)
	case Diode:
		wet = diode(in, drive)
	case Tube:
		wet = tube(in, drive)
	default:
		wet = in
	}

	return (1-d.Mix)*in + d.Mix*wet
}

// ApplyCC maps an incoming parameter change onto the distortion
// controls. Returns false for control numbers the stage does not own.
// Wired as a consumer of the UI change notification.
func (d *Distortion) ApplyCC(cc, value uint8) bool {
	switch cc {
	case ccDistOn:
		d.Enabled = value > 63
	case ccDistMode:
		mode := DistMode(value)
		if mode >= distModeCount {
			mode = distModeCount - 1
		}
		d.Mode = mode
	case ccDistAmt:
		d.Amount = float32(value) / 127
	case ccDistMix:
		d.Mix = float32(value) / 127
	default:
		return false
	}
	return true
}

// softClip is a fast sigmoid, x/(1+|x|). Close to tanh with a slightly
// softer knee and far cheaper on a Cortex-M0.
func softClip(x, drive float32) float32 {
	v := x * drive
	return v / (1 + abs32(v))
}

func hardClip(x, drive float32) float32 {
	return clamp32(x*drive, -1, 1)
}

// wavefold reflects the driven signal back from the +-1 boundaries,
// clamped so extreme drive cannot fold past the opposite rail.
func wavefold(x, drive float32) float32 {
	v := x * drive
	if v > 1 {
		v = 2 - v
	} else if v < -1 {
		v = -2 - v
	}
	return clamp32(v, -1, 1)
}

// diode clips asymmetrically: positive swings saturate normally while
// negative swings conduct softer, like a mismatched diode pair.
func diode(x, drive float32) float32 {
	v := x * drive
	if v >= 0 {
		return v / (1 + v)
	}
	v *= 0.5
	return (v / (1 + abs32(v))) * 2
}

// tube adds a second-harmonic term for tube-like asymmetry, then soft
// clips the result with a little makeup gain.
func tube(x, drive float32) float32 {
	v := clamp32(x*drive, -1, 1)
	out := v - 0.2*v*v
	return (out / (1 + abs32(out))) * 1.2
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp32(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
