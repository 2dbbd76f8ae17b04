package core

// quadratureTable maps (previous 2-bit pin state, current 2-bit pin state)
// to a signed quarter step. Bit 1 is channel A, bit 0 is channel B. Valid
// transitions follow the Gray-code cycle 00 -> 01 -> 11 -> 10; anything
// else (including a double transition like 00 -> 11) is treated as a
// misread and decodes to 0.
var quadratureTable = [4][4]int8{
	{0, +1, -1, 0},  // from 00
	{-1, 0, 0, +1},  // from 01
	{+1, 0, 0, -1},  // from 10
	{0, -1, +1, 0},  // from 11
}

// decodeQuadrature returns the signed quarter step for a pin state
// transition. Safe to call from the pin-change interrupt: no allocation,
// no branching beyond the table index masks.
func decodeQuadrature(prev, curr uint8) int8 {
	return quadratureTable[prev&0x03][curr&0x03]
}
