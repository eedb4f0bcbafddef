package common

// DivCeil returns a/b rounded up
func DivCeil(a, b int) int {
	return (a + b - 1) / b
}

// PadToBlock rounds n up to the next multiple of the 8-sample block size.
// A value that is already a multiple of 8 is returned unchanged.
func PadToBlock(n int) int {
	return DivCeil(n, BlockSize) * BlockSize
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
