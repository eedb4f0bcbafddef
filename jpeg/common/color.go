package common

import "math"

// RGBToYCbCr converts one RGB sample to full-range YCbCr (JFIF).
// Results are clamped to [0, 255] and rounded to the nearest integer, ties to even.
func RGBToYCbCr(r, g, b uint8) (y, cb, cr uint8) {
	rf, gf, bf := float64(r), float64(g), float64(b)

	yy := 0.299*rf + 0.587*gf + 0.114*bf
	cbv := -0.168736*rf - 0.331264*gf + 0.5*bf + 128
	crv := 0.5*rf - 0.418688*gf - 0.081312*bf + 128

	return clampSample(yy), clampSample(cbv), clampSample(crv)
}

func clampSample(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}
