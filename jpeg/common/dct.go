package common

import "math"

// dctBasis[u][x] = c(u) * cos((2x+1)u*pi/16), with c(0) = sqrt(1/8) and c(u) = 1/2 otherwise.
var dctBasis = func() (basis [8][8]float64) {
	for u := 0; u < 8; u++ {
		c := 0.5
		if u == 0 {
			c = math.Sqrt(0.125)
		}
		for x := 0; x < 8; x++ {
			basis[u][x] = c * math.Cos(float64(2*x+1)*float64(u)*math.Pi/16)
		}
	}
	return basis
}()

// DCT2D performs the orthonormal type-II discrete cosine transform on an 8x8 block.
// out[v*8+u] holds the coefficient for vertical frequency v and horizontal frequency u.
func DCT2D(in *Block) Block {
	var tmp, out Block

	// 1D DCT on rows
	for y := 0; y < 8; y++ {
		row := in[y*8 : y*8+8]
		for u := 0; u < 8; u++ {
			var sum float64
			for x := 0; x < 8; x++ {
				sum += dctBasis[u][x] * row[x]
			}
			tmp[y*8+u] = sum
		}
	}

	// 1D DCT on columns
	for u := 0; u < 8; u++ {
		for v := 0; v < 8; v++ {
			var sum float64
			for y := 0; y < 8; y++ {
				sum += dctBasis[v][y] * tmp[y*8+u]
			}
			out[v*8+u] = sum
		}
	}

	return out
}
