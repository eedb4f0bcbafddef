package common

import (
	"math"
	"math/rand"
	"testing"
)

// idct2D is the inverse of DCT2D, used to check the forward transform
func idct2D(in *Block) Block {
	var tmp, out Block
	for v := 0; v < 8; v++ {
		for x := 0; x < 8; x++ {
			var sum float64
			for u := 0; u < 8; u++ {
				sum += dctBasis[u][x] * in[v*8+u]
			}
			tmp[v*8+x] = sum
		}
	}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			var sum float64
			for v := 0; v < 8; v++ {
				sum += dctBasis[v][y] * tmp[v*8+x]
			}
			out[y*8+x] = sum
		}
	}
	return out
}

func TestDCT2DConstantBlock(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		wantDC float64
	}{
		{"zero", 0, 0},
		{"mid gray", 128, 1024},
		{"white", 255, 2040},
		{"negative", -128, -1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Block
			for i := range b {
				b[i] = tt.value
			}

			out := DCT2D(&b)
			if math.Abs(out[0]-tt.wantDC) > 1e-9 {
				t.Errorf("DC = %v, want %v", out[0], tt.wantDC)
			}
			for i := 1; i < 64; i++ {
				if math.Abs(out[i]) > 1e-9 {
					t.Errorf("AC[%d] = %v, want 0", i, out[i])
				}
			}
		})
	}
}

func TestDCT2DInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 50; iter++ {
		var b Block
		var energy float64
		for i := range b {
			b[i] = float64(rng.Intn(256) - 128)
			energy += b[i] * b[i]
		}

		coef := DCT2D(&b)

		// Orthonormal transforms preserve energy
		var coefEnergy float64
		for _, c := range coef {
			coefEnergy += c * c
		}
		if math.Abs(coefEnergy-energy) > 1e-6*energy+1e-6 {
			t.Fatalf("energy %v, want %v", coefEnergy, energy)
		}

		back := idct2D(&coef)
		for i := range b {
			if math.Abs(back[i]-b[i]) > 1e-9 {
				t.Fatalf("sample %d: got %v, want %v", i, back[i], b[i])
			}
		}
	}
}

func TestDCT2DHorizontalFrequency(t *testing.T) {
	// A pure horizontal cosine of frequency 1 lands in coefficient (0,1)
	var b Block
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			b[y*8+x] = dctBasis[1][x]
		}
	}

	out := DCT2D(&b)
	want := math.Sqrt(8)
	if math.Abs(out[1]-want) > 1e-9 {
		t.Errorf("coef(0,1) = %v, want %v", out[1], want)
	}
	for i := range out {
		if i != 1 && math.Abs(out[i]) > 1e-9 {
			t.Errorf("coef[%d] = %v, want 0", i, out[i])
		}
	}
}
