package common

import (
	"math/rand"
	"testing"
)

// natural index of each zigzag position, as listed in T.81 Figure A.6
var referenceZigZag = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

func TestZigZagOrderMatchesStandard(t *testing.T) {
	if ZigZagOrder != referenceZigZag {
		t.Fatalf("ZigZagOrder = %v\nwant %v", ZigZagOrder, referenceZigZag)
	}
}

func TestZigZagOrderIsPermutation(t *testing.T) {
	var seen [64]bool
	for k, idx := range ZigZagOrder {
		if idx < 0 || idx >= 64 {
			t.Fatalf("position %d maps to out-of-range index %d", k, idx)
		}
		if seen[idx] {
			t.Fatalf("index %d visited twice", idx)
		}
		seen[idx] = true
	}
}

func TestZigZagRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for iter := 0; iter < 200; iter++ {
		var b IntBlock
		for i := range b {
			b[i] = int32(rng.Intn(4096) - 2048)
		}

		v := ZigZag(&b)
		if got := UnZigZag(&v); got != b {
			t.Fatalf("UnZigZag(ZigZag(b)) != b on iteration %d", iter)
		}

		var seq CoefficientVector
		for i := range seq {
			seq[i] = int32(rng.Intn(4096) - 2048)
		}
		nb := UnZigZag(&seq)
		if got := ZigZag(&nb); got != seq {
			t.Fatalf("ZigZag(UnZigZag(seq)) != seq on iteration %d", iter)
		}
	}
}

func TestZigZagScan(t *testing.T) {
	var b IntBlock
	for i := range b {
		b[i] = int32(i)
	}

	v := ZigZag(&b)
	for k := range v {
		if int(v[k]) != referenceZigZag[k] {
			t.Errorf("v[%d] = %d, want %d", k, v[k], referenceZigZag[k])
		}
	}
}
