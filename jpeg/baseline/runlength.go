package baseline

import (
	"fmt"

	"github.com/cocosip/go-jfif/jpeg/common"
	"github.com/cocosip/go-jfif/jpeg/huffman"
)

// numAC is the number of AC coefficients of a block
const numAC = 63

// ACSymbol is one run/size symbol of an AC sequence with its coefficient.
// ZRL and EOB have Category 0 and carry no value bits.
type ACSymbol struct {
	Symbol   byte
	Value    int32
	Category int
}

// EncodeAC run-length codes the 63 AC coefficients of a block, given in zigzag order
func EncodeAC(ac []int32) ([]ACSymbol, error) {
	if len(ac) != numAC {
		return nil, fmt.Errorf("%w: %d AC coefficients, want %d", common.ErrInvalidBlock, len(ac), numAC)
	}
	return appendAC(make([]ACSymbol, 0, 8), ac), nil
}

// appendAC appends the symbols of ac to dst
func appendAC(dst []ACSymbol, ac []int32) []ACSymbol {
	zeroRun := 0

	for _, v := range ac {
		if v == 0 {
			zeroRun++
			continue
		}

		for zeroRun > 15 {
			dst = append(dst, ACSymbol{Symbol: huffman.ZRL})
			zeroRun -= 16
		}

		cat := huffman.Category(v)
		dst = append(dst, ACSymbol{
			Symbol:   byte(zeroRun<<4 | cat),
			Value:    v,
			Category: cat,
		})
		zeroRun = 0
	}

	if zeroRun > 0 {
		dst = append(dst, ACSymbol{Symbol: huffman.EOB})
	}
	return dst
}
