package common

import (
	"fmt"
	"math"
)

// ChannelClass selects the quantization and Huffman tables of a component
type ChannelClass int

const (
	// Luma is the Y component
	Luma ChannelClass = iota
	// Chroma covers both Cb and Cr
	Chroma
)

// String returns the class name
func (c ChannelClass) String() string {
	switch c {
	case Luma:
		return "luma"
	case Chroma:
		return "chroma"
	default:
		return fmt.Sprintf("ChannelClass(%d)", int(c))
	}
}

// QuantTables holds the luma and chroma quantization matrices in natural order
type QuantTables struct {
	Luma   [64]int32
	Chroma [64]int32
}

// Table returns the matrix used for the given class
func (q *QuantTables) Table(class ChannelClass) (*[64]int32, error) {
	switch class {
	case Luma:
		return &q.Luma, nil
	case Chroma:
		return &q.Chroma, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelClass, int(class))
	}
}

// Validate checks that every entry fits an 8-bit DQT table
func (q *QuantTables) Validate() error {
	for _, class := range []ChannelClass{Luma, Chroma} {
		t, _ := q.Table(class)
		for i, v := range t {
			if v < 1 || v > 255 {
				return fmt.Errorf("%w: %s entry %d = %d (must be 1-255)", ErrInvalidQuantTable, class, i, v)
			}
		}
	}
	return nil
}

// Quantize divides each DCT coefficient by its table entry and rounds to the
// nearest integer, ties to even.
func Quantize(block *Block, class ChannelClass, q *QuantTables) (IntBlock, error) {
	var out IntBlock

	table, err := q.Table(class)
	if err != nil {
		return out, err
	}

	for i := range block {
		out[i] = int32(math.RoundToEven(block[i] / float64(table[i])))
	}
	return out, nil
}
