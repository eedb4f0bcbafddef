package huffman

import (
	"fmt"

	"github.com/cocosip/go-jfif/jpeg/common"
)

// MaxCodeLength is the longest code a DHT segment can describe
const MaxCodeLength = 16

// Symbols reserved in AC tables
const (
	// EOB ends a block whose remaining AC coefficients are all zero
	EOB byte = 0x00
	// ZRL stands for a run of 16 zero AC coefficients
	ZRL byte = 0xF0
)

// Code is a Huffman code word, right-aligned in Bits
type Code struct {
	Bits uint32
	Len  int
}

// Table is a canonical Huffman table in DHT form together with its encode lookup
type Table struct {
	// Name identifies the table in error messages
	Name string
	// Number of codes of each length (1-16 bits)
	Bits [MaxCodeLength]int
	// Symbols in order of code length, ties by symbol value for derived tables
	Values []byte

	codes [256]Code
}

// NewTable builds the encode lookup for a BITS/HUFFVAL pair.
// Codes are assigned canonically (T.81 Annex C).
func NewTable(name string, bits [MaxCodeLength]int, values []byte) (*Table, error) {
	total := 0
	for _, n := range bits {
		if n < 0 {
			return nil, fmt.Errorf("%s: %w: negative code count", name, common.ErrInvalidHuffmanTable)
		}
		total += n
	}
	if total != len(values) {
		return nil, fmt.Errorf("%s: %w: %d codes for %d values", name, common.ErrInvalidHuffmanTable, total, len(values))
	}
	if total == 0 || total > 256 {
		return nil, fmt.Errorf("%s: %w: %d values", name, common.ErrInvalidHuffmanTable, total)
	}

	t := &Table{
		Name:   name,
		Bits:   bits,
		Values: append([]byte(nil), values...),
	}

	code := uint32(0)
	p := 0
	for l := 0; l < MaxCodeLength; l++ {
		for i := 0; i < bits[l]; i++ {
			sym := values[p]
			if t.codes[sym].Len != 0 {
				return nil, fmt.Errorf("%s: %w: duplicate symbol 0x%02X", name, common.ErrInvalidHuffmanTable, sym)
			}
			t.codes[sym] = Code{Bits: code, Len: l + 1}
			code++
			p++
		}
		// codes of length l+1 must fit in l+1 bits
		if code > 1<<uint(l+1) {
			return nil, fmt.Errorf("%s: %w: code space overflow at length %d", name, common.ErrInvalidHuffmanTable, l+1)
		}
		code <<= 1
	}

	return t, nil
}

// Encode returns the code for sym
func (t *Table) Encode(sym byte) (Code, error) {
	c := t.codes[sym]
	if c.Len == 0 {
		return Code{}, fmt.Errorf("%s: %w: 0x%02X", t.Name, common.ErrUnknownSymbol, sym)
	}
	return c, nil
}

// has reports whether sym has a code
func (t *Table) has(sym byte) bool {
	return t.codes[sym].Len != 0
}

// Size returns the number of symbols in the table
func (t *Table) Size() int {
	return len(t.Values)
}

// codeList returns the code of every symbol in Values order
func (t *Table) codeList() []Code {
	codes := make([]Code, len(t.Values))
	for i, sym := range t.Values {
		codes[i] = t.codes[sym]
	}
	return codes
}

// SegmentData returns the DHT payload for this table: the class/destination byte,
// the 16 BITS counts, then the symbols
func (t *Table) SegmentData(class, id byte) []byte {
	data := make([]byte, 1+MaxCodeLength+len(t.Values))
	data[0] = (class << 4) | id

	for i := 0; i < MaxCodeLength; i++ {
		data[1+i] = byte(t.Bits[i])
	}

	copy(data[1+MaxCodeLength:], t.Values)
	return data
}
