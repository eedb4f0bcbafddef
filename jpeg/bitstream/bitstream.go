// Package bitstream packs entropy-coded bits MSB-first and applies JPEG byte stuffing.
package bitstream

import (
	"fmt"

	"github.com/cocosip/go-jfif/jpeg/common"
	"github.com/cocosip/go-jfif/jpeg/huffman"
)

// Bitstream is an append-only bit sequence. Bits are packed into raw bytes as
// they arrive; stuffing is applied only when the final byte sequence is taken.
type Bitstream struct {
	raw   []byte
	bits  uint32 // Bit buffer
	nBits int    // Number of bits in buffer
	total int64
}

// New creates an empty bitstream with room for about sizeHint bytes
func New(sizeHint int) *Bitstream {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Bitstream{raw: make([]byte, 0, sizeHint)}
}

// WriteBits appends the low n bits of bits, most significant first. n may be 0..24.
func (b *Bitstream) WriteBits(bits uint32, n int) {
	if n == 0 {
		return
	}

	b.bits = (b.bits << uint(n)) | (bits & ((1 << uint(n)) - 1))
	b.nBits += n
	b.total += int64(n)

	for b.nBits >= 8 {
		b.raw = append(b.raw, byte(b.bits>>uint(b.nBits-8)))
		b.nBits -= 8
	}
	b.bits &= (1 << uint(b.nBits)) - 1
}

// WriteCode appends a Huffman code
func (b *Bitstream) WriteCode(c huffman.Code) {
	b.WriteBits(c.Bits, c.Len)
}

// WriteValue appends the VLI bits of v
func (b *Bitstream) WriteValue(v int32) {
	b.WriteBits(huffman.EncodeVLI(v))
}

// Len returns the number of bits written so far
func (b *Bitstream) Len() int64 {
	return b.total
}

// Bytes returns the packed sequence. A trailing partial byte is padded with 1
// bits; an already aligned stream gets no padding byte. Every 0xFF in the
// result is followed by a stuffed 0x00.
func (b *Bitstream) Bytes() []byte {
	raw := b.raw
	if b.nBits > 0 {
		pad := 8 - b.nBits
		last := byte((b.bits << uint(pad)) | ((1 << uint(pad)) - 1))
		raw = append(raw[:len(raw):len(raw)], last)
	}
	return Stuff(raw)
}

// Stuff inserts 0x00 after every 0xFF byte
func Stuff(raw []byte) []byte {
	n := len(raw)
	for _, c := range raw {
		if c == 0xFF {
			n++
		}
	}

	out := make([]byte, 0, n)
	for _, c := range raw {
		out = append(out, c)
		if c == 0xFF {
			out = append(out, 0x00)
		}
	}
	return out
}

// Unstuff removes the 0x00 that follows every 0xFF. Any other byte after 0xFF,
// or a trailing 0xFF, is an error.
func Unstuff(stuffed []byte) ([]byte, error) {
	out := make([]byte, 0, len(stuffed))
	for i := 0; i < len(stuffed); i++ {
		c := stuffed[i]
		out = append(out, c)
		if c != 0xFF {
			continue
		}
		if i+1 >= len(stuffed) {
			return nil, fmt.Errorf("%w: at offset %d (end of data)", common.ErrInvalidStuffing, i)
		}
		if stuffed[i+1] != 0x00 {
			return nil, fmt.Errorf("%w: at offset %d (found 0x%02X)", common.ErrInvalidStuffing, i, stuffed[i+1])
		}
		i++
	}
	return out, nil
}
