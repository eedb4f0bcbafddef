package common

import "errors"

// Common errors
var (
	ErrInvalidDimensions        = errors.New("invalid image dimensions")
	ErrDimensionsTooLarge       = errors.New("padded image dimensions exceed 65535")
	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout (want 3-channel 8-bit RGB)")
	ErrBufferTooSmall           = errors.New("buffer too small")
	ErrInvalidChannelClass      = errors.New("invalid channel class")
	ErrInvalidQuantTable        = errors.New("invalid quantization table")
	ErrInvalidBlock             = errors.New("invalid block length")
	ErrInvalidHuffmanTable      = errors.New("invalid Huffman table")
	ErrUnknownSymbol            = errors.New("symbol has no Huffman code")
	ErrInvalidStuffing          = errors.New("0xFF byte not followed by stuffed 0x00")
	ErrSegmentTooLong           = errors.New("marker segment too long")
	ErrInvalidSegment           = errors.New("malformed marker segment")
	ErrSinkWrite                = errors.New("output sink write failed")
	ErrDecodeUnsupported        = errors.New("decoding is not supported by this encoder")
)
