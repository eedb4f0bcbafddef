package codec

import "errors"

var (
	// ErrCodecNotFound is returned by Get for an unregistered name or UID
	ErrCodecNotFound = errors.New("no codec registered")

	// ErrInvalidParameter wraps rejected encoder options such as a negative
	// worker count or an unknown Huffman table mode
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidQuality is returned for a quality outside 0-100
	ErrInvalidQuality = errors.New("invalid quality (must be 0-100)")

	// ErrUnsupportedFormat is returned for pixel data the baseline encoder
	// cannot take, such as samples wider than 8 bits
	ErrUnsupportedFormat = errors.New("unsupported format")
)
