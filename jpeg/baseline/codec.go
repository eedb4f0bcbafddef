package baseline

import (
	"fmt"

	"github.com/cocosip/go-jfif/codec"
)

// Codec implements the codec.Codec interface for JPEG Baseline JFIF
type Codec struct{}

// NewCodec creates a new JPEG Baseline codec
func NewCodec() *Codec {
	return &Codec{}
}

// Encode encodes pixel data using JPEG Baseline
func (c *Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	opts := DefaultOptions()
	if params.Options != nil {
		o, ok := params.Options.(*Options)
		if !ok {
			return nil, fmt.Errorf("%w: options of type %T", codec.ErrInvalidParameter, params.Options)
		}
		opts = o
	}

	if params.BitDepth != 0 && params.BitDepth != 8 {
		return nil, fmt.Errorf("%w: %d-bit samples", codec.ErrUnsupportedFormat, params.BitDepth)
	}

	// Call the baseline encoder
	return Encode(
		params.PixelData,
		params.Width,
		params.Height,
		params.Components,
		opts,
	)
}

// UID returns the DICOM Transfer Syntax UID for JPEG Baseline
func (c *Codec) UID() string {
	return "1.2.840.10008.1.2.4.50"
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "jpeg-baseline-jfif"
}

// Register registers this codec with the global registry
func init() {
	codec.Register(NewCodec())
}
