package codec

// Codec is the interface implemented by the encoders of this module
type Codec interface {
	// Encode compresses pixel data into a complete stream
	Encode(params EncodeParams) ([]byte, error)

	// UID returns the unique identifier (typically DICOM Transfer Syntax UID)
	UID() string

	// Name returns a human-readable name
	Name() string
}

// EncodeParams contains parameters for encoding
type EncodeParams struct {
	PixelData  []byte  // Raw pixel data, interleaved
	Width      int     // Image width
	Height     int     // Image height
	Components int     // Number of color components (3=RGB)
	BitDepth   int     // Bits per sample (8 for baseline)
	Options    Options // Codec-specific options
}

// Options is an interface for codec-specific encoding options
type Options interface {
	// Validate checks if the options are valid
	Validate() error
}

// BaseOptions provides common options for all codecs
type BaseOptions struct {
	// Quality factor for lossy codecs (1-100, higher is better).
	// 0 selects the codec's built-in tables.
	Quality int
}

// Validate validates base options
func (o *BaseOptions) Validate() error {
	if o.Quality < 0 || o.Quality > 100 {
		return ErrInvalidQuality
	}
	return nil
}
