package baseline

import (
	"github.com/cocosip/go-dicom/pkg/imaging/codec"

	"github.com/cocosip/go-jfif/jpeg/huffman"
)

// Ensure JPEGBaselineParameters implements codec.Parameters
var _ codec.Parameters = (*JPEGBaselineParameters)(nil)

// defaultQuality is the quality used by the codec adapters when none is given
const defaultQuality = 85

// JPEGBaselineParameters contains parameters for JPEG Baseline compression
type JPEGBaselineParameters struct {
	// Quality controls the JPEG compression quality (1-100)
	// - 100: Best quality, minimal compression
	// - 85:  High quality (default)
	// - 50:  Lower quality, higher compression
	// - 0:   Built-in fixed tables
	Quality int

	// Tables selects standard or image-derived Huffman tables
	Tables huffman.TableMode

	// LevelShift subtracts 128 before the DCT. NewBaselineParameters enables
	// it so transcoded frames decode to their original values.
	LevelShift bool

	// Workers bounds the transform goroutines (0 = GOMAXPROCS)
	Workers int

	// Comment is written as a COM segment when not empty
	Comment string

	// internal storage for compatibility with generic parameter interface
	params map[string]interface{}
}

// NewBaselineParameters creates a new JPEGBaselineParameters with default values
func NewBaselineParameters() *JPEGBaselineParameters {
	return &JPEGBaselineParameters{
		Quality:    defaultQuality,
		Tables:     huffman.ModeDefault,
		LevelShift: true,
		params:     make(map[string]interface{}),
	}
}

// GetParameter retrieves a parameter by name (implements codec.Parameters)
func (p *JPEGBaselineParameters) GetParameter(name string) interface{} {
	switch name {
	case "quality":
		return p.Quality
	case "tables":
		return p.Tables.String()
	case "levelShift":
		return p.LevelShift
	case "workers":
		return p.Workers
	case "comment":
		return p.Comment
	default:
		// Check custom parameters
		return p.params[name]
	}
}

// SetParameter sets a parameter value (implements codec.Parameters)
func (p *JPEGBaselineParameters) SetParameter(name string, value interface{}) {
	switch name {
	case "quality":
		if v, ok := value.(int); ok {
			p.Quality = v
		}
	case "tables":
		switch v := value.(type) {
		case huffman.TableMode:
			p.Tables = v
		case string:
			if mode, err := huffman.ParseTableMode(v); err == nil {
				p.Tables = mode
			}
		}
	case "levelShift":
		if v, ok := value.(bool); ok {
			p.LevelShift = v
		}
	case "workers":
		if v, ok := value.(int); ok {
			p.Workers = v
		}
	case "comment":
		if v, ok := value.(string); ok {
			p.Comment = v
		}
	default:
		// Store as custom parameter
		if p.params == nil {
			p.params = make(map[string]interface{})
		}
		p.params[name] = value
	}
}

// Validate checks if the parameters are valid
func (p *JPEGBaselineParameters) Validate() error {
	if p.Quality < 0 || p.Quality > 100 {
		p.Quality = defaultQuality // Reset to default
	}
	if p.Tables != huffman.ModeDefault && p.Tables != huffman.ModeDerived {
		p.Tables = huffman.ModeDefault
	}
	if p.Workers < 0 {
		p.Workers = 0
	}
	return nil
}

// WithQuality sets the quality and returns the parameters for chaining
func (p *JPEGBaselineParameters) WithQuality(quality int) *JPEGBaselineParameters {
	p.Quality = quality
	return p
}

// WithTables sets the Huffman table mode and returns the parameters for chaining
func (p *JPEGBaselineParameters) WithTables(mode huffman.TableMode) *JPEGBaselineParameters {
	p.Tables = mode
	return p
}

// WithComment sets the COM text and returns the parameters for chaining
func (p *JPEGBaselineParameters) WithComment(comment string) *JPEGBaselineParameters {
	p.Comment = comment
	return p
}

// Options converts the parameters to encoder options
func (p *JPEGBaselineParameters) Options() *Options {
	opts := DefaultOptions()
	opts.Quality = p.Quality
	opts.Tables = p.Tables
	opts.LevelShift = p.LevelShift
	opts.Workers = p.Workers
	opts.Comment = p.Comment
	return opts
}
