package baseline

import (
	"fmt"

	"github.com/cocosip/go-jfif/codec"
	"github.com/cocosip/go-jfif/jpeg/common"
	"github.com/cocosip/go-jfif/jpeg/huffman"
)

// Options contains encoding options for JPEG Baseline.
// The zero value encodes the raw samples with the built-in fixed quantization
// tables, the standard Huffman tables and one worker per CPU.
type Options struct {
	codec.BaseOptions

	// Explicit quantization tables in natural order. Each one overrides the
	// table Quality would select for its class.
	LumaQuant   *[64]int32
	ChromaQuant *[64]int32

	// Tables selects standard or image-derived Huffman tables
	Tables huffman.TableMode

	// LevelShift subtracts 128 from every sample before the DCT, as T.81
	// decoders expect. Without it the raw 0-255 samples are transformed and a
	// standard decoder reconstructs every sample 128 levels too bright.
	LevelShift bool

	// Workers bounds the goroutines of the transform stage; 0 uses GOMAXPROCS
	Workers int

	// Comment is written as a COM segment when not empty
	Comment string
}

// DefaultOptions returns the options used when nil is passed to an encoder
func DefaultOptions() *Options {
	return &Options{}
}

// Validate validates the options
func (o *Options) Validate() error {
	if err := o.BaseOptions.Validate(); err != nil {
		return fmt.Errorf("%w: %d", err, o.Quality)
	}

	if o.Tables != huffman.ModeDefault && o.Tables != huffman.ModeDerived {
		return fmt.Errorf("%w: table mode %d", codec.ErrInvalidParameter, int(o.Tables))
	}

	if o.Workers < 0 {
		return fmt.Errorf("%w: workers %d", codec.ErrInvalidParameter, o.Workers)
	}

	if len(o.Comment) > common.MaxSegmentData {
		return fmt.Errorf("comment: %w (%d bytes)", common.ErrSegmentTooLong, len(o.Comment))
	}

	q := o.QuantTables()
	return q.Validate()
}

// QuantTables returns the quantization tables selected by the options
func (o *Options) QuantTables() *common.QuantTables {
	var q common.QuantTables
	if o.Quality == 0 {
		q = common.FixedQuantTables()
	} else {
		q = common.ScaledQuantTables(o.Quality)
	}

	if o.LumaQuant != nil {
		q.Luma = *o.LumaQuant
	}
	if o.ChromaQuant != nil {
		q.Chroma = *o.ChromaQuant
	}
	return &q
}
