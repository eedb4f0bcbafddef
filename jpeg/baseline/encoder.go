package baseline

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/cocosip/go-jfif/jpeg/bitstream"
	"github.com/cocosip/go-jfif/jpeg/common"
	"github.com/cocosip/go-jfif/jpeg/huffman"
)

// Result reports the outcome of an encode
type Result struct {
	Width        int // Source width
	Height       int // Source height
	PaddedWidth  int // Width written in SOF0
	PaddedHeight int // Height written in SOF0
	Blocks       int // Block positions per component

	// Tables is the Huffman table mode that was used
	Tables huffman.TableMode

	// OriginalSize is the size of the RGB input in bytes
	OriginalSize int
	// CompressedSize is the size of the JFIF stream in bytes
	CompressedSize int
	// ScanBits is the entropy-coded length before padding and stuffing
	ScanBits int64
}

// Ratio returns CompressedSize as a fraction of OriginalSize
func (r *Result) Ratio() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.CompressedSize) / float64(r.OriginalSize)
}

// Encode encodes interleaved 8-bit RGB pixel data to a baseline JFIF stream.
// components must be 3. A nil opts uses DefaultOptions.
func Encode(pixelData []byte, width, height, components int, opts *Options) ([]byte, error) {
	data, _, err := EncodeReport(pixelData, width, height, components, opts)
	return data, err
}

// EncodeReport is Encode that also returns the encode report
func EncodeReport(pixelData []byte, width, height, components int, opts *Options) ([]byte, *Result, error) {
	if width <= 0 || height <= 0 {
		return nil, nil, fmt.Errorf("%w: %dx%d", common.ErrInvalidDimensions, width, height)
	}

	if components != numComponents {
		return nil, nil, fmt.Errorf("%w: %d components", common.ErrUnsupportedChannelLayout, components)
	}

	if len(pixelData) < width*height*components {
		return nil, nil, fmt.Errorf("%w: %d bytes for %dx%dx%d", common.ErrBufferTooSmall, len(pixelData), width, height, components)
	}

	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	f, err := newFrame(width, height)
	if err != nil {
		return nil, nil, err
	}

	quant := opts.QuantTables()

	blocks, err := transform(f, pixelData, quant, opts.LevelShift, opts.Workers)
	if err != nil {
		return nil, nil, err
	}

	var stats *huffman.Statistics
	if opts.Tables.NeedsStatistics() {
		stats = &huffman.Statistics{}
		if err := fold(blocks, &statsSink{stats: stats}); err != nil {
			return nil, nil, err
		}
	}

	tables, err := huffman.BuildTables(opts.Tables, stats)
	if err != nil {
		return nil, nil, err
	}

	bits := bitstream.New(len(blocks) * 16)
	if err := fold(blocks, &entropySink{tables: tables, bits: bits}); err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	writer := common.NewWriter(&buf)
	err = writeContainer(writer, &containerParts{
		frame:   f,
		quant:   quant,
		tables:  tables,
		comment: opts.Comment,
		scan:    bits.Bytes(),
	})
	if err != nil {
		return nil, nil, err
	}

	res := &Result{
		Width:          width,
		Height:         height,
		PaddedWidth:    f.paddedW,
		PaddedHeight:   f.paddedH,
		Blocks:         len(blocks),
		Tables:         opts.Tables,
		OriginalSize:   width * height * components,
		CompressedSize: int(writer.Written()),
		ScanBits:       bits.Len(),
	}
	return buf.Bytes(), res, nil
}

// EncodeTo encodes to w. Nothing is written unless the whole stream was produced.
func EncodeTo(w io.Writer, pixelData []byte, width, height, components int, opts *Options) error {
	data, err := Encode(pixelData, width, height, components, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", common.ErrSinkWrite, err)
	}
	return nil
}

// EncodeImage encodes any image as RGB. Alpha is ignored.
func EncodeImage(w io.Writer, m image.Image, opts *Options) error {
	pix, width, height := ImagePixels(m)
	return EncodeTo(w, pix, width, height, numComponents, opts)
}

// ImagePixels returns the pixels of m as interleaved 8-bit RGB. Colors are
// taken non-premultiplied, so the RGB of a translucent pixel does not depend on
// the concrete image type.
func ImagePixels(m image.Image) (pix []byte, width, height int) {
	b := m.Bounds()
	width, height = b.Dx(), b.Dy()
	pix = make([]byte, width*height*3)

	switch src := m.(type) {
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < width; x++ {
				copy(pix[(y*width+x)*3:], row[x*4:x*4+3])
			}
		}
	default:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := color.NRGBAModel.Convert(m.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				off := (y*width + x) * 3
				pix[off], pix[off+1], pix[off+2] = c.R, c.G, c.B
			}
		}
	}
	return pix, width, height
}

// EncodeFile encodes to a new file at path
func EncodeFile(path string, pixelData []byte, width, height, components int, opts *Options) error {
	_, err := EncodeFileReport(path, pixelData, width, height, components, opts)
	return err
}

// EncodeFileReport encodes to a new file at path and returns the encode report.
// The file is only created once the stream is complete; it is always closed
// and is removed again if writing or closing fails.
func EncodeFileReport(path string, pixelData []byte, width, height, components int, opts *Options) (*Result, error) {
	data, res, err := EncodeReport(pixelData, width, height, components, opts)
	if err != nil {
		return nil, err
	}

	sink := fileSink{path: path}
	if err := writeSink(&sink, data); err != nil {
		return nil, err
	}
	return res, nil
}

// sink is an output that is opened once, written sequentially and closed
type sink interface {
	open() (io.WriteCloser, error)
	discard() error
}

type fileSink struct {
	path string
}

func (s *fileSink) open() (io.WriteCloser, error) {
	return os.Create(s.path)
}

func (s *fileSink) discard() error {
	return os.Remove(s.path)
}

// writeSink writes data to the sink, closing it on every path and discarding
// partial output on failure
func writeSink(s sink, data []byte) (err error) {
	w, err := s.open()
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrSinkWrite, err)
	}

	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", common.ErrSinkWrite, cerr)
		}
		if err != nil {
			_ = s.discard()
		}
	}()

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", common.ErrSinkWrite, err)
	}
	return nil
}
