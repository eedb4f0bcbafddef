// Command jfifenc encodes a PNG, BMP, GIF or JPEG image as a baseline JFIF file
// and prints the compression report.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"

	"github.com/cocosip/go-jfif/codec"
	"github.com/cocosip/go-jfif/jpeg/baseline"
	"github.com/cocosip/go-jfif/jpeg/huffman"
)

func main() {
	var (
		input   = flag.String("i", "", "input image (PNG, BMP, GIF or JPEG)")
		output  = flag.String("o", "", "output file (default: input name with .jpg)")
		quality = flag.Int("q", 0, "quality 1-100; 0 uses the built-in fixed tables")
		qfile   = flag.String("qfile", "", "file with 64 luma and optionally 64 chroma quantization values")
		tables  = flag.String("tables", "default", "Huffman tables: default or derived")
		shift   = flag.Bool("shift", false, "subtract 128 before the DCT (standard decoders expect it)")
		workers = flag.Int("workers", 0, "transform goroutines (0 = GOMAXPROCS)")
		comment = flag.String("comment", "", "text of an optional COM segment")
		verbose = flag.Bool("v", false, "print the segment layout of the output")
	)
	flag.Parse()

	if *input == "" && flag.NArg() > 0 {
		*input = flag.Arg(0)
	}
	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: jfifenc [flags] -i input")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *output == "" {
		*output = strings.TrimSuffix(*input, filepath.Ext(*input)) + ".jpg"
	}

	mode, err := huffman.ParseTableMode(*tables)
	if err != nil {
		fail(err)
	}

	opts := &baseline.Options{
		BaseOptions: codec.BaseOptions{Quality: *quality},
		Tables:      mode,
		LevelShift:  *shift,
		Workers:     *workers,
		Comment:     *comment,
	}
	if *qfile != "" {
		luma, chroma, err := readQuantFile(*qfile)
		if err != nil {
			fail(err)
		}
		opts.LumaQuant = luma
		opts.ChromaQuant = chroma
	}

	if err := run(*input, *output, opts, *verbose); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "jfifenc:", err)
	os.Exit(1)
}

func run(input, output string, opts *baseline.Options, verbose bool) error {
	m, format, err := loadImage(input)
	if err != nil {
		return err
	}

	pix, width, height := baseline.ImagePixels(m)
	if verbose {
		fmt.Printf("Input: %s (%s, %dx%d)\n", input, format, width, height)
	}

	res, err := baseline.EncodeFileReport(output, pix, width, height, 3, opts)
	if err != nil {
		return fmt.Errorf("encode %s: %w", input, err)
	}

	originalSize := int64(res.OriginalSize)
	if st, err := os.Stat(input); err == nil {
		originalSize = st.Size()
	}

	fmt.Printf("Wrote %s\n", output)
	fmt.Printf("Original size:   %.2f KB\n", float64(originalSize)/1024)
	fmt.Printf("JPEG size:       %.2f KB\n", float64(res.CompressedSize)/1024)
	fmt.Printf("Compression:     %.2f%%\n", float64(res.CompressedSize)/float64(originalSize)*100)

	if verbose {
		return printLayout(output, res, opts)
	}
	return nil
}

func loadImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = f.Close()
	}()

	m, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return m, format, nil
}

func printLayout(path string, res *baseline.Result, opts *baseline.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	segs, err := baseline.ListSegments(data)
	if err != nil {
		return err
	}

	workers := "GOMAXPROCS"
	if opts.Workers > 0 {
		workers = strconv.Itoa(opts.Workers)
	}
	fmt.Printf("Frame: %dx%d padded to %dx%d, %d blocks, workers %s\n",
		res.Width, res.Height, res.PaddedWidth, res.PaddedHeight, res.Blocks, workers)
	fmt.Printf("Huffman tables: %s, level shift: %v\n", res.Tables, opts.LevelShift)
	fmt.Printf("Entropy data: %d bits, ratio %.4f of raw RGB\n", res.ScanBits, res.Ratio())

	for _, s := range segs {
		switch {
		case s.Scan != nil:
			fmt.Printf("  %6d  %-4s  %5d bytes, scan %d bytes\n", s.Offset, baseline.MarkerName(s.Marker), len(s.Data)+2, len(s.Scan))
		case s.Data != nil:
			fmt.Printf("  %6d  %-4s  %5d bytes\n", s.Offset, baseline.MarkerName(s.Marker), len(s.Data)+2)
		default:
			fmt.Printf("  %6d  %-4s\n", s.Offset, baseline.MarkerName(s.Marker))
		}
	}
	return nil
}

// readQuantFile reads whitespace or comma separated quantization values in
// natural order: 64 for luma, then optionally 64 for chroma. A file with only
// 64 values uses them for both classes.
func readQuantFile(path string) (luma, chroma *[64]int32, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	fields := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 64 && len(fields) != 128 {
		return nil, nil, fmt.Errorf("%s: %w: %d values, want 64 or 128", path, codec.ErrInvalidParameter, len(fields))
	}

	var tables [2][64]int32
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: value %d: %w", path, i, err)
		}
		tables[i/64][i%64] = int32(v)
	}
	if len(fields) == 64 {
		tables[1] = tables[0]
	}
	return &tables[0], &tables[1], nil
}
