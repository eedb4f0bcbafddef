package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/cocosip/go-jfif/codec"
	"github.com/cocosip/go-jfif/jpeg/baseline"
	"github.com/cocosip/go-jfif/jpeg/huffman"
)

func testImage(width, height int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: 128, A: 255})
		}
	}
	return m
}

func TestRunEncodesInputFormats(t *testing.T) {
	dir := t.TempDir()
	m := testImage(21, 13)

	tests := []struct {
		name   string
		encode func(*os.File) error
	}{
		{"input.png", func(f *os.File) error { return png.Encode(f, m) }},
		{"input.bmp", func(f *os.File) error { return bmp.Encode(f, m) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := filepath.Join(dir, tt.name)
			f, err := os.Create(in)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if err := tt.encode(f); err != nil {
				t.Fatalf("writing input failed: %v", err)
			}
			_ = f.Close()

			out := strings.TrimSuffix(in, filepath.Ext(in)) + ".jpg"
			opts := &baseline.Options{Tables: huffman.ModeDerived, Comment: "cli"}
			if err := run(in, out, opts, true); err != nil {
				t.Fatalf("run failed: %v", err)
			}

			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("output missing: %v", err)
			}
			img, err := jpeg.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("output does not decode: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 16 {
				t.Errorf("decoded size = %dx%d, want 24x16", b.Dx(), b.Dy())
			}
		})
	}
}

func TestRunRejectsUnknownInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(in, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "input.jpg")

	if err := run(in, out, baseline.DefaultOptions(), false); err == nil {
		t.Fatal("run should fail on a text file")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("failed run created an output file")
	}
}

func TestReadQuantFile(t *testing.T) {
	dir := t.TempDir()

	values := make([]string, 128)
	for i := range values {
		values[i] = "2"
		if i >= 64 {
			values[i] = "7"
		}
	}

	tests := []struct {
		name       string
		content    string
		wantLuma   int32
		wantChroma int32
		wantErr    error
	}{
		{"both classes", strings.Join(values, ","), 2, 7, nil},
		{"shared table", strings.Join(values[:64], " \n"), 2, 2, nil},
		{"too few", "1 2 3", 0, 0, codec.ErrInvalidParameter},
		{"out of range", "4294967297 " + strings.Join(values[1:64], " "), 0, 0, strconv.ErrRange},
		{"not a number", "x " + strings.Join(values[1:64], " "), 0, 0, strconv.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			luma, chroma, err := readQuantFile(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("readQuantFile error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("readQuantFile failed: %v", err)
			}
			if luma[0] != tt.wantLuma || luma[63] != tt.wantLuma || chroma[0] != tt.wantChroma || chroma[63] != tt.wantChroma {
				t.Errorf("tables = %v / %v", luma[0], chroma[0])
			}
		})
	}
}
