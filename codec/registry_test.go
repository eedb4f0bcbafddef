package codec_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cocosip/go-jfif/codec"
	_ "github.com/cocosip/go-jfif/jpeg/baseline"
)

const baselineUID = "1.2.840.10008.1.2.4.50"

func TestCodecRegistry(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
		wantUID   string
		wantName  string
	}{
		{
			name:      "Get baseline by UID",
			key:       baselineUID,
			wantFound: true,
			wantUID:   baselineUID,
			wantName:  "jpeg-baseline-jfif",
		},
		{
			name:      "Get baseline by name",
			key:       "jpeg-baseline-jfif",
			wantFound: true,
			wantUID:   baselineUID,
			wantName:  "jpeg-baseline-jfif",
		},
		{
			name:      "Get non-existent codec",
			key:       "non-existent",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.Get(tt.key)

			if tt.wantFound {
				if err != nil {
					t.Errorf("Get(%q) unexpected error: %v", tt.key, err)
					return
				}
				if c.UID() != tt.wantUID {
					t.Errorf("Get(%q).UID() = %q, want %q", tt.key, c.UID(), tt.wantUID)
				}
				if c.Name() != tt.wantName {
					t.Errorf("Get(%q).Name() = %q, want %q", tt.key, c.Name(), tt.wantName)
				}
			} else if !errors.Is(err, codec.ErrCodecNotFound) {
				t.Errorf("Get(%q) error = %v, want %v", tt.key, err, codec.ErrCodecNotFound)
			}
		})
	}
}

func TestListCodecs(t *testing.T) {
	codecs := codec.List()

	found := 0
	for _, c := range codecs {
		if c.UID() == baselineUID {
			found++
		}
	}
	if found != 1 {
		t.Errorf("List() contains the baseline codec %d times, want once", found)
	}
}

func TestLocalRegistry(t *testing.T) {
	r := codec.NewRegistry()
	if _, err := r.Get(baselineUID); !errors.Is(err, codec.ErrCodecNotFound) {
		t.Fatalf("empty registry Get error = %v", err)
	}

	c, _ := codec.Get(baselineUID)
	r.Register(c)
	if got, err := r.Get("jpeg-baseline-jfif"); err != nil || got != c {
		t.Errorf("Get after Register = %v, %v", got, err)
	}
	if n := len(r.List()); n != 1 {
		t.Errorf("List() = %d codecs, want 1", n)
	}
}

type namedCodec struct {
	name, uid string
}

func (c namedCodec) Encode(codec.EncodeParams) ([]byte, error) { return nil, nil }
func (c namedCodec) UID() string { return c.uid }
func (c namedCodec) Name() string { return c.name }

func TestRegistryOrderAndReplace(t *testing.T) {
	r := codec.NewRegistry()
	r.Register(namedCodec{"zeta", "1.2.3"})
	r.Register(namedCodec{"alpha", "1.2.4"})
	r.Register(namedCodec{"mid", "1.2.5"})

	// same UID under a new name drops the old name
	r.Register(namedCodec{"beta", "1.2.5"})

	var names []string
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	t.Logf("registered: %v", names)

	want := []string{"alpha", "beta", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("List() names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	tests := []struct {
		key      string
		wantName string
	}{
		{"1.2.5", "beta"},
		{"beta", "beta"},
		{"mid", ""},
		{"1.2.3", "zeta"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c, err := r.Get(tt.key)
			if tt.wantName == "" {
				if !errors.Is(err, codec.ErrCodecNotFound) {
					t.Errorf("Get(%q) error = %v, want ErrCodecNotFound", tt.key, err)
				}
				return
			}
			if err != nil || c.Name() != tt.wantName {
				t.Errorf("Get(%q) = %v, %v, want %s", tt.key, c, err, tt.wantName)
			}
		})
	}
}

func TestBaselineCodecEncode(t *testing.T) {
	c, err := codec.Get(baselineUID)
	if err != nil {
		t.Fatalf("Failed to get baseline codec: %v", err)
	}

	// 64x64 RGB gradient
	width, height := 64, 64
	pixelData := make([]byte, width*height*3)
	for i := range pixelData {
		pixelData[i] = byte(i % 256)
	}

	params := codec.EncodeParams{
		PixelData:  pixelData,
		Width:      width,
		Height:     height,
		Components: 3,
		BitDepth:   8,
		Options:    nil, // Use default options
	}

	compressed, err := c.Encode(params)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	t.Logf("Compressed size: %d bytes", len(compressed))

	if !bytes.HasPrefix(compressed, []byte{0xFF, 0xD8}) || !bytes.HasSuffix(compressed, []byte{0xFF, 0xD9}) {
		t.Error("encoded stream is not delimited by SOI and EOI")
	}

	params.BitDepth = 12
	if _, err := c.Encode(params); !errors.Is(err, codec.ErrUnsupportedFormat) {
		t.Errorf("12-bit Encode error = %v, want ErrUnsupportedFormat", err)
	}

	params.BitDepth = 8
	params.Options = &codec.BaseOptions{Quality: 50}
	if _, err := c.Encode(params); !errors.Is(err, codec.ErrInvalidParameter) {
		t.Errorf("foreign options error = %v, want ErrInvalidParameter", err)
	}
}

func TestBaseOptionsValidate(t *testing.T) {
	tests := []struct {
		quality int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{100, false},
		{-1, true},
		{101, true},
	}

	for _, tt := range tests {
		err := (&codec.BaseOptions{Quality: tt.quality}).Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(quality=%d) error = %v, wantErr %v", tt.quality, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, codec.ErrInvalidQuality) {
			t.Errorf("Validate(quality=%d) error %v is not ErrInvalidQuality", tt.quality, err)
		}
	}
}
