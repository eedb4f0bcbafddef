package baseline

import (
	"fmt"

	"github.com/cocosip/go-dicom/pkg/dicom/transfer"
	"github.com/cocosip/go-dicom/pkg/imaging/codec"
	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	"github.com/cocosip/go-jfif/jpeg/common"
)

var _ codec.Codec = (*BaselineCodec)(nil)

// BaselineCodec implements the external codec.Codec interface for JPEG Baseline (Process 1).
// It writes 8-bit RGB frames as full-resolution JFIF streams and does not decode.
type BaselineCodec struct {
	transferSyntax *transfer.Syntax
	quality        int
}

// NewBaselineCodec creates a new JPEG Baseline codec with a default quality
func NewBaselineCodec(quality int) *BaselineCodec {
	return &BaselineCodec{
		transferSyntax: transfer.JPEGBaseline8Bit,
		quality:        quality,
	}
}

// Name returns the codec name
func (c *BaselineCodec) Name() string {
	return fmt.Sprintf("JPEG Baseline JFIF (Quality %d)", c.quality)
}

// TransferSyntax returns the transfer syntax this codec handles
func (c *BaselineCodec) TransferSyntax() *transfer.Syntax {
	return c.transferSyntax
}

// GetDefaultParameters returns the default codec parameters
func (c *BaselineCodec) GetDefaultParameters() codec.Parameters {
	return NewBaselineParameters().WithQuality(c.quality)
}

// Encode encodes every frame of oldPixelData to JPEG Baseline and appends it to newPixelData
func (c *BaselineCodec) Encode(oldPixelData imagetypes.PixelData, newPixelData imagetypes.PixelData, parameters codec.Parameters) error {
	if oldPixelData == nil || newPixelData == nil {
		return fmt.Errorf("source and destination PixelData cannot be nil")
	}

	// Get frame info
	frameInfo := oldPixelData.GetFrameInfo()
	if frameInfo == nil {
		return fmt.Errorf("failed to get frame info from source pixel data")
	}

	if frameInfo.BitsAllocated != 8 || frameInfo.SamplesPerPixel != numComponents {
		return fmt.Errorf("%w: %d samples of %d bits", common.ErrUnsupportedChannelLayout,
			frameInfo.SamplesPerPixel, frameInfo.BitsAllocated)
	}

	// Get encoding parameters
	var baselineParams *JPEGBaselineParameters
	if parameters != nil {
		// Try to use typed parameters if provided
		if bp, ok := parameters.(*JPEGBaselineParameters); ok {
			baselineParams = bp
		} else {
			// Fallback: create from generic parameters
			baselineParams = NewBaselineParameters().WithQuality(c.quality)
			for _, name := range []string{"quality", "tables", "levelShift", "workers", "comment"} {
				if v := parameters.GetParameter(name); v != nil {
					baselineParams.SetParameter(name, v)
				}
			}
		}
	} else {
		// Use codec defaults
		baselineParams = NewBaselineParameters().WithQuality(c.quality)
	}

	// Validate parameters
	_ = baselineParams.Validate()
	opts := baselineParams.Options()

	width := int(frameInfo.Width)
	height := int(frameInfo.Height)

	// Process all frames
	frameCount := oldPixelData.FrameCount()
	for frameIndex := 0; frameIndex < frameCount; frameIndex++ {
		// Get frame data
		frameData, err := oldPixelData.GetFrame(frameIndex)
		if err != nil {
			return fmt.Errorf("failed to get frame %d: %w", frameIndex, err)
		}

		if len(frameData) == 0 {
			return fmt.Errorf("frame %d pixel data is empty", frameIndex)
		}

		if frameInfo.PlanarConfiguration == 1 {
			frameData, err = interleavePlanes(frameData, width*height)
			if err != nil {
				return fmt.Errorf("frame %d: %w", frameIndex, err)
			}
		}

		jpegData, err := Encode(frameData, width, height, numComponents, opts)
		if err != nil {
			return fmt.Errorf("JPEG Baseline encode failed for frame %d: %w", frameIndex, err)
		}

		// Add encoded frame to destination
		if err := newPixelData.AddFrame(jpegData); err != nil {
			return fmt.Errorf("failed to add encoded frame %d: %w", frameIndex, err)
		}
	}

	return nil
}

// Decode is not supported; the codec only produces JFIF streams
func (c *BaselineCodec) Decode(oldPixelData imagetypes.PixelData, newPixelData imagetypes.PixelData, parameters codec.Parameters) error {
	return fmt.Errorf("%s: %w", c.Name(), common.ErrDecodeUnsupported)
}

// interleavePlanes converts RRR..GGG..BBB.. (planar configuration 1) to RGBRGB..
func interleavePlanes(planar []byte, pixels int) ([]byte, error) {
	if len(planar) < pixels*numComponents {
		return nil, fmt.Errorf("%w: %d bytes for %d planar pixels", common.ErrBufferTooSmall, len(planar), pixels)
	}

	out := make([]byte, pixels*numComponents)
	for i := 0; i < pixels; i++ {
		out[i*3+0] = planar[i]
		out[i*3+1] = planar[pixels+i]
		out[i*3+2] = planar[2*pixels+i]
	}
	return out, nil
}

// RegisterBaselineCodec registers the JPEG Baseline codec with the global registry
func RegisterBaselineCodec(quality int) {
	registry := codec.GetGlobalRegistry()
	baselineCodec := NewBaselineCodec(quality)
	registry.RegisterCodec(transfer.JPEGBaseline8Bit, baselineCodec)
}

func init() {
	RegisterBaselineCodec(defaultQuality)
}
