package baseline

import (
	"fmt"

	"github.com/cocosip/go-jfif/jpeg/common"
)

// maxDimension is the largest height or width a SOF0 segment can carry
const maxDimension = 0xFFFF

// frame describes the block grid of an image padded to whole blocks
type frame struct {
	width   int // source size in pixels
	height  int
	paddedW int
	paddedH int
	blocksW int
	blocksH int
}

func newFrame(width, height int) (frame, error) {
	f := frame{
		width:   width,
		height:  height,
		paddedW: common.PadToBlock(width),
		paddedH: common.PadToBlock(height),
	}
	if f.paddedW > maxDimension || f.paddedH > maxDimension {
		return f, fmt.Errorf("%w: %dx%d pads to %dx%d", common.ErrDimensionsTooLarge, width, height, f.paddedW, f.paddedH)
	}
	f.blocksW = f.paddedW / common.BlockSize
	f.blocksH = f.paddedH / common.BlockSize
	return f, nil
}

// blockCount returns the number of block positions in the frame
func (f *frame) blockCount() int {
	return f.blocksW * f.blocksH
}

// loadBlock converts the 8x8 RGB area at block (bx, by) to three YCbCr sample
// blocks. Pixels outside the source image are RGB black. shift is subtracted
// from every sample.
func (f *frame) loadBlock(pix []byte, bx, by int, shift float64, out *[numComponents]common.Block) {
	x0 := bx * common.BlockSize
	y0 := by * common.BlockSize

	for y := 0; y < common.BlockSize; y++ {
		sy := y0 + y
		for x := 0; x < common.BlockSize; x++ {
			sx := x0 + x

			var r, g, b uint8
			if sx < f.width && sy < f.height {
				off := (sy*f.width + sx) * 3
				r, g, b = pix[off], pix[off+1], pix[off+2]
			}

			yy, cb, cr := common.RGBToYCbCr(r, g, b)
			i := y*common.BlockSize + x
			out[ComponentY][i] = float64(yy) - shift
			out[ComponentCb][i] = float64(cb) - shift
			out[ComponentCr][i] = float64(cr) - shift
		}
	}
}
