package baseline

import (
	"runtime"
	"sync"

	"github.com/cocosip/go-jfif/jpeg/common"
)

// blockCoefficients holds the quantized zigzag vectors of one block position,
// indexed by Component
type blockCoefficients [numComponents]common.CoefficientVector

// levelShift is subtracted from samples before the DCT when enabled
const levelShift = 128

// transformer runs the per-block map stage: color conversion, DCT,
// quantization and zigzag reordering
type transformer struct {
	frame  frame
	pix    []byte
	quant  *common.QuantTables
	shift  float64
	blocks []blockCoefficients
}

// transform computes the coefficients of every block. Contiguous block rows are
// split across workers; each block lands at its raster index so the result is
// independent of scheduling.
func transform(f frame, pix []byte, q *common.QuantTables, shift bool, workers int) ([]blockCoefficients, error) {
	t := &transformer{
		frame:  f,
		pix:    pix,
		quant:  q,
		blocks: make([]blockCoefficients, f.blockCount()),
	}
	if shift {
		t.shift = levelShift
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > f.blocksH {
		workers = f.blocksH
	}

	if workers <= 1 {
		if err := t.rows(0, f.blocksH); err != nil {
			return nil, err
		}
		return t.blocks, nil
	}

	errs := make([]error, workers)
	var wg sync.WaitGroup
	for wi := 0; wi < workers; wi++ {
		startRow := wi * f.blocksH / workers
		endRow := (wi + 1) * f.blocksH / workers
		wg.Add(1)
		go func(wi, startRow, endRow int) {
			defer wg.Done()
			errs[wi] = t.rows(startRow, endRow)
		}(wi, startRow, endRow)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return t.blocks, nil
}

// rows transforms block rows [startRow, endRow)
func (t *transformer) rows(startRow, endRow int) error {
	var samples [numComponents]common.Block

	for by := startRow; by < endRow; by++ {
		for bx := 0; bx < t.frame.blocksW; bx++ {
			t.frame.loadBlock(t.pix, bx, by, t.shift, &samples)

			dst := &t.blocks[by*t.frame.blocksW+bx]
			for _, c := range scanOrder {
				coef := common.DCT2D(&samples[c])
				q, err := common.Quantize(&coef, c.Class(), t.quant)
				if err != nil {
					return err
				}
				dst[c] = common.ZigZag(&q)
			}
		}
	}
	return nil
}
