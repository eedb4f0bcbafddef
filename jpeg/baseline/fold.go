package baseline

import (
	"github.com/cocosip/go-jfif/jpeg/bitstream"
	"github.com/cocosip/go-jfif/jpeg/common"
	"github.com/cocosip/go-jfif/jpeg/huffman"
)

// symbolSink consumes the entropy symbols of a scan in bitstream order
type symbolSink interface {
	dc(class common.ChannelClass, category int, diff int32) error
	ac(class common.ChannelClass, sym ACSymbol) error
}

// fold walks the blocks in raster order, Y then Cb then Cr at each position,
// and feeds DC differences and AC symbols to sink. It owns the DC predictors
// for the duration of the walk.
func fold(blocks []blockCoefficients, sink symbolSink) error {
	var pred DCPredictor
	syms := make([]ACSymbol, 0, numAC+1)

	for i := range blocks {
		for _, c := range scanOrder {
			v := &blocks[i][c]
			class := c.Class()

			diff := pred.Next(c, v[0])
			if err := sink.dc(class, huffman.Category(diff), diff); err != nil {
				return err
			}

			syms = appendAC(syms[:0], v[1:])
			for _, s := range syms {
				if err := sink.ac(class, s); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// statsSink counts symbols for derived tables
type statsSink struct {
	stats *huffman.Statistics
}

func (s *statsSink) dc(class common.ChannelClass, category int, _ int32) error {
	s.stats.AddDC(class, byte(category))
	return nil
}

func (s *statsSink) ac(class common.ChannelClass, sym ACSymbol) error {
	s.stats.AddAC(class, sym.Symbol)
	return nil
}

// entropySink writes Huffman codes and value bits
type entropySink struct {
	tables *huffman.TableSet
	bits   *bitstream.Bitstream
}

func (s *entropySink) dc(class common.ChannelClass, category int, diff int32) error {
	table, err := s.tables.DC(class)
	if err != nil {
		return err
	}
	code, err := table.Encode(byte(category))
	if err != nil {
		return err
	}
	s.bits.WriteCode(code)
	s.bits.WriteValue(diff)
	return nil
}

func (s *entropySink) ac(class common.ChannelClass, sym ACSymbol) error {
	table, err := s.tables.AC(class)
	if err != nil {
		return err
	}
	code, err := table.Encode(sym.Symbol)
	if err != nil {
		return err
	}
	s.bits.WriteCode(code)
	if sym.Category > 0 {
		s.bits.WriteValue(sym.Value)
	}
	return nil
}
