package baseline

import (
	"encoding/binary"
	"fmt"

	"github.com/cocosip/go-jfif/jpeg/common"
	"github.com/cocosip/go-jfif/jpeg/huffman"
)

// jfifHeader is the APP0 payload: identifier, version 1.1, no units,
// 1:1 pixel density, no thumbnail
var jfifHeader = []byte{
	'J', 'F', 'I', 'F', 0x00,
	0x01, 0x01,
	0x00,
	0x00, 0x01, 0x00, 0x01,
	0x00, 0x00,
}

// containerParts is everything a JFIF stream is serialized from
type containerParts struct {
	frame   frame
	quant   *common.QuantTables
	tables  *huffman.TableSet
	comment string
	scan    []byte
}

// writeContainer serializes SOI, APP0, COM, DQT, SOF0, DHT, SOS, the entropy data and EOI
func writeContainer(writer *common.Writer, p *containerParts) error {
	if err := writer.WriteMarker(common.MarkerSOI); err != nil {
		return err
	}

	if err := writer.WriteSegment(common.MarkerAPP0, jfifHeader); err != nil {
		return err
	}

	if p.comment != "" {
		if err := writer.WriteSegment(common.MarkerCOM, []byte(p.comment)); err != nil {
			return err
		}
	}

	if err := writeDQT(writer, p.quant); err != nil {
		return err
	}

	if err := writeSOF0(writer, &p.frame); err != nil {
		return err
	}

	for _, seg := range p.tables.Segments() {
		if err := writer.WriteSegment(common.MarkerDHT, seg.Table.SegmentData(seg.Class, seg.ID)); err != nil {
			return err
		}
	}

	if err := writeSOS(writer); err != nil {
		return err
	}

	if err := writer.WriteBytes(p.scan); err != nil {
		return err
	}

	return writer.WriteMarker(common.MarkerEOI)
}

// writeDQT writes one Define Quantization Table segment per class
func writeDQT(writer *common.Writer, q *common.QuantTables) error {
	for i, class := range []common.ChannelClass{common.Luma, common.Chroma} {
		table, err := q.Table(class)
		if err != nil {
			return err
		}

		data := make([]byte, 1+64)
		data[0] = byte(i) // Precision=0 (8-bit), Table ID=i

		// Write in zigzag order
		for j := 0; j < 64; j++ {
			data[1+j] = byte(table[common.ZigZagOrder[j]])
		}

		if err := writer.WriteSegment(common.MarkerDQT, data); err != nil {
			return err
		}
	}

	return nil
}

// writeSOF0 writes Start of Frame (Baseline DCT) with the padded dimensions
func writeSOF0(writer *common.Writer, f *frame) error {
	data := make([]byte, 6+numComponents*3)

	data[0] = 8                    // Precision: 8 bits
	data[1] = byte(f.paddedH >> 8) // Height high byte
	data[2] = byte(f.paddedH)      // Height low byte
	data[3] = byte(f.paddedW >> 8) // Width high byte
	data[4] = byte(f.paddedW)      // Width low byte
	data[5] = byte(numComponents)  // Number of components

	for i, c := range scanOrder {
		data[6+i*3] = c.ID()
		data[7+i*3] = 0x11 // Sampling factors: 1x1
		data[8+i*3] = byte(c.Class())
	}

	return writer.WriteSegment(common.MarkerSOF0, data)
}

// writeSOS writes the Start of Scan header of the single interleaved scan
func writeSOS(writer *common.Writer) error {
	data := make([]byte, 1+numComponents*2+3)
	data[0] = byte(numComponents)

	for i, c := range scanOrder {
		sel := byte(c.Class())
		data[1+i*2] = c.ID()
		data[2+i*2] = sel<<4 | sel // DC table, AC table
	}

	// Spectral selection
	data[1+numComponents*2] = 0  // Start of spectral selection
	data[2+numComponents*2] = 63 // End of spectral selection
	data[3+numComponents*2] = 0  // Successive approximation

	return writer.WriteSegment(common.MarkerSOS, data)
}

// Segment is one marker of a JPEG stream as found by ListSegments
type Segment struct {
	Marker uint16
	// Offset of the marker's first byte
	Offset int
	// Payload without the length field; the entropy data for an SOS segment
	// is reported separately in Scan
	Data []byte
	// Entropy-coded bytes that follow an SOS header, still stuffed
	Scan []byte
}

// ListSegments splits a JPEG stream into its marker segments. It does not
// interpret the segments beyond finding where the entropy data of a scan ends.
func ListSegments(data []byte) ([]Segment, error) {
	if len(data) < 2 || binary.BigEndian.Uint16(data) != common.MarkerSOI {
		return nil, fmt.Errorf("%w: missing SOI", common.ErrInvalidSegment)
	}

	segments := []Segment{{Marker: common.MarkerSOI}}
	pos := 2
	for {
		if pos+2 > len(data) {
			return nil, fmt.Errorf("%w: truncated at offset %d", common.ErrInvalidSegment, pos)
		}
		if data[pos] != 0xFF {
			return nil, fmt.Errorf("%w: expected marker at offset %d, found 0x%02X", common.ErrInvalidSegment, pos, data[pos])
		}

		marker := binary.BigEndian.Uint16(data[pos:])
		seg := Segment{Marker: marker, Offset: pos}
		pos += 2

		if marker == common.MarkerEOI {
			segments = append(segments, seg)
			return segments, nil
		}

		if common.HasLength(marker) {
			if pos+2 > len(data) {
				return nil, fmt.Errorf("%w: truncated length of marker 0x%04X", common.ErrInvalidSegment, marker)
			}
			length := int(binary.BigEndian.Uint16(data[pos:]))
			if length < 2 || pos+length > len(data) {
				return nil, fmt.Errorf("%w: marker 0x%04X length %d", common.ErrInvalidSegment, marker, length)
			}
			seg.Data = data[pos+2 : pos+length]
			pos += length
		}

		if marker == common.MarkerSOS {
			start := pos
			for pos < len(data) {
				if data[pos] == 0xFF && pos+1 < len(data) && data[pos+1] != 0x00 {
					break
				}
				pos++
			}
			seg.Scan = data[start:pos]
		}

		segments = append(segments, seg)
	}
}

// MarkerName returns the short name of a marker
func MarkerName(marker uint16) string {
	switch marker {
	case common.MarkerSOI:
		return "SOI"
	case common.MarkerEOI:
		return "EOI"
	case common.MarkerSOF0:
		return "SOF0"
	case common.MarkerDHT:
		return "DHT"
	case common.MarkerDQT:
		return "DQT"
	case common.MarkerSOS:
		return "SOS"
	case common.MarkerAPP0:
		return "APP0"
	case common.MarkerCOM:
		return "COM"
	default:
		return fmt.Sprintf("0x%04X", marker)
	}
}
