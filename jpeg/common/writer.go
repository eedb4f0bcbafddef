package common

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Writer provides utilities for writing JPEG data
type Writer struct {
	w   io.Writer
	buf [2]byte
	n   int64
}

// NewWriter creates a new JPEG writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteUint16 writes a 16-bit big-endian value
func (w *Writer) WriteUint16(v uint16) error {
	binary.BigEndian.PutUint16(w.buf[:2], v)
	return w.WriteBytes(w.buf[:2])
}

// WriteMarker writes a JPEG marker
func (w *Writer) WriteMarker(marker uint16) error {
	return w.WriteUint16(marker)
}

// WriteSegment writes a segment with length
// The length field is automatically calculated and includes itself (2 bytes)
func (w *Writer) WriteSegment(marker uint16, data []byte) error {
	if len(data) > MaxSegmentData {
		return fmt.Errorf("marker 0x%04X: %w (%d bytes)", marker, ErrSegmentTooLong, len(data))
	}

	if err := w.WriteMarker(marker); err != nil {
		return err
	}

	// Length includes the 2 bytes for the length field itself
	if err := w.WriteUint16(uint16(len(data) + 2)); err != nil {
		return err
	}

	return w.WriteBytes(data)
}

// Write writes raw bytes
func (w *Writer) Write(data []byte) (int, error) {
	n, err := w.w.Write(data)
	w.n += int64(n)
	return n, err
}

// WriteBytes is an alias for Write
func (w *Writer) WriteBytes(data []byte) error {
	_, err := w.Write(data)
	return err
}

// Written returns the number of bytes written so far
func (w *Writer) Written() int64 {
	return w.n
}
