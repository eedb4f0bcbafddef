package common

// JPEG marker constants
const (
	// Start of Image
	MarkerSOI = 0xFFD8

	// End of Image
	MarkerEOI = 0xFFD9

	// Start of Frame, Baseline DCT
	MarkerSOF0 = 0xFFC0

	// Define Huffman Table
	MarkerDHT = 0xFFC4

	// Define Quantization Table
	MarkerDQT = 0xFFDB

	// Start of Scan
	MarkerSOS = 0xFFDA

	// JFIF application segment
	MarkerAPP0 = 0xFFE0

	// Comment
	MarkerCOM = 0xFFFE
)

// MaxSegmentData is the largest payload a length-prefixed segment can carry.
// The 16-bit length field counts itself.
const MaxSegmentData = 0xFFFF - 2

// HasLength returns true if the marker is followed by a length field
func HasLength(marker uint16) bool {
	return marker != MarkerSOI && marker != MarkerEOI
}
