package common

// BlockSize is the edge length of a coding block
const BlockSize = 8

// Block is an 8x8 sample or DCT coefficient matrix in row-major order
type Block [64]float64

// IntBlock is a quantized 8x8 matrix in row-major (natural) order
type IntBlock [64]int32

// CoefficientVector is a quantized block in zigzag order.
// Index 0 is the DC coefficient, 1..63 are the AC coefficients.
type CoefficientVector [64]int32
