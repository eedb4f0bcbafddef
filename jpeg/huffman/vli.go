package huffman

// Category returns the number of bits needed to represent |v| (0 for v == 0)
func Category(v int32) int {
	if v < 0 {
		v = -v
	}
	cat := 0
	for v > 0 {
		v >>= 1
		cat++
	}
	return cat
}

// EncodeVLI returns the value bits of v and their count.
// Negative values are stored as (2^n - 1) + v, the one's complement of |v|.
func EncodeVLI(v int32) (bits uint32, n int) {
	n = Category(v)
	if n == 0 {
		return 0, 0
	}
	if v < 0 {
		return uint32((int32(1)<<uint(n) - 1) + v), n
	}
	return uint32(v), n
}

// DecodeVLI reverses EncodeVLI (the EXTEND procedure of T.81 F.2.2.1)
func DecodeVLI(bits uint32, n int) int32 {
	if n == 0 {
		return 0
	}
	v := int32(bits & (1<<uint(n) - 1))
	if v < int32(1)<<uint(n-1) {
		v += -(int32(1) << uint(n)) + 1
	}
	return v
}
