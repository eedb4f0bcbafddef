package common

// ZigZagOrder maps a zigzag scan position to its natural (row-major) index.
var ZigZagOrder = buildZigZagOrder()

// buildZigZagOrder walks the 8x8 matrix diagonally starting at (0,0).
// Moving up-right, hitting the right column steps down and hitting the top row
// steps right, then the direction reverses. Moving down-left mirrors this against
// the bottom row and the left column.
func buildZigZagOrder() [64]int {
	var order [64]int
	row, col := 0, 0
	up := true

	for k := range order {
		order[k] = row*BlockSize + col

		if up {
			switch {
			case col == BlockSize-1:
				row++
				up = false
			case row == 0:
				col++
				up = false
			default:
				row--
				col++
			}
		} else {
			switch {
			case row == BlockSize-1:
				col++
				up = true
			case col == 0:
				row++
				up = true
			default:
				row++
				col--
			}
		}
	}

	return order
}

// ZigZag linearizes a block in zigzag order
func ZigZag(b *IntBlock) CoefficientVector {
	var v CoefficientVector
	for k, idx := range ZigZagOrder {
		v[k] = b[idx]
	}
	return v
}

// UnZigZag restores natural order from a zigzag vector
func UnZigZag(v *CoefficientVector) IntBlock {
	var b IntBlock
	for k, idx := range ZigZagOrder {
		b[idx] = v[k]
	}
	return b
}
