package common

// Standard JPEG quantization tables (ITU-T T.81 Annex K), natural order

// DefaultLuminanceQuantTable is the standard luminance quantization table
var DefaultLuminanceQuantTable = [64]int32{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// DefaultChrominanceQuantTable is the standard chrominance quantization table
var DefaultChrominanceQuantTable = [64]int32{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// FixedLuminanceQuantTable is the built-in high quality luminance table used
// when no quality factor is requested
var FixedLuminanceQuantTable = [64]int32{
	3, 2, 2, 3, 5, 8, 10, 12,
	2, 2, 3, 4, 5, 12, 12, 11,
	3, 3, 3, 5, 8, 11, 14, 11,
	3, 3, 4, 6, 10, 17, 16, 12,
	4, 4, 7, 11, 14, 22, 21, 15,
	5, 7, 11, 13, 16, 21, 23, 18,
	10, 13, 16, 17, 21, 24, 24, 20,
	14, 18, 19, 20, 22, 20, 21, 20,
}

// FixedChrominanceQuantTable is the built-in high quality chrominance table
var FixedChrominanceQuantTable = [64]int32{
	3, 4, 5, 9, 20, 20, 20, 20,
	4, 4, 5, 13, 20, 20, 20, 20,
	5, 5, 11, 20, 20, 20, 20, 20,
	9, 13, 20, 20, 20, 20, 20, 20,
	20, 20, 20, 20, 20, 20, 20, 20,
	20, 20, 20, 20, 20, 20, 20, 20,
	20, 20, 20, 20, 20, 20, 20, 20,
	20, 20, 20, 20, 20, 20, 20, 20,
}

// FixedQuantTables returns the built-in table pair
func FixedQuantTables() QuantTables {
	return QuantTables{Luma: FixedLuminanceQuantTable, Chroma: FixedChrominanceQuantTable}
}

// ScaledQuantTables returns the standard tables scaled by quality (1-100)
func ScaledQuantTables(quality int) QuantTables {
	return QuantTables{
		Luma:   ScaleQuantTable(DefaultLuminanceQuantTable, quality),
		Chroma: ScaleQuantTable(DefaultChrominanceQuantTable, quality),
	}
}

// ScaleQuantTable scales a quantization table by quality factor (1-100)
func ScaleQuantTable(baseTable [64]int32, quality int) [64]int32 {
	var result [64]int32

	quality = Clamp(quality, 1, 100)

	// Convert quality to scale factor
	// Quality 50 = no scaling
	// Quality < 50: increase quantization (lower quality, higher compression)
	// Quality > 50: decrease quantization (higher quality, lower compression)
	var scale int
	if quality < 50 {
		scale = 5000 / quality
	} else {
		scale = 200 - quality*2
	}

	for i := 0; i < 64; i++ {
		val := (baseTable[i]*int32(scale) + 50) / 100
		if val < 1 {
			val = 1
		}
		if val > 255 {
			val = 255
		}
		result[i] = val
	}

	return result
}
