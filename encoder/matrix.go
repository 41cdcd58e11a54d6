package encoder

import "github.com/halfdan/aztec/bitutil"

// baseMatrixSize is the side length of the "base" matrix - the coordinate
// space data placement and the finder/mode-message geometry are computed
// in, before the alignment map inserts reference-grid skips for full
// symbols. For compact symbols base equals the painted matrix size.
func baseMatrixSize(cfg *Configuration) int {
	if cfg.Compact {
		return cfg.Layers*4 + 11
	}
	return cfg.Layers*4 + 14
}

// matrixSize is the side length of the painted matrix: base size plus the
// reference-grid expansion for full symbols.
func matrixSize(cfg *Configuration) int {
	base := baseMatrixSize(cfg)
	if cfg.Compact {
		return base
	}
	refLines := (base/2 - 1) / 15
	return base + 1 + 2*refLines
}

// buildAlignmentMap returns the lookup from base-matrix coordinate to
// painted-matrix coordinate. For compact symbols this is the identity; for
// full symbols it inserts a one-module skip at every reference-grid
// coordinate, built once and reused for every placement rather than
// recomputed inline inside the placement loop.
func buildAlignmentMap(cfg *Configuration) []int {
	base := baseMatrixSize(cfg)
	alignmentMap := make([]int, base)

	if cfg.Compact {
		for i := range alignmentMap {
			alignmentMap[i] = i
		}
		return alignmentMap
	}

	size := matrixSize(cfg)
	origCenter := base / 2
	center := size / 2
	for i := 0; i < origCenter; i++ {
		newOffset := i + i/15
		alignmentMap[origCenter-i-1] = center - newOffset - 1
		alignmentMap[origCenter+i] = center + newOffset + 1
	}
	return alignmentMap
}

// BuildMatrix paints every symbol component - bull's-eye, orientation
// marks, mode-message ring, reference grid (full only), and the data
// spiral - into a fresh BitMatrix and returns it along with its side
// length.
func BuildMatrix(cfg *Configuration, messageBits *bitutil.BitArray, modeMessage *bitutil.BitArray) (*bitutil.BitMatrix, int) {
	size := matrixSize(cfg)
	base := baseMatrixSize(cfg)
	alignmentMap := buildAlignmentMap(cfg)
	matrix := bitutil.NewBitMatrix(size)

	placeData(matrix, cfg, messageBits, alignmentMap, base)
	drawModeMessageRing(matrix, cfg, size, modeMessage)

	if cfg.Compact {
		drawBullsEye(matrix, size/2, 5)
	} else {
		drawBullsEye(matrix, size/2, 7)
		drawReferenceGrid(matrix, size, base)
	}

	return matrix, size
}

// placeData walks the data region in cfg.Layers nested two-module-wide
// rings, outward from the finder, in a four-sided spiral.
func placeData(matrix *bitutil.BitMatrix, cfg *Configuration, messageBits *bitutil.BitArray, alignmentMap []int, base int) {
	rowOffset := 0
	for i := 0; i < cfg.Layers; i++ {
		rowSize := (cfg.Layers-i)*4 + 9
		if !cfg.Compact {
			rowSize = (cfg.Layers-i)*4 + 12
		}
		for j := 0; j < rowSize; j++ {
			columnOffset := j * 2
			for k := 0; k < 2; k++ {
				if messageBits.Get(rowOffset + columnOffset + k) {
					matrix.Set(alignmentMap[i*2+k], alignmentMap[i*2+j])
				}
				if messageBits.Get(rowOffset + rowSize*2 + columnOffset + k) {
					matrix.Set(alignmentMap[i*2+j], alignmentMap[base-1-i*2-k])
				}
				if messageBits.Get(rowOffset + rowSize*4 + columnOffset + k) {
					matrix.Set(alignmentMap[base-1-i*2-k], alignmentMap[base-1-i*2-j])
				}
				if messageBits.Get(rowOffset + rowSize*6 + columnOffset + k) {
					matrix.Set(alignmentMap[base-1-i*2-j], alignmentMap[i*2+k])
				}
			}
		}
		rowOffset += rowSize * 8
	}
}

// drawBullsEye paints the central finder rings (dark at even Chebyshev
// distance from center, up to radius size) and the rotationally-asymmetric
// orientation marks just outside it that fix decoder orientation.
func drawBullsEye(matrix *bitutil.BitMatrix, center, size int) {
	for i := 0; i < size; i += 2 {
		for j := center - i; j <= center+i; j++ {
			matrix.Set(j, center-i)
			matrix.Set(j, center+i)
			matrix.Set(center-i, j)
			matrix.Set(center+i, j)
		}
	}
	// Orientation marks: one dark corner, two on the next, three on the
	// third - asymmetric so a decoder can recover rotation.
	matrix.Set(center-size, center-size)
	matrix.Set(center-size+1, center-size)
	matrix.Set(center-size, center-size+1)
	matrix.Set(center+size, center-size)
	matrix.Set(center+size, center-size+1)
	matrix.Set(center+size, center+size-1)
}

// drawReferenceGrid paints the full-symbol alignment aid: dark/light pairs
// on rows and columns spaced 16 modules from center, alternating by parity
// of the perpendicular coordinate.
func drawReferenceGrid(matrix *bitutil.BitMatrix, size, base int) {
	center := size / 2
	for i, j := 0, 0; i < base/2-1; i, j = i+15, j+16 {
		for k := center & 1; k < size; k += 2 {
			matrix.Set(center-j, k)
			matrix.Set(center+j, k)
			matrix.Set(k, center-j)
			matrix.Set(k, center+j)
		}
	}
}

// drawModeMessageRing paints the mode message around the bull's-eye:
// compact symbols use a radius-5 ring split into four 7-bit segments (28
// bits total), full symbols a radius-7 ring split into four 10-bit
// segments (40 bits total). Each segment reads the next bits from the
// mode-message stream MSB-first, painted clockwise starting at the left end
// of the top side. Compact segments are 7 contiguous modules centred on the
// center row/column; full segments skip the center row/column.
func drawModeMessageRing(matrix *bitutil.BitMatrix, cfg *Configuration, size int, modeMessage *bitutil.BitArray) {
	center := size / 2
	if cfg.Compact {
		for i := 0; i < 7; i++ {
			offset := center - 3 + i
			if modeMessage.Get(i) {
				matrix.Set(offset, center-5)
			}
			if modeMessage.Get(i + 7) {
				matrix.Set(center+5, offset)
			}
			if modeMessage.Get(20 - i) {
				matrix.Set(offset, center+5)
			}
			if modeMessage.Get(27 - i) {
				matrix.Set(center-5, offset)
			}
		}
		return
	}
	for i := 0; i < 10; i++ {
		offset := center - 5 + i + i/5
		if modeMessage.Get(i) {
			matrix.Set(offset, center-7)
		}
		if modeMessage.Get(i + 10) {
			matrix.Set(center+7, offset)
		}
		if modeMessage.Get(29 - i) {
			matrix.Set(offset, center+7)
		}
		if modeMessage.Get(39 - i) {
			matrix.Set(center-7, offset)
		}
	}
}
