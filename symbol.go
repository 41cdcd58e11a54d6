package aztec

import "github.com/halfdan/aztec/bitutil"

// Symbol is the exported bitmap: a square grid of dark/light modules
// packed into row-major bytes.
type Symbol struct {
	// Size is the side length in modules.
	Size int

	// RowStride is the number of bytes per row, ceil(Size/8).
	RowStride int

	// Bytes holds Size*RowStride bytes, row-major. Bit packing follows
	// msbFirst: column x is bit (7 - x%8) of byte x/8 when true, or bit
	// x%8 of byte x/8 when false.
	Bytes []byte

	msbFirst bool
}

// Get reports whether module (x, y) is dark. It reads Bytes in the same bit
// order they were packed in, so the result is the same for an LSB-first and
// an MSB-first export of one symbol (msbFirst only affects the exported byte
// layout, never the module this accessor reports).
func (s *Symbol) Get(x, y int) bool {
	byteIndex := y*s.RowStride + x/8
	b := s.Bytes[byteIndex]
	if s.msbFirst {
		return b&(1<<uint(7-x%8)) != 0
	}
	return b&(1<<uint(x%8)) != 0
}

// exportSymbol packs a painted BitMatrix into a Symbol's row-major byte
// layout, per the caller's chosen bit order.
func exportSymbol(matrix *bitutil.BitMatrix, size int, msbFirst bool) *Symbol {
	rowStride := (size + 7) / 8
	out := make([]byte, size*rowStride)
	for y := 0; y < size; y++ {
		rowStart := y * rowStride
		for x := 0; x < size; x++ {
			if !matrix.Get(x, y) {
				continue
			}
			if msbFirst {
				out[rowStart+x/8] |= 1 << uint(7-x%8)
			} else {
				out[rowStart+x/8] |= 1 << uint(x%8)
			}
		}
	}
	return &Symbol{Size: size, RowStride: rowStride, Bytes: out, msbFirst: msbFirst}
}
