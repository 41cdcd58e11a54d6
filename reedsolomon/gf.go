// Package reedsolomon implements Galois field arithmetic and systematic
// Reed-Solomon encoding/decoding over GF(2^m) for m in {4, 6, 8, 10, 12},
// the field sizes the Aztec symbol format uses for its mode message and its
// four data codeword widths.
package reedsolomon

import "fmt"

// GenericGF represents a Galois Field GF(2^m) precomputed for fast
// multiplication and inversion.
//
// The exp table is built to twice the size of the field's multiplicative
// group (order = size-1 nonzero elements) so that Multiply never needs a
// modulus: expTable[i] for i in [order, 2*order) is just a second copy of
// expTable[i-order]. Multiply then looks up expTable[log(a)+log(b)]
// directly, since that sum never exceeds 2*order-2.
type GenericGF struct {
	expTable      []int
	logTable      []int
	zero          *GenericGFPoly
	one           *GenericGFPoly
	size          int
	order         int // size - 1, the order of the multiplicative group
	primitive     int
	generatorBase int
}

// Pre-defined Galois Fields used by the Aztec symbol format. AztecParam is
// GF(16), used for the mode message; AztecData6/8/10/12 are the four data
// codeword field sizes selected by the chosen symbol's word size.
var (
	AztecData12 = NewGenericGF(0x1069, 4096, 1) // x^12 + x^6 + x^5 + x^3 + 1
	AztecData10 = NewGenericGF(0x0409, 1024, 1) // x^10 + x^3 + 1
	AztecData8  = NewGenericGF(0x012D, 256, 1)  // x^8 + x^5 + x^3 + x^2 + 1
	AztecData6  = NewGenericGF(0x0043, 64, 1)   // x^6 + x + 1
	AztecParam  = NewGenericGF(0x0013, 16, 1)   // x^4 + x + 1
)

// NewGenericGF creates a GF(size) using the given primitive polynomial
// (with its leading x^m term included) and generator base (the starting
// exponent s used when building an RS generator polynomial's roots,
// alpha^(s+i)).
func NewGenericGF(primitive, size, generatorBase int) *GenericGF {
	order := size - 1
	gf := &GenericGF{
		primitive:     primitive,
		size:          size,
		order:         order,
		generatorBase: generatorBase,
		expTable:      make([]int, 2*order),
		logTable:      make([]int, size),
	}

	x := 1
	for i := 0; i < order; i++ {
		gf.expTable[i] = x
		gf.logTable[x] = i
		x *= 2
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := order; i < 2*order; i++ {
		gf.expTable[i] = gf.expTable[i-order]
	}

	gf.zero = newGenericGFPoly(gf, []int{0})
	gf.one = newGenericGFPoly(gf, []int{1})

	return gf
}

// Zero returns the zero polynomial.
func (gf *GenericGF) Zero() *GenericGFPoly { return gf.zero }

// One returns the one polynomial.
func (gf *GenericGF) One() *GenericGFPoly { return gf.one }

// BuildMonomial returns coefficient * x^degree.
func (gf *GenericGF) BuildMonomial(degree, coefficient int) *GenericGFPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return gf.zero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newGenericGFPoly(gf, coefficients)
}

// AddOrSubtract computes a XOR b (addition and subtraction are the same in GF(2^n)).
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// Exp returns alpha^a in this field. a may be any non-negative integer (or
// negative); it is reduced modulo the group order.
func (gf *GenericGF) Exp(a int) int {
	a %= gf.order
	if a < 0 {
		a += gf.order
	}
	return gf.expTable[a]
}

// Log returns the discrete log base alpha of a.
func (gf *GenericGF) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return gf.logTable[a]
}

// Inverse returns the multiplicative inverse of a.
func (gf *GenericGF) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return gf.expTable[gf.order-gf.logTable[a]]
}

// Multiply returns a * b in this field. No modulus is needed: the exp table
// is doubled so log(a)+log(b), which never exceeds 2*order-2, is always a
// valid index.
func (gf *GenericGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[gf.logTable[a]+gf.logTable[b]]
}

// Size returns the number of elements in the field (2^m).
func (gf *GenericGF) Size() int { return gf.size }

// GeneratorBase returns the generator base (the RS start exponent s).
func (gf *GenericGF) GeneratorBase() int { return gf.generatorBase }

// Primitive returns the primitive polynomial (with its leading x^m term)
// used to build this field.
func (gf *GenericGF) Primitive() int { return gf.primitive }

// String returns a string representation.
func (gf *GenericGF) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
