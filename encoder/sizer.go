package encoder

import (
	"fmt"
	"sort"

	"github.com/halfdan/aztec/bitutil"
	"github.com/halfdan/aztec/reedsolomon"
)

// Configuration describes the symbol parameters the sizer chose for a given
// payload: which spec row fit, and how its capacity splits between data and
// parity codewords. It flows unchanged from the sizer through the
// mode-message encoder and matrix builder.
type Configuration struct {
	Compact             bool
	Layers              int
	WordSize            int
	TotalCodewords      int
	DataCodewords       int
	ParityCodewords     int
	PrimitivePolynomial int
	RSStartExponent     int
}

// SymbolSpec is one row of the Aztec capacity table: a layer count and word
// size paired with the codeword capacity that layer count holds at that
// word size. Compact symbols run layers 1-4; full symbols run layers 4-32
// (full L1-3 are never emitted: their coordinates would overlap the finder
// pattern, so the standard's own encoder skips straight to L4).
type SymbolSpec struct {
	Compact        bool
	Layers         int
	WordSize       int
	TotalCodewords int
}

// wordSizeTable[layers] gives the codeword bit width for that layer count.
// Index 0 is the mode message (always 4 bits, handled separately). The same
// table serves compact (indices 1-4) and full (indices 4-32) symbols: the
// standard picks word sizes by layer count alone, independent of family.
var wordSizeTable = [33]int{
	4, 6, 6, 8, 8, 8, 8, 8, 8, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

// gfForWordSize returns the Galois field used for Reed-Solomon parity at
// the given codeword bit width.
func gfForWordSize(ws int) *reedsolomon.GenericGF {
	switch ws {
	case 4:
		return reedsolomon.AztecParam
	case 6:
		return reedsolomon.AztecData6
	case 8:
		return reedsolomon.AztecData8
	case 10:
		return reedsolomon.AztecData10
	case 12:
		return reedsolomon.AztecData12
	default:
		panic(fmt.Sprintf("encoder: unsupported word size %d", ws))
	}
}

// totalBitsInLayer returns the number of data-region bits a symbol with the
// given layer count and family holds, per the standard's closed-form
// per-layer bit count.
func totalBitsInLayer(layers int, compact bool) int {
	base := 112
	if compact {
		base = 88
	}
	return (base + 16*layers) * layers
}

var (
	compactSpecs []SymbolSpec
	fullSpecs    []SymbolSpec
	symbolSpecs  []SymbolSpec // all specs, sorted smallest-capacity-first
)

func init() {
	for l := 1; l <= 4; l++ {
		ws := wordSizeTable[l]
		compactSpecs = append(compactSpecs, SymbolSpec{
			Compact:        true,
			Layers:         l,
			WordSize:       ws,
			TotalCodewords: totalBitsInLayer(l, true) / ws,
		})
	}
	for l := 4; l <= 32; l++ {
		ws := wordSizeTable[l]
		fullSpecs = append(fullSpecs, SymbolSpec{
			Compact:        false,
			Layers:         l,
			WordSize:       ws,
			TotalCodewords: totalBitsInLayer(l, false) / ws,
		})
	}

	symbolSpecs = append(symbolSpecs, compactSpecs...)
	symbolSpecs = append(symbolSpecs, fullSpecs...)
	sort.SliceStable(symbolSpecs, func(i, j int) bool {
		si, sj := symbolSpecs[i], symbolSpecs[j]
		return si.TotalCodewords*si.WordSize < sj.TotalCodewords*sj.WordSize
	})
}

// PayloadTooLargeError reports that no symbol spec has capacity for a
// payload, given its bit-stream length.
type PayloadTooLargeError struct {
	BitCount int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("encoder: payload too large: %d bits fits no symbol spec", e.BitCount)
}

// InvalidConfigurationError reports a caller-supplied configuration the
// encoder cannot honor, such as an out-of-range user-specified layer count.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("encoder: invalid configuration: %s", e.Reason)
}

// ChooseSymbol runs the sizer's fit test over the symbol spec table and
// returns the chosen configuration plus the stuffed codeword bit stream
// (packed at the chosen word size). DataCodewords is taken from that
// stream's own word count, so the stream holds exactly DataCodewords words
// and no filler codewords are added here.
//
// userLayers, when non-zero, pins the layer count instead of searching:
// positive values request a full symbol with that many layers, negative
// values request a compact symbol with abs(userLayers) layers.
func ChooseSymbol(payloadBits *bitutil.BitArray, ecPercent int, preferCompact bool, userLayers int) (*Configuration, *bitutil.BitArray, error) {
	if userLayers != 0 {
		return chooseUserSpecifiedSymbol(payloadBits, ecPercent, userLayers)
	}

	candidates := symbolSpecs
	if preferCompact {
		candidates = make([]SymbolSpec, 0, len(symbolSpecs))
		candidates = append(candidates, compactSpecs...)
		candidates = append(candidates, fullSpecs...)
	}

	stuffedCache := make(map[int]*bitutil.BitArray)
	for _, spec := range candidates {
		stuffed, ok := stuffedCache[spec.WordSize]
		if !ok {
			stuffed = stuffBits(payloadBits, spec.WordSize)
			stuffedCache[spec.WordSize] = stuffed
		}

		dataCount := stuffed.Size() / spec.WordSize
		if spec.Compact && dataCount > 64 {
			// The compact mode message only carries 6 bits of dataWords-1,
			// so a compact spec whose stuffed payload needs more than 64
			// data codewords cannot represent it at all.
			continue
		}

		minParity := requiredParity(dataCount, ecPercent)
		if dataCount+minParity > spec.TotalCodewords {
			continue
		}

		cfg := &Configuration{
			Compact:             spec.Compact,
			Layers:              spec.Layers,
			WordSize:            spec.WordSize,
			TotalCodewords:      spec.TotalCodewords,
			DataCodewords:       dataCount,
			ParityCodewords:     spec.TotalCodewords - dataCount,
			PrimitivePolynomial: gfForWordSize(spec.WordSize).Primitive(),
			RSStartExponent:     1,
		}
		return cfg, stuffed, nil
	}

	return nil, nil, &PayloadTooLargeError{BitCount: payloadBits.Size()}
}

func chooseUserSpecifiedSymbol(payloadBits *bitutil.BitArray, ecPercent, userLayers int) (*Configuration, *bitutil.BitArray, error) {
	compact := userLayers < 0
	layers := userLayers
	if compact {
		layers = -layers
	}
	minLayers, maxLayers := 1, 32
	if compact {
		maxLayers = 4
	} else {
		minLayers = 4 // full L1-3 would overlap the finder pattern.
	}
	if layers < minLayers || layers > maxLayers {
		return nil, nil, &InvalidConfigurationError{Reason: fmt.Sprintf("layer value %d out of range", userLayers)}
	}

	wordSize := wordSizeTable[layers]
	total := totalBitsInLayer(layers, compact) / wordSize
	stuffed := stuffBits(payloadBits, wordSize)
	dataCount := stuffed.Size() / wordSize

	if compact && dataCount > 64 {
		return nil, nil, &InvalidConfigurationError{Reason: "payload needs more than 64 data codewords for a compact symbol"}
	}

	minParity := requiredParity(dataCount, ecPercent)
	if dataCount+minParity > total {
		return nil, nil, &InvalidConfigurationError{Reason: "payload does not fit in the user-specified layer count"}
	}

	cfg := &Configuration{
		Compact:             compact,
		Layers:              layers,
		WordSize:            wordSize,
		TotalCodewords:      total,
		DataCodewords:       dataCount,
		ParityCodewords:     total - dataCount,
		PrimitivePolynomial: gfForWordSize(wordSize).Primitive(),
		RSStartExponent:     1,
	}
	return cfg, stuffed, nil
}

// requiredParity is the sizer's minimum-parity rule: at least 3 codewords,
// and at least ceil(dataCount * ecPercent / 100).
func requiredParity(dataCount, ecPercent int) int {
	min := (dataCount*ecPercent + 99) / 100
	if min < 3 {
		min = 3
	}
	return min
}
