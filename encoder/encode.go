// Package encoder implements the Aztec symbol encoding pipeline: the
// high-level text encoder, the symbol sizer, the codeword packer, the
// mode-message encoder, and the matrix builder. It has no public encoding
// entry point of its own beyond Encode - the root package wraps this with
// the Symbol/Configuration types callers see.
package encoder

import (
	"github.com/halfdan/aztec/bitutil"
	"github.com/halfdan/aztec/reedsolomon"
)

// Result is the matrix builder's output: the painted symbol and the
// configuration that produced it.
type Result struct {
	Matrix *bitutil.BitMatrix
	Size   int
	Config *Configuration
}

// Encode runs the full pipeline - text encode, size, pack, protect, paint -
// over a payload. ecPercent is the requested error-correction percentage,
// preferCompact prefers a fitting compact spec over a smaller full one, and
// userLayers (0 for auto) pins the layer count as ChooseSymbol documents.
func Encode(payload []byte, ecPercent int, preferCompact bool, userLayers int) (*Result, error) {
	textBits, err := highLevelEncode(payload)
	if err != nil {
		return nil, err
	}
	if textBits.Size() == 0 {
		return nil, &InvalidConfigurationError{Reason: "empty payload"}
	}

	cfg, stuffed, err := ChooseSymbol(textBits, ecPercent, preferCompact, userLayers)
	if err != nil {
		return nil, err
	}

	padded := padWithFiller(stuffed, cfg.WordSize, cfg.DataCodewords)
	messageBits := protectDataCodewords(padded, cfg)
	modeMessage := buildModeMessage(cfg)

	matrix, size := BuildMatrix(cfg, messageBits, modeMessage)
	return &Result{Matrix: matrix, Size: size, Config: cfg}, nil
}

// protectDataCodewords Reed-Solomon encodes the padded data codewords over
// the field matching cfg.WordSize and returns the full codeword stream -
// data followed by parity - as a bit stream with an alignment pad
// (totalBitsInLayer mod wordSize zero bits) prepended, ready for data
// placement.
func protectDataCodewords(padded *bitutil.BitArray, cfg *Configuration) *bitutil.BitArray {
	totalBits := totalBitsInLayer(cfg.Layers, cfg.Compact)

	words := codewordsFromBits(padded, cfg.WordSize, cfg.DataCodewords)
	words = append(words, make([]int, cfg.ParityCodewords)...)

	rs := reedsolomon.NewEncoder(gfForWordSize(cfg.WordSize))
	rs.Encode(words, cfg.ParityCodewords)

	startPad := totalBits % cfg.WordSize
	out := bitutil.NewBitArray(0)
	out.AppendMSB(0, startPad)
	for _, w := range words {
		out.AppendMSB(uint64(w), cfg.WordSize)
	}
	return out
}
