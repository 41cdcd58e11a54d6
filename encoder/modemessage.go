package encoder

import (
	"github.com/halfdan/aztec/bitutil"
	"github.com/halfdan/aztec/reedsolomon"
)

// buildModeMessage assembles the mode message: the short header, RS-protected
// over GF(16), that tells a decoder the layer count and data codeword count.
// Compact symbols carry a 28-bit message (2 data nibbles + 5 parity
// nibbles); full symbols carry 40 bits (4 data nibbles + 6 parity nibbles).
func buildModeMessage(cfg *Configuration) *bitutil.BitArray {
	payload := bitutil.NewBitArray(0)
	var totalBits int
	if cfg.Compact {
		payload.AppendMSB(uint64(cfg.Layers-1), 2)
		payload.AppendMSB(uint64(cfg.DataCodewords-1), 6)
		totalBits = 28
	} else {
		payload.AppendMSB(uint64(cfg.Layers-1), 5)
		payload.AppendMSB(uint64(cfg.DataCodewords-1), 11)
		totalBits = 40
	}
	return rsProtectNibbles(payload, totalBits)
}

// rsProtectNibbles splits payload into 4-bit nibbles, computes GF(16) parity
// nibbles to fill out totalBits, and returns the nibbles concatenated
// MSB-first with a leading alignment pad (here always zero-length, since
// both mode-message sizes are exact multiples of 4 bits).
func rsProtectNibbles(payload *bitutil.BitArray, totalBits int) *bitutil.BitArray {
	const wordSize = 4
	totalWords := totalBits / wordSize
	dataWords := payload.Size() / wordSize

	words := codewordsFromBits(payload, wordSize, dataWords)
	words = append(words, make([]int, totalWords-dataWords)...)

	rs := reedsolomon.NewEncoder(reedsolomon.AztecParam)
	rs.Encode(words, totalWords-dataWords)

	out := bitutil.NewBitArray(0)
	for _, w := range words {
		out.AppendMSB(uint64(w), wordSize)
	}
	return out
}
