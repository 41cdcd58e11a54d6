package encoder

import "github.com/halfdan/aztec/bitutil"

// fillerCodeword is the canonical padding codeword: neither all-zero nor
// all-one, produced by the stuff-bit rule applied to an all-zero input.
const fillerCodeword = 1

// stuffBits regroups a bit stream into fixed wordSize-bit codewords,
// inserting a stuff bit wherever a literal word would otherwise be
// all-zero or all-one. Bits past the end of the stream read as 1, matching
// the standard's padding convention (never as 0: the last partial word
// must not look like a legal but accidental all-zero codeword).
func stuffBits(bits *bitutil.BitArray, wordSize int) *bitutil.BitArray {
	out := bitutil.NewBitArray(0)
	n := bits.Size()
	topMask := (1 << uint(wordSize)) - 2 // every bit except the LSB

	for i := 0; i < n; {
		word := 0
		for j := 0; j < wordSize; j++ {
			if i+j >= n || bits.Get(i+j) {
				word |= 1 << uint(wordSize-1-j)
			}
		}
		switch {
		case word&topMask == 0:
			// Top bits all zero: stuff a 1 into the LSB and only consume
			// wordSize-1 bits of input, since the LSB we just emitted
			// wasn't actually there.
			out.AppendMSB(uint64(word|1), wordSize)
			i += wordSize - 1
		case word&topMask == topMask:
			out.AppendMSB(uint64(word&topMask), wordSize)
			i += wordSize - 1
		default:
			out.AppendMSB(uint64(word), wordSize)
			i += wordSize
		}
	}
	return out
}

// padWithFiller appends filler codewords until the stream holds exactly
// dataCodewords words of wordSize bits. The stuffed stream is never
// shortened or truncated here: ChooseSymbol only accepts specs the stuffed
// stream already fits within.
func padWithFiller(stuffed *bitutil.BitArray, wordSize, dataCodewords int) *bitutil.BitArray {
	have := stuffed.Size() / wordSize
	if have >= dataCodewords {
		return stuffed
	}
	out := stuffed.Clone()
	for i := have; i < dataCodewords; i++ {
		out.AppendMSB(fillerCodeword, wordSize)
	}
	return out
}

// codewordsFromBits slices a bit stream into wordSize-bit integers,
// MSB-first, for handoff to the Reed-Solomon encoder.
func codewordsFromBits(bits *bitutil.BitArray, wordSize, count int) []int {
	words := make([]int, count)
	for i := 0; i < count; i++ {
		words[i] = int(bits.ReadMSB(i*wordSize, wordSize))
	}
	return words
}
