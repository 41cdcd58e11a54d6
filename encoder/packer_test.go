package encoder

import (
	"testing"

	"github.com/halfdan/aztec/bitutil"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestStuffBitsNoForbiddenCodewords(t *testing.T) {
	for _, wordSize := range []int{6, 8, 10, 12} {
		wordSize := wordSize
		t.Run(intToLabel(wordSize), func(t *testing.T) {
			allZero := bitutil.NewBitArray(wordSize) // all-zero input
			out := stuffBits(allZero, wordSize)
			assertNoForbiddenCodewords(t, out, wordSize)

			allOne := bitutil.NewBitArray(wordSize)
			allOne.SetRange(0, wordSize)
			out = stuffBits(allOne, wordSize)
			assertNoForbiddenCodewords(t, out, wordSize)
		})
	}
}

func assertNoForbiddenCodewords(t *testing.T, stuffed *bitutil.BitArray, wordSize int) {
	t.Helper()
	n := stuffed.Size() / wordSize
	mask := (1 << uint(wordSize)) - 1
	for i := 0; i < n; i++ {
		w := int(stuffed.ReadMSB(i*wordSize, wordSize))
		if w == 0 || w == mask {
			t.Errorf("codeword %d is forbidden (value %d)", i, w)
		}
	}
}

func intToLabel(n int) string {
	switch n {
	case 6:
		return "w6"
	case 8:
		return "w8"
	case 10:
		return "w10"
	case 12:
		return "w12"
	default:
		return "w?"
	}
}

// TestStuffBitsRapid checks that for any random bit stream and word size,
// the stuffed output never contains a forbidden codeword.
func TestStuffBitsRapid(t *testing.T) {
	wordSizes := []int{6, 8, 10, 12}
	rapid.Check(t, func(t *rapid.T) {
		wordSize := wordSizes[rapid.IntRange(0, len(wordSizes)-1).Draw(t, "wordSizeIdx")]
		n := rapid.IntRange(0, 80).Draw(t, "n")

		in := bitutil.NewBitArray(0)
		for i := 0; i < n; i++ {
			in.AppendBit(rapid.Bool().Draw(t, "bit"))
		}

		out := stuffBits(in, wordSize)
		mask := (1 << uint(wordSize)) - 1
		count := out.Size() / wordSize
		for i := 0; i < count; i++ {
			w := int(out.ReadMSB(i*wordSize, wordSize))
			assert.NotEqual(t, 0, w, "stuffed codeword must not be all-zero")
			assert.NotEqual(t, mask, w, "stuffed codeword must not be all-one")
		}
	})
}

func TestPadWithFillerUsesFillerCodeword(t *testing.T) {
	in := bitutil.NewBitArray(0)
	in.AppendMSB(5, 6) // one codeword, value 5

	out := padWithFiller(in, 6, 3)
	if got := out.Size() / 6; got != 3 {
		t.Fatalf("padded word count = %d, want 3", got)
	}
	if got := out.ReadMSB(0, 6); got != 5 {
		t.Errorf("first codeword = %d, want 5", got)
	}
	for i := 1; i < 3; i++ {
		if got := out.ReadMSB(i*6, 6); got != fillerCodeword {
			t.Errorf("filler codeword %d = %d, want %d", i, got, fillerCodeword)
		}
	}
}

func TestPadWithFillerNoOpWhenAlreadyFull(t *testing.T) {
	in := bitutil.NewBitArray(0)
	in.AppendMSB(5, 6)
	in.AppendMSB(9, 6)
	out := padWithFiller(in, 6, 2)
	if out.Size() != 12 {
		t.Errorf("size = %d, want 12 (unchanged)", out.Size())
	}
}
