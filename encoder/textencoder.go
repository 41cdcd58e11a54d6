package encoder

import "github.com/halfdan/aztec/bitutil"

// The six Aztec text modes. Byte is not a character mode in the charMap
// sense (it has no latch code table entry) and is reached only via a
// binary-shift run.
const (
	modeUpper = iota
	modeLower
	modeMixed
	modeDigit
	modePunct
	modeByte
)

// modeBits gives the code width for each character mode (Byte mode has no
// fixed code width of its own; codes are always read at the *current*
// mode's width during a transition).
var modeBits = [5]int{5, 5, 5, 4, 5}

// charMap[b][mode] is the code for byte b in the given mode, or -1 if b
// cannot be encoded in that mode.
var charMap [256][5]int

func init() {
	for i := range charMap {
		for j := range charMap[i] {
			charMap[i][j] = -1
		}
	}

	// Upper: 0=FLG(n), 1=SP, 2..27=A..Z, 28=LL, 29=ML, 30=DL, 31=BS.
	charMap[' '][modeUpper] = 1
	for c := byte('A'); c <= 'Z'; c++ {
		charMap[c][modeUpper] = int(c-'A') + 2
	}

	// Lower: 0=FLG(n), 1=SP, 2..27=a..z, 28=AS, 29=ML, 30=DL, 31=BS.
	charMap[' '][modeLower] = 1
	for c := byte('a'); c <= 'z'; c++ {
		charMap[c][modeLower] = int(c-'a') + 2
	}

	// Mixed: SP=1, 0x01..0x0D->2..14, ESC=15, 0x1C..0x1F->16..19, '@'=20,
	// '\'=21, '^'=22, '_'=23, '`'=24, '|'=25, '~'=26, DEL=27. Code 0 is the
	// FLG(n) function in every non-digit mode, not a literal NUL - NUL
	// (and any other byte no character mode covers) goes through a
	// Byte-mode run instead.
	charMap[' '][modeMixed] = 1
	for c := byte(1); c <= 13; c++ {
		charMap[c][modeMixed] = int(c) + 1
	}
	charMap[0x1B][modeMixed] = 15
	charMap[0x1C][modeMixed] = 16
	charMap[0x1D][modeMixed] = 17
	charMap[0x1E][modeMixed] = 18
	charMap[0x1F][modeMixed] = 19
	charMap['@'][modeMixed] = 20
	charMap['\\'][modeMixed] = 21
	charMap['^'][modeMixed] = 22
	charMap['_'][modeMixed] = 23
	charMap['`'][modeMixed] = 24
	charMap['|'][modeMixed] = 25
	charMap['~'][modeMixed] = 26
	charMap[0x7F][modeMixed] = 27

	// Digit: 0=FLG(n), 1=SP, 2..11='0'..'9', 12=',', 13='.', 14=UL, 15=AS.
	charMap[' '][modeDigit] = 1
	for c := byte('0'); c <= '9'; c++ {
		charMap[c][modeDigit] = int(c-'0') + 2
	}
	charMap[','][modeDigit] = 12
	charMap['.'][modeDigit] = 13

	// Punct: 0=FLG(n), 1=CR, 2..5=two-char shortcuts (handled separately),
	// 6..29=single punctuation, 30='}', 31=UL.
	charMap['\r'][modePunct] = 1
	singlePunct := []byte{
		'!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',',
		'-', '.', '/', ':', ';', '<', '=', '>', '?', '[', ']', '{',
	}
	for idx, c := range singlePunct {
		charMap[c][modePunct] = idx + 6
	}
	charMap['}'][modePunct] = 30
}

// punctPairs maps the four two-character Punct shortcuts to their codes.
var punctPairs = map[[2]byte]int{
	{'\r', '\n'}: 2,
	{'.', ' '}:   3,
	{',', ' '}:   4,
	{':', ' '}:   5,
}

// latchCost is the bit-cost table for mode transitions: latchCost[from][to] is
// the cost in bits of latching directly or via an intermediate mode. The
// diagonal is zero. Rows/columns are indexed by modeUpper..modePunct.
var latchCost = [5][5]int{
	/* U */ {0, 5, 5, 5, 10},
	/* L */ {9, 0, 5, 5, 10},
	/* D */ {4, 9, 0, 9, 14},
	/* M */ {5, 5, 10, 0, 5},
	/* P */ {5, 10, 10, 10, 0},
}

// shiftWidth returns the bit width of shifting from curMode to target, or 0
// if no shift is defined for that pair. Aztec defines shift-to-Upper from
// Lower (code 28) and Digit (code 15).
//
// The table also lists shift-to-Punct (code 0) from every character mode,
// but code 0 is reserved for FLG(n) in this decoder in every non-digit
// mode (see internal/roundtrip/decoder.go), matching the teacher's own
// decoder. A genuine P/S shift would collide with that interception and
// misdecode, so Punct is reached by latch only; see DESIGN.md.
func shiftWidth(curMode, target int) int {
	if target != modeUpper {
		return 0
	}
	switch curMode {
	case modeLower, modeDigit:
		return modeBits[curMode]
	}
	return 0
}

func shiftCode(curMode, target int) int {
	if target == modeUpper {
		switch curMode {
		case modeLower:
			return 28
		case modeDigit:
			return 15
		}
	}
	panic("encoder: no shift code for this mode pair")
}

// latchSequence returns the ordered (mode, code) pairs to emit to move from
// one mode latch state to another, following the direct and multi-step
// latch paths Aztec defines.
func latchSequence(from, to int) []modeSwitch {
	if from == to {
		return nil
	}
	switch from {
	case modeUpper:
		switch to {
		case modeLower:
			return []modeSwitch{{modeUpper, 28}}
		case modeMixed:
			return []modeSwitch{{modeUpper, 29}}
		case modeDigit:
			return []modeSwitch{{modeUpper, 30}}
		case modePunct:
			return []modeSwitch{{modeUpper, 29}, {modeMixed, 30}}
		}
	case modeLower:
		switch to {
		case modeUpper:
			return []modeSwitch{{modeLower, 30}, {modeDigit, 14}}
		case modeMixed:
			return []modeSwitch{{modeLower, 29}}
		case modeDigit:
			return []modeSwitch{{modeLower, 30}}
		case modePunct:
			return []modeSwitch{{modeLower, 29}, {modeMixed, 30}}
		}
	case modeMixed:
		switch to {
		case modeUpper:
			return []modeSwitch{{modeMixed, 29}}
		case modeLower:
			return []modeSwitch{{modeMixed, 28}}
		case modeDigit:
			return []modeSwitch{{modeMixed, 29}, {modeUpper, 30}}
		case modePunct:
			return []modeSwitch{{modeMixed, 30}}
		}
	case modeDigit:
		switch to {
		case modeUpper:
			return []modeSwitch{{modeDigit, 14}}
		case modeLower:
			return []modeSwitch{{modeDigit, 14}, {modeUpper, 28}}
		case modeMixed:
			return []modeSwitch{{modeDigit, 14}, {modeUpper, 29}}
		case modePunct:
			return []modeSwitch{{modeDigit, 14}, {modeUpper, 29}, {modeMixed, 30}}
		}
	case modePunct:
		switch to {
		case modeUpper:
			return []modeSwitch{{modePunct, 31}}
		case modeLower:
			return []modeSwitch{{modePunct, 31}, {modeUpper, 28}}
		case modeMixed:
			return []modeSwitch{{modePunct, 31}, {modeUpper, 29}}
		case modeDigit:
			return []modeSwitch{{modePunct, 31}, {modeUpper, 30}}
		}
	}
	return nil
}

// modeSwitch is one step of a latch sequence: emit code, read at
// intermediateMode's bit width.
type modeSwitch struct {
	intermediateMode int
	code             int
}

// highLevelEncode converts a byte stream into a bit stream using the six
// Aztec text modes, choosing between shift and latch by a bit-cost
// comparison. It never introduces stuff bits.
func highLevelEncode(data []byte) (*bitutil.BitArray, error) {
	result := bitutil.NewBitArray(0)
	if len(data) == 0 {
		return result, nil
	}

	curMode := modeUpper
	i := 0
	for i < len(data) {
		// Rule 1: two-character Punct shortcuts.
		if i+1 < len(data) {
			if code, ok := punctPairs[[2]byte{data[i], data[i+1]}]; ok {
				emitLatchOrShiftInto(result, &curMode, modePunct, data, i)
				result.AppendMSB(uint64(code), modeBits[modePunct])
				i += 2
				continue
			}
		}

		b := data[i]

		// Rule 2: already encodable at the current mode.
		if charMap[b][curMode] != -1 {
			result.AppendMSB(uint64(charMap[b][curMode]), modeBits[curMode])
			i++
			continue
		}

		// Rule 3: pick a target mode by priority Digit, Upper, Lower,
		// Punct, Mixed.
		target := bestModeFor(b)
		if target == -1 {
			i = emitBinaryShiftRun(result, data, i, &curMode)
			continue
		}

		emitLatchOrShiftInto(result, &curMode, target, data, i)
		// The character is always read at target's width and table: a
		// latch has already moved curMode there, and a shift leaves
		// curMode unchanged but still reads the shifted-to codeword at
		// target (that's the point of shifting into it).
		result.AppendMSB(uint64(charMap[b][target]), modeBits[target])
		i++
	}

	return result, nil
}

// bestModeFor returns the first mode (priority Digit, Upper, Lower, Punct,
// Mixed) that can encode b, or -1 if none can (a binary-shift run is
// required).
func bestModeFor(b byte) int {
	for _, m := range [...]int{modeDigit, modeUpper, modeLower, modePunct, modeMixed} {
		if charMap[b][m] != -1 {
			return m
		}
	}
	return -1
}

// emitLatchOrShiftInto applies rule 4: decide whether reaching target from
// *curMode should be a one-codeword shift or a permanent latch, emit the
// necessary transition codes, and update *curMode (a shift leaves curMode
// unchanged; a latch updates it).
func emitLatchOrShiftInto(result *bitutil.BitArray, curMode *int, target int, data []byte, pos int) {
	if *curMode == target {
		return
	}

	sWidth := shiftWidth(*curMode, target)

	if sWidth == 0 {
		// No shift available for this pair: always latch.
		for _, sw := range latchSequence(*curMode, target) {
			result.AppendMSB(uint64(sw.code), modeBits[sw.intermediateMode])
		}
		*curMode = target
		return
	}

	// If >= 2 upcoming characters all fit target, latch.
	if runLength(data, pos, target) >= 2 {
		for _, sw := range latchSequence(*curMode, target) {
			result.AppendMSB(uint64(sw.code), modeBits[sw.intermediateMode])
		}
		*curMode = target
		return
	}

	nextMode := modeUpper // mode the character after this one would need, approximated below
	if pos+1 < len(data) {
		if m := bestModeFor(data[pos+1]); m != -1 {
			nextMode = m
		}
	}

	shiftTotal := sWidth + modeBits[target] + latchCost[*curMode][nextMode]
	latchTotal := latchCost[*curMode][target] + modeBits[target] + latchCost[target][nextMode]

	if shiftTotal < latchTotal {
		result.AppendMSB(uint64(shiftCode(*curMode, target)), sWidth)
		// curMode unchanged: a shift applies for one codeword only.
		return
	}

	for _, sw := range latchSequence(*curMode, target) {
		result.AppendMSB(uint64(sw.code), modeBits[sw.intermediateMode])
	}
	*curMode = target
}

// runLength counts how many consecutive characters starting at pos can be
// encoded in mode m, capped at 2 (the cost comparison only needs to
// distinguish "0 or 1" from ">= 2").
func runLength(data []byte, pos, m int) int {
	n := 0
	for n < 2 && pos+n < len(data) && charMap[data[pos+n]][m] != -1 {
		n++
	}
	return n
}

// emitBinaryShiftRun encodes the maximal run of bytes starting at pos that
// no character mode can represent, as a single Byte-mode shift. Returns the
// index of the first byte after the run. Byte-mode is reachable from
// Upper, Lower, and Mixed (code 31); Digit and Punct must first latch to
// Upper (Byte-mode re-entry always lands back in Upper).
func emitBinaryShiftRun(result *bitutil.BitArray, data []byte, pos int, curMode *int) int {
	if *curMode == modeDigit {
		result.AppendMSB(14, modeBits[modeDigit])
		*curMode = modeUpper
	} else if *curMode == modePunct {
		result.AppendMSB(31, modeBits[modePunct])
		*curMode = modeUpper
	}

	start := pos
	for pos < len(data) && bestModeFor(data[pos]) == -1 {
		pos++
	}
	if pos == start {
		pos = start + 1
	}
	count := pos - start
	if count > 2078 {
		count = 2078
		pos = start + count
	}

	result.AppendMSB(31, modeBits[*curMode])
	if count <= 31 {
		result.AppendMSB(uint64(count), 5)
	} else {
		result.AppendMSB(0, 5)
		result.AppendMSB(uint64(count-31), 11)
	}
	for j := start; j < start+count; j++ {
		result.AppendMSB(uint64(data[j]), 8)
	}

	*curMode = modeUpper // Byte-mode always returns to Upper.
	return pos
}
