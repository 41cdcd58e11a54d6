package encoder

import (
	"testing"

	"github.com/halfdan/aztec/bitutil"
)

func TestEncodeEmptyPayloadRejected(t *testing.T) {
	_, err := Encode(nil, 23, false, 0)
	if err == nil {
		t.Fatal("expected an error for an empty payload")
	}
	if _, ok := err.(*InvalidConfigurationError); !ok {
		t.Errorf("error type = %T, want *InvalidConfigurationError", err)
	}
}

func TestEncodeSingleCharacterProducesCompactL1(t *testing.T) {
	result, err := Encode([]byte("A"), 23, false, 0)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if !result.Config.Compact || result.Config.Layers != 1 {
		t.Errorf("config = compact=%v layers=%d, want compact L1", result.Config.Compact, result.Config.Layers)
	}
	if result.Size != 15 {
		t.Errorf("size = %d, want 15", result.Size)
	}
	if result.Matrix == nil {
		t.Fatal("matrix is nil")
	}
}

func TestEncodeLargerPayloadStillProducesAConsistentConfig(t *testing.T) {
	result, err := Encode([]byte("HELLO WORLD, THIS IS A LONGER MESSAGE"), 23, false, 0)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	cfg := result.Config
	if cfg.DataCodewords+cfg.ParityCodewords != cfg.TotalCodewords {
		t.Errorf("dataCodewords(%d) + parityCodewords(%d) != totalCodewords(%d)", cfg.DataCodewords, cfg.ParityCodewords, cfg.TotalCodewords)
	}
	if result.Size != matrixSize(cfg) {
		t.Errorf("result.Size = %d, want matrixSize(cfg) = %d", result.Size, matrixSize(cfg))
	}
}

func TestProtectDataCodewordsPrependsAlignmentPad(t *testing.T) {
	cfg := &Configuration{Compact: true, Layers: 1, WordSize: 6, DataCodewords: 2, ParityCodewords: 3, TotalCodewords: 5}
	padded := bitutil.NewBitArray(0)
	padded.AppendMSB(5, cfg.WordSize)
	padded.AppendMSB(9, cfg.WordSize)

	out := protectDataCodewords(padded, cfg)

	totalBits := totalBitsInLayer(cfg.Layers, cfg.Compact)
	wantPad := totalBits % cfg.WordSize
	wantSize := wantPad + cfg.TotalCodewords*cfg.WordSize
	if out.Size() != wantSize {
		t.Errorf("size = %d, want %d (pad=%d + %d codewords * %d bits)", out.Size(), wantSize, wantPad, cfg.TotalCodewords, cfg.WordSize)
	}
	for i := 0; i < wantPad; i++ {
		if out.Get(i) {
			t.Errorf("alignment pad bit %d must be zero", i)
		}
	}
	if got := out.ReadMSB(wantPad, cfg.WordSize); got != 5 {
		t.Errorf("first data codeword = %d, want 5", got)
	}
	if got := out.ReadMSB(wantPad+cfg.WordSize, cfg.WordSize); got != 9 {
		t.Errorf("second data codeword = %d, want 9", got)
	}
}
