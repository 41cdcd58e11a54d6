// Package aztec encodes arbitrary text or binary payloads into Aztec Code
// two-dimensional barcode symbols conforming to ISO/IEC 24778.
package aztec

import "github.com/halfdan/aztec/encoder"

// Encode encodes payload into the smallest Aztec symbol that fits, using
// opts (or DefaultOptions's values if opts is nil).
func Encode(payload []byte, opts *Options) (*Symbol, error) {
	sym, _, err := EncodeWithDetails(payload, opts)
	return sym, err
}

// EncodeWithDetails behaves like Encode but also returns the Configuration
// the sizer chose, for callers that want to report layer count, word
// size, or codeword split alongside the symbol.
func EncodeWithDetails(payload []byte, opts *Options) (*Symbol, *Configuration, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	result, err := encoder.Encode(payload, o.ErrorCorrectionPercentage, o.PreferCompact, o.userLayers)
	if err != nil {
		return nil, nil, wrapPipelineError(err)
	}

	sym := exportSymbol(result.Matrix, result.Size, o.ExportMSBFirst)
	return sym, result.Config, nil
}
