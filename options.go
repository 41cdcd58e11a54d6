package aztec

// Options controls how Encode chooses and renders a symbol.
type Options struct {
	// ErrorCorrectionPercentage is the requested parity budget as a
	// percentage of data codewords (default 23, effective range 0-95).
	// The sizer always reserves at least 3 parity codewords regardless of
	// this value.
	ErrorCorrectionPercentage int

	// PreferCompact, when both a compact and a full spec fit the payload,
	// prefers the compact one even if a smaller full spec also fits.
	PreferCompact bool

	// ExportMSBFirst selects MSB-first row-byte packing instead of the
	// default LSB-first. It affects only the exported byte layout, never
	// the logical module grid.
	ExportMSBFirst bool

	// userLayers pins the layer count instead of letting the sizer search
	// (0 means auto). Positive values request a full symbol with that
	// many layers; negative values request a compact symbol with
	// abs(userLayers) layers. Unexported: only the CLI's --user-layers
	// flag reaches for it, through WithUserLayers, since it isn't part of
	// the stable public Options surface the External Interfaces describe.
	userLayers int
}

// DefaultOptions returns the encoder's default configuration: 23% error
// correction, no compact preference, LSB-first export.
func DefaultOptions() Options {
	return Options{ErrorCorrectionPercentage: 23}
}

// WithUserLayers returns a copy of o with the layer count pinned. Positive
// n requests a full symbol with n layers; negative n requests a compact
// symbol with -n layers.
func (o Options) WithUserLayers(n int) Options {
	o.userLayers = n
	return o
}
