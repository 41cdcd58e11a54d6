package aztec

import (
	"errors"
	"fmt"

	"github.com/halfdan/aztec/encoder"
)

// PayloadTooLargeError reports that no symbol spec had capacity for the
// payload. BitCount is the high-level-encoded bit count that didn't fit
// any spec.
type PayloadTooLargeError struct {
	BitCount int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("aztec: payload too large: %d bits fits no symbol spec", e.BitCount)
}

// InvalidConfigurationError reports a caller-supplied option the encoder
// cannot honor, such as an out-of-range user-specified layer count.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("aztec: invalid configuration: %s", e.Reason)
}

// wrapPipelineError translates an internal encoder package error into the
// public error taxonomy callers can errors.As against, without leaking the
// internal package's error types across the API boundary.
func wrapPipelineError(err error) error {
	var tooLarge *encoder.PayloadTooLargeError
	if errors.As(err, &tooLarge) {
		return &PayloadTooLargeError{BitCount: tooLarge.BitCount}
	}
	var invalid *encoder.InvalidConfigurationError
	if errors.As(err, &invalid) {
		return &InvalidConfigurationError{Reason: invalid.Reason}
	}
	return err
}
