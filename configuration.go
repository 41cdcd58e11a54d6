package aztec

import "github.com/halfdan/aztec/encoder"

// Configuration describes the symbol parameters Encode chose: which spec
// row fit the payload, and how its capacity split between data and parity
// codewords. It is an alias of the encoder package's sizer output type,
// re-exported here since Configuration is part of the public result of
// EncodeWithDetails.
type Configuration = encoder.Configuration
