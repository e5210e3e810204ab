package header

import "errors"

// ErrHeaderDecode is returned when a header's bytes cannot be decoded far
// enough to recover state_root: truncation, malformed RLP, or (for the
// field-domain codec) too few field elements.
var ErrHeaderDecode = errors.New("header: cannot recover state root from header encoding")
