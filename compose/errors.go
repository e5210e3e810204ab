package compose

import "errors"

// ErrHeaderIndexOutOfRange is returned by Compose when the caller's
// designated header index does not address one of the supplied headers.
var ErrHeaderIndexOutOfRange = errors.New("compose: designated header index out of range")
