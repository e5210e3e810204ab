package mmrmath

import "errors"

// ErrInvalidIndex is returned by ElementIndexToLeafIndex when the supplied
// element index addresses an interior MMR node rather than a leaf, or is
// less than 1. PeakInfo also returns it when the element index does not
// address any element within an MMR of the given size.
var ErrInvalidIndex = errors.New("mmrmath: element index does not address a leaf")
