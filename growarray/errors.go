package growarray

import "errors"

// ErrSizeExceedsCapacity is reported by Check when the element count has run
// past the end of the backing buffer.
var ErrSizeExceedsCapacity = errors.New("growarray: size exceeds capacity")
