package paginate

import "errors"

// ErrBadGeometry indicates a page geometry whose margins leave no usable
// content rectangle. Callers should use errors.Is() to check for it.
var ErrBadGeometry = errors.New("paginate: unusable page geometry")
