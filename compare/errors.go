package compare

import "errors"

// ErrInvalidArgument indicates CompareAll was called with fewer than
// two inputs, or Compare was called with a graph lacking the
// combiners it needs and none were supplied via WithCombiners.
var ErrInvalidArgument = errors.New("compare: invalid argument")
