package enumerator

import "errors"

// ErrMissingValueList indicates an UNDER_TEST or ENVIRONMENT option declared
// in the graph has no corresponding entry in the ValueLists passed to
// Stream.
var ErrMissingValueList = errors.New("enumerator: missing value list for option")
