package bundlecodec

import "errors"

// ErrLexical indicates the input string does not match the KS001-style
// grammar (an unexpected token was encountered at a given parser state).
var ErrLexical = errors.New("bundlecodec: lexical error")

// ErrEmptyUnnamedDict indicates an operation would leave an unnamed
// dictionary with zero key/value pairs, which the grammar forbids (an
// unnamed dictionary's emptiness is indistinguishable from the pipe that
// closes it).
var ErrEmptyUnnamedDict = errors.New("bundlecodec: unnamed dictionaries cannot be empty")

// ErrDictNotFound indicates DictAt or DictNamed was asked for a place (index or name) that
// does not exist in the Document.
var ErrDictNotFound = errors.New("bundlecodec: dictionary not found")

// ErrDuplicateAlias indicates an alias collides with one already registered
// for a different name.
var ErrDuplicateAlias = errors.New("bundlecodec: alias already registered")
