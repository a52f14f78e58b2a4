package flatten

import "errors"

// Sentinel errors - internal defects. A parsed tree that triggers one of these
// cannot be flattened and no partial output is produced.
var (
	ErrUnregisteredNodeKind  = errors.New("node kind is not registered")
	ErrUnclassifiedAttribute = errors.New("attribute value cannot be classified")
	ErrTokenIndexOutOfRange  = errors.New("token index out of range")
)
