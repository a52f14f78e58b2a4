package main

import "errors"

// Sentinel errors for command operations
var (
	ErrSyntax          = errors.New("input has syntax errors")
	ErrStdinReadTwice  = errors.New("standard input can be read only once")
	ErrInvalidJSONPath = errors.New("invalid JSONPath")
)
