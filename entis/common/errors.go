package common

import "errors"

// Common errors
var (
	ErrCorruptData         = errors.New("corrupt ERI data")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrUnsupportedVersion  = errors.New("unsupported ERI version")
	ErrNotSupported        = errors.New("not supported")
	ErrUnexpectedEOF       = errors.New("unexpected end of stream")
)
