package huf28

import "errors"

var (
	ErrInputTooLarge     = errors.New("input too large to encode: length must fit in 24 bits")
	ErrBadRange          = errors.New("offset and length do not describe a range within the buffer")
	ErrTruncatedHeader   = errors.New("encoded buffer is shorter than its 6-byte preamble")
	ErrTruncatedTable    = errors.New("encoded buffer is shorter than its declared node table")
	ErrBadFormatTag      = errors.New("encoded buffer does not use format 0x28")
	ErrPositionOutOfTree = errors.New("tree traversal went past the last stem")
)

// These indicate a bug in the encoder rather than bad input.
var (
	ErrSkipOverflow           = errors.New("stem reference does not fit in a 6-bit skip")
	ErrPlacementUnsatisfiable = errors.New("stems cannot be placed within the 64-rank skip bound")
	ErrCodeTooLong            = errors.New("code is longer than 64 bits")
)
