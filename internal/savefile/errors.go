package savefile

import "errors"

var (
	ErrNotSaveFile         = errors.New("no save section magic found in the first 1024 bytes")
	ErrTruncated           = errors.New("save section is shorter than its header")
	ErrUnknownCompression  = errors.New("compressed section does not use huffman mode 0x28")
	ErrAlreadyCompressed   = errors.New("save file is already compressed")
	ErrAlreadyDecompressed = errors.New("save file is already decompressed")
)
