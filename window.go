package huf28

import (
	"fmt"
)

func window(buf []byte, offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset > len(buf) || length > len(buf)-offset {
		return nil, fmt.Errorf("%w: offset %d, length %d, buffer %d", ErrBadRange, offset, length, len(buf))
	}
	return buf[offset : offset+length : offset+length], nil
}
