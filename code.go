package huf28

import (
	"fmt"
	mathbits "math/bits"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the width of Code.Bits.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low bits is the first bit; this is the order in which the
	// bitstream stores them.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one bit.
func (hc Code) Append(bit uint64) Code {
	return MakeCode(hc.Size+1, hc.Bits<<1|bit&1)
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	if hc.Size == 0 {
		return hc
	}
	return MakeCode(hc.Size, mathbits.Reverse64(hc.Bits)>>(64-hc.Size))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// codeTable maps every Symbol to its Code.  Symbols absent from the tree have
// a zero-length Code.
type codeTable [NumSymbols]Code

// buildCodes walks the merge tree from the root and assigns each leaf the
// path that reaches it: child[0] appends a 0 bit, child[1] appends a 1 bit.
func buildCodes(stems []stem) (*codeTable, error) {
	assert.Assertf(len(stems) >= 2, "buildCodes needs at least 2 stems, got %d", len(stems))

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed child[0]
	//   x=2 → We have already processed both children

	type stackItem struct {
		index int
		code  Code
		x     byte
	}

	var codes codeTable
	stack := make([]stackItem, 0, len(stems))
	stack = append(stack, stackItem{index: len(stems) - 2})

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		if x == 2 {
			stack = stack[:len(stack)-1]
			continue
		}

		if top.code.Size >= maxBitsPerCode {
			return nil, fmt.Errorf("%w: stem %d sits at depth %d", ErrCodeTooLong, top.index, top.code.Size)
		}

		s := stems[top.index]
		i := int(x)
		hc := top.code.Append(uint64(i))
		if s.isLeaf(i) {
			codes[s.child[i]] = hc
		} else {
			// top is invalidated by this append.
			stack = append(stack, stackItem{index: s.child[i], code: hc})
		}
	}

	return &codes, nil
}
