package huf28

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// preambleLen covers the header, the stem count and the bootstrap entry.
const preambleLen = HeaderLen + 2

// Header describes the fixed prefix of an encoded buffer.
type Header struct {
	// Format is the format tag; Decode only accepts FormatTag.
	Format byte

	// Length is the decoded length.
	Length int

	// StemCount is the number of stems in the node table, not counting
	// the sentinel.
	StemCount int
}

// TableLen returns the length of the node table, including the sentinel.
func (h Header) TableLen() int {
	return 2 * (h.StemCount + 1)
}

// PayloadOffset returns the offset of the bitstream within the buffer.
func (h Header) PayloadOffset() int {
	return HeaderLen + h.TableLen()
}

// ParseHeader validates and returns the prefix of an encoded buffer.  The
// buffer must extend past the end of the node table.
func ParseHeader(src []byte) (Header, error) {
	if len(src) < preambleLen {
		return Header{}, fmt.Errorf("%w: got %d bytes", ErrTruncatedHeader, len(src))
	}

	h := Header{
		Format:    src[0],
		Length:    int(src[1]) | int(src[2])<<8 | int(src[3])<<16,
		StemCount: int(src[4]),
	}
	if len(src) <= h.PayloadOffset() {
		return h, fmt.Errorf("%w: got %d bytes, table ends at %d", ErrTruncatedTable, len(src), h.PayloadOffset())
	}
	if h.Format != FormatTag {
		return h, fmt.Errorf("%w: got %#02x", ErrBadFormatTag, h.Format)
	}
	return h, nil
}

// decode is the body of Codec.Decode.
//
// The node table is walked without building a tree.  The current entry names
// the leaf flags of the current stem and the skip to its child; each input
// bit advances the position by skip+1 and fetches child[bit] of the stem
// found there.  Rank 0 holds the sentinel, so restarting from table[1] at
// position 0 lands on the root.
//
func decode(src []byte) ([]byte, Report, error) {
	var report Report

	h, err := ParseHeader(src)
	if err != nil {
		return nil, report, err
	}

	out := make([]byte, 0, h.Length)
	if h.Length == 0 {
		return out, report, nil
	}

	tree := src[HeaderLen:h.PayloadOffset()]
	bound := int(tree[0])
	bootstrap := tree[1]

	payload := src[h.PayloadOffset():]
	words := make([]byte, roundUpToGroup(len(payload)))
	copy(words, payload)
	swapGroups(words)

	r := bitio.NewReader(bytes.NewReader(words))
	entry := bootstrap
	pos := 0
	var bitsRead int

	for {
		bit, err := r.ReadBool()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("failed to read bitstream: %w", err)
		}
		bitsRead++

		pos += int(entry&0x3f) + 1
		if pos > bound {
			return nil, report, fmt.Errorf("%w: position %d, stem count %d, output byte %d", ErrPositionOutOfTree, pos, bound, len(out))
		}

		var isLeaf bool
		if bit {
			isLeaf = entry&0x40 != 0
			entry = tree[2*pos+1]
		} else {
			isLeaf = entry&0x80 != 0
			entry = tree[2*pos]
		}

		if !isLeaf {
			continue
		}

		out = append(out, entry)
		if len(out) >= h.Length {
			consumed := roundUpToGroup((bitsRead + 7) / 8)
			report.TrailingBytes = len(payload) - consumed
			if report.TrailingBytes < 0 {
				report.TrailingBytes = 0
			}
			return out, report, nil
		}
		entry = bootstrap
		pos = 0
	}

	report.MissingBytes = h.Length - len(out)
	return out, report, nil
}
