package huf28

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// FormatTag is the first byte of every buffer produced by Encode.
const FormatTag = 0x28

// HeaderLen is the size of the tag-plus-length prefix.
const HeaderLen = 4

// groupLen is the size of one bitstream word.
const groupLen = 4

// encode is the body of Codec.Encode.
func encode(src []byte) ([]byte, error) {
	freqs, err := CountFrequencies(src)
	if err != nil {
		return nil, err
	}

	stems := buildStems(&freqs)

	p, err := placeStems(stems)
	if err != nil {
		return nil, err
	}

	codes, err := buildCodes(stems)
	if err != nil {
		return nil, err
	}

	var payloadBits uint64
	for symbol, freq := range freqs {
		payloadBits += uint64(freq) * uint64(codes[symbol].Size)
	}

	var buf bytes.Buffer
	buf.Grow(HeaderLen + len(p.table) + int(payloadBits/8) + 2*groupLen)

	n := len(src)
	buf.Write([]byte{FormatTag, byte(n), byte(n >> 8), byte(n >> 16)})
	buf.Write(p.table)

	if err := packBits(&buf, src, codes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// packBits appends the bitstream for src to dst.
//
// The stream is conceptually a sequence of 32-bit words that are filled from
// the most significant bit down and then stored little-endian.  We produce it
// by writing the codes MSB-first through a bit writer, padding to a whole
// word, and byte-swapping each word.  At least one word is always written.
//
func packBits(dst *bytes.Buffer, src []byte, codes *codeTable) error {
	start := dst.Len()

	w := bitio.NewWriter(dst)
	for _, ch := range src {
		hc := codes[ch]
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return fmt.Errorf("failed to write code %s for byte %#02x: %w", hc, ch, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to flush bitstream: %w", err)
	}

	written := dst.Len() - start
	padded := roundUpToGroup(written)
	if padded == 0 {
		padded = groupLen
	}
	dst.Write(make([]byte, padded-written))

	swapGroups(dst.Bytes()[start:])
	return nil
}

func roundUpToGroup(n int) int {
	return (n + groupLen - 1) &^ (groupLen - 1)
}

// swapGroups reverses the byte order of every 4-byte group in buf.  It is its
// own inverse.  len(buf) must be a multiple of groupLen.
func swapGroups(buf []byte) {
	for i := 0; i+groupLen <= len(buf); i += groupLen {
		buf[i], buf[i+1], buf[i+2], buf[i+3] = buf[i+3], buf[i+2], buf[i+1], buf[i]
	}
}
