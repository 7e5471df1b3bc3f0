// Package savefile reads and writes the container around huf28 payloads:
// a save file starts with an opaque header, followed (at some multiple of 64
// bytes) by either a compressed "PMOC" section or an uncompressed "EDNI"
// section.
//
// A compressed section is a 16-byte header followed by a huf28 buffer:
//
//     offset 0     "PMOC"
//     offset 4     version, u32 LE, always 2
//     offset 8     decompressed length, u32 LE
//     offset 12    CRC-32 of the opaque header plus the decompressed data
//     offset 16    huf28 buffer
//
// An uncompressed section starts with its own "EDNI" magic and is kept
// intact; compressing it wraps the whole section.
//
package savefile

import (
	"encoding/binary"
	"fmt"
)

// Kind identifies the section type found by Scan.
type Kind uint32

const (
	// Compressed is the u32 LE magic of a compressed section, "PMOC".
	Compressed Kind = 0x434f4d50

	// Decompressed is the u32 LE magic of an uncompressed section, "EDNI".
	Decompressed Kind = 0x494e4445
)

// String returns the magic as it appears in the file.
func (k Kind) String() string {
	switch k {
	case Compressed:
		return "PMOC"
	case Decompressed:
		return "EDNI"
	default:
		return fmt.Sprintf("Kind(0x%08x)", uint32(k))
	}
}

var _ fmt.Stringer = Kind(0)

const (
	scanStride = 64
	scanLimit  = 1024

	compressedHeaderLen = 16
	compressedVersion   = 2
)

// Section locates the start of the save data.
type Section struct {
	Kind   Kind
	Offset int
}

// Scan finds the first section magic at a 64-byte stride, looking no further
// than offset 1024.
func Scan(data []byte) (Section, error) {
	for offset := 0; offset <= scanLimit && offset+3 < len(data); offset += scanStride {
		switch kind := Kind(binary.LittleEndian.Uint32(data[offset:])); kind {
		case Compressed, Decompressed:
			return Section{Kind: kind, Offset: offset}, nil
		}
	}
	return Section{}, ErrNotSaveFile
}

// PayloadOffset returns the offset of the huf28 buffer within a compressed
// section.
func (s Section) PayloadOffset() int {
	return s.Offset + compressedHeaderLen
}
