// Package huf28 implements the "mode 0x28" Huffman codec used by compressed
// save-file sections.  It is not DEFLATE and it is not canonical Huffman: the
// tree is shipped as a pointer-free node table whose cross-references are
// 6-bit forward skips, so the encoder has to lay the tree out carefully.
//
// Encoded layout:
//
//     offset 0        format tag, always 0x28
//     offset 1..3     decoded length, 24-bit little-endian
//     offset 4        stem count, not counting the sentinel
//     offset 5        bootstrap entry (root flags<<6 | root skip)
//     offset 6..      remaining node table, 2 bytes per stem
//     after table     bitstream, as little-endian 32-bit words, MSB first
//
// Each node-table entry is either a literal byte (when the referencing stem
// says that child is a leaf) or a reference to another stem, encoded as the
// target's two leaf flags in the high bits and the forward skip, minus one,
// in the low six bits.
//
package huf28
