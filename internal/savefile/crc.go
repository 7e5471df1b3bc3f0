package savefile

import (
	"hash/crc32"
)

// Checksum computes the CRC-32 (IEEE) of the concatenation of parts.
func Checksum(parts ...[]byte) uint32 {
	var crc uint32
	for _, part := range parts {
		crc = crc32.Update(crc, crc32.IEEETable, part)
	}
	return crc
}
