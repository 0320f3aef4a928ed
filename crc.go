// Chunk integrity checksums.
//
// Every chunk carries a CRC-32 over its type tag and payload, using the
// ISO-3309 polynomial the format mandates — the IEEE table in hash/crc32.
package pngmeta

import "hash/crc32"

// checksum computes the CRC-32 stored after a chunk's payload. The tag and
// payload are fed through crc32.Update separately to avoid concatenating.
func checksum(typ string, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, []byte(typ))
	return crc32.Update(crc, crc32.IEEETable, data)
}
