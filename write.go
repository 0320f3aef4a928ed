// Container serialization.
package pngmeta

import "encoding/binary"

// Encode serializes the chunk list back into a complete PNG byte sequence,
// recomputing every chunk's CRC. The output is exactly
// 8 + sum(12 + len(payload)) bytes; parsing it yields an equal list.
func (l List) Encode() []byte {
	size := len(signature)
	for _, c := range l {
		size += 12 + len(c.Data)
	}

	out := make([]byte, 0, size)
	out = append(out, signature...)

	var word [4]byte
	for _, c := range l {
		binary.BigEndian.PutUint32(word[:], uint32(len(c.Data)))
		out = append(out, word[:]...)
		out = append(out, c.Type...)
		out = append(out, c.Data...)
		binary.BigEndian.PutUint32(word[:], checksum(c.Type, c.Data))
		out = append(out, word[:]...)
	}
	return out
}
