// Container parsing.
//
// A PNG file is the 8-byte signature followed by chunks of the form
// length(4, big-endian) | type(4) | payload(length) | crc(4, big-endian),
// where the CRC covers type and payload. Parsing is strict: every CRC is
// verified and the stream must end with an IEND chunk. Bytes after IEND are
// ignored — the terminator defines the end of the image.
package pngmeta

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// signature is the fixed 8-byte prefix of every PNG file.
var signature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// Parse decodes a complete PNG byte sequence into its ordered chunk list,
// IEND included. Payloads are copied, so the returned list does not alias
// data. A corrupt or truncated file fails without partial results.
func Parse(data []byte) (List, error) {
	if len(data) < len(signature) || !bytes.Equal(data[:len(signature)], signature) {
		return nil, ErrInvalidHeader
	}

	var list List
	off := len(signature)
	for {
		if off == len(data) {
			return nil, ErrMissingTerminator
		}
		if off+8 > len(data) {
			return nil, fmt.Errorf("%w: chunk header at offset %d", ErrTruncated, off)
		}

		length := int(binary.BigEndian.Uint32(data[off : off+4]))
		typ := string(data[off+4 : off+8])
		if off+12+length > len(data) {
			return nil, fmt.Errorf("%w: %s payload at offset %d", ErrTruncated, typ, off)
		}

		payload := data[off+8 : off+8+length]
		stored := binary.BigEndian.Uint32(data[off+8+length : off+12+length])
		if stored != checksum(typ, payload) {
			return nil, fmt.Errorf("%w: %s at offset %d", ErrChecksum, typ, off)
		}

		list = append(list, Chunk{Type: typ, Data: append([]byte(nil), payload...)})
		if typ == TypeEnd {
			return list, nil
		}
		off += 12 + length
	}
}
