// CRC repair for damaged files.
//
// A file whose payloads are intact but whose stored CRCs have rotted (or
// were deliberately zeroed by a stripping tool) fails strict parsing on the
// first mismatch. Repair walks the chunk structure without verifying CRCs
// and rewrites every stored value that disagrees with the recomputed one.
// It cannot recover truncated files or a damaged signature — there is
// nothing trustworthy to recompute from.
package pngmeta

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Repair returns a copy of data with every stored chunk CRC recomputed,
// along with the number of CRCs that changed. The chunk walk still requires
// a valid signature, complete records, and an IEND terminator.
func Repair(data []byte) ([]byte, int, error) {
	if len(data) < len(signature) || !bytes.Equal(data[:len(signature)], signature) {
		return nil, 0, ErrInvalidHeader
	}

	out := append([]byte(nil), data...)
	fixed := 0

	off := len(signature)
	for {
		if off == len(out) {
			return nil, 0, ErrMissingTerminator
		}
		if off+8 > len(out) {
			return nil, 0, fmt.Errorf("%w: chunk header at offset %d", ErrTruncated, off)
		}

		length := int(binary.BigEndian.Uint32(out[off : off+4]))
		typ := string(out[off+4 : off+8])
		if off+12+length > len(out) {
			return nil, 0, fmt.Errorf("%w: %s payload at offset %d", ErrTruncated, typ, off)
		}

		want := checksum(typ, out[off+8:off+8+length])
		stored := binary.BigEndian.Uint32(out[off+8+length : off+12+length])
		if stored != want {
			binary.BigEndian.PutUint32(out[off+8+length:off+12+length], want)
			fixed++
		}

		if typ == TypeEnd {
			return out, fixed, nil
		}
		off += 12 + length
	}
}
