// pHYs codec.
package pngmeta

import (
	"encoding/binary"
	"fmt"
)

// Resolution unit specifiers.
const (
	UnitUnknown = 0 // densities define aspect ratio only
	UnitMeter   = 1 // densities are pixels per metre
)

// Resolution is the decoded form of a pHYs chunk: pixel densities along
// each axis and the unit they are expressed in.
type Resolution struct {
	X    uint32
	Y    uint32
	Unit byte
}

// physSize is the fixed pHYs payload length.
const physSize = 9

// EncodeResolution builds a pHYs chunk.
func EncodeResolution(r Resolution) Chunk {
	data := make([]byte, physSize)
	binary.BigEndian.PutUint32(data[0:4], r.X)
	binary.BigEndian.PutUint32(data[4:8], r.Y)
	data[8] = r.Unit
	return Chunk{Type: TypePhysical, Data: data}
}

// DecodeResolution parses a pHYs payload.
func DecodeResolution(c Chunk) (Resolution, error) {
	if len(c.Data) != physSize {
		return Resolution{}, fmt.Errorf("%w: pHYs payload is %d bytes, want %d", ErrInvalidLength, len(c.Data), physSize)
	}
	return Resolution{
		X:    binary.BigEndian.Uint32(c.Data[0:4]),
		Y:    binary.BigEndian.Uint32(c.Data[4:8]),
		Unit: c.Data[8],
	}, nil
}
