// Chunk model and type classification.
//
// A chunk is a four-letter ASCII tag plus an opaque payload. The tag is kept
// verbatim so chunk types this package does not understand (iCCP, gAMA,
// vendor extensions) survive a parse/encode round trip untouched. Kind maps
// the tag onto the closed set of types the package handles specially.
package pngmeta

import "bytes"

// Recognised chunk type tags.
const (
	TypeHeader         = "IHDR"
	TypePalette        = "PLTE"
	TypeImage          = "IDAT"
	TypeEnd            = "IEND"
	TypeText           = "tEXt"
	TypeCompressedText = "zTXt"
	TypeIntlText       = "iTXt"
	TypePhysical       = "pHYs"
)

// Kind identifies the chunk types the package handles specially. Everything
// else is KindOther and passes through unmodified.
type Kind int

const (
	KindOther Kind = iota
	KindHeader
	KindPalette
	KindImage
	KindEnd
	KindText
	KindCompressedText
	KindIntlText
	KindPhysical
)

// Chunk is a single record in the container: a four-character type tag and
// its raw payload. Chunks are values; list operations replace whole chunks
// rather than mutating payloads in place.
type Chunk struct {
	Type string // exactly 4 ASCII letters
	Data []byte
}

// Kind returns the recognised kind of the chunk, or KindOther.
func (c Chunk) Kind() Kind {
	switch c.Type {
	case TypeHeader:
		return KindHeader
	case TypePalette:
		return KindPalette
	case TypeImage:
		return KindImage
	case TypeEnd:
		return KindEnd
	case TypeText:
		return KindText
	case TypeCompressedText:
		return KindCompressedText
	case TypeIntlText:
		return KindIntlText
	case TypePhysical:
		return KindPhysical
	}
	return KindOther
}

// Critical reports whether the chunk is required for correct rendering.
// Criticality is carried by the case of the first tag letter.
func (c Chunk) Critical() bool {
	return len(c.Type) == 4 && c.Type[0] >= 'A' && c.Type[0] <= 'Z'
}

// Textual reports whether the chunk is one of the three textual metadata
// types whose payload starts with a keyword.
func (c Chunk) Textual() bool {
	switch c.Kind() {
	case KindText, KindCompressedText, KindIntlText:
		return true
	}
	return false
}

// singleInstance lists the chunk types of which a valid file holds at most
// one. Unknown types are treated as multi-instance: the format's extension
// rule is that a decoder must not reject repeats it does not understand.
var singleInstance = map[string]bool{
	TypeHeader:   true,
	TypePalette:  true,
	TypeEnd:      true,
	TypePhysical: true,
	"gAMA":       true,
	"cHRM":       true,
	"sRGB":       true,
	"iCCP":       true,
	"sBIT":       true,
	"bKGD":       true,
	"hIST":       true,
	"tRNS":       true,
	"tIME":       true,
}

// validType reports whether a tag is exactly four ASCII letters.
func validType(typ string) bool {
	if len(typ) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		b := typ[i]
		if (b < 'A' || b > 'Z') && (b < 'a' || b > 'z') {
			return false
		}
	}
	return true
}

// equal reports field-for-field equality of two chunks.
func (c Chunk) equal(o Chunk) bool {
	return c.Type == o.Type && bytes.Equal(c.Data, o.Data)
}
