// tEXt codec and keyword rules.
//
// A tEXt payload is keyword || 0x00 || text, both fields Latin-1. The
// keyword is the identity of a textual chunk: list operations that update
// metadata match on it across all three textual chunk types.
package pngmeta

import (
	"bytes"
	"fmt"
)

// MaxKeywordSize is the maximum keyword length in bytes.
const MaxKeywordSize = 79

// Keywords registered by the PNG specification. Any other printable keyword
// is equally valid; these are the conventional ones.
const (
	KeyTitle        = "Title"         // Short (one line) title or caption
	KeyAuthor       = "Author"        // Name of image's creator
	KeyDescription  = "Description"   // Description of image (possibly long)
	KeyCopyright    = "Copyright"     // Copyright notice
	KeyCreationTime = "Creation Time" // Time of original image creation
	KeySoftware     = "Software"      // Software used to create the image
	KeyDisclaimer   = "Disclaimer"    // Legal disclaimer
	KeyWarning      = "Warning"       // Warning of nature of content
	KeySource       = "Source"        // Device used to create the image
	KeyComment      = "Comment"       // Miscellaneous comment
)

// printableLatin1 reports whether every byte of s is in the printable
// Latin-1 ranges 32–126 and 161–255.
func printableLatin1(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 32 || (b > 126 && b < 161) {
			return false
		}
	}
	return true
}

// checkKeyword validates a Latin-1 keyword: 1–79 bytes, printable, no NUL.
func checkKeyword(keyword string) error {
	if len(keyword) == 0 || len(keyword) > MaxKeywordSize {
		return fmt.Errorf("%w: length %d", ErrInvalidKeyword, len(keyword))
	}
	if !printableLatin1(keyword) {
		return fmt.Errorf("%w: keyword", ErrInvalidCharset)
	}
	return nil
}

// EncodeText builds a tEXt chunk. Keyword and text are Latin-1; neither may
// contain a NUL byte or a character outside the printable range.
func EncodeText(keyword, text string) (Chunk, error) {
	if err := checkKeyword(keyword); err != nil {
		return Chunk{}, err
	}
	if !printableLatin1(text) {
		return Chunk{}, fmt.Errorf("%w: text", ErrInvalidCharset)
	}

	data := make([]byte, 0, len(keyword)+1+len(text))
	data = append(data, keyword...)
	data = append(data, 0)
	data = append(data, text...)
	return Chunk{Type: TypeText, Data: data}, nil
}

// DecodeText splits a tEXt payload into keyword and text. The single NUL
// separator is the only NUL the payload may contain.
func DecodeText(c Chunk) (keyword, text string, err error) {
	i := bytes.IndexByte(c.Data, 0)
	if i < 0 {
		return "", "", ErrMissingSeparator
	}
	rest := c.Data[i+1:]
	if bytes.IndexByte(rest, 0) >= 0 {
		return "", "", fmt.Errorf("%w: NUL inside text", ErrInvalidCharset)
	}
	return string(c.Data[:i]), string(rest), nil
}
