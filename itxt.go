// iTXt codec.
//
// The international text chunk carries a UTF-8 keyword and text body, an
// optional RFC 3066 language tag, an optional translated keyword, and an
// optional deflate-compressed body. Payload layout:
//
//	keyword || 0x00 || flag || method || language || 0x00 || translated || 0x00 || text
//
// When the compression flag is set, the text field holds the deflate stream
// of the UTF-8 text bytes. Empty optional fields encode to zero bytes
// between their separators.
package pngmeta

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// IntlText is the decoded form of an iTXt chunk.
type IntlText struct {
	Keyword    string // UTF-8, 1–79 bytes
	Language   string // RFC 3066 tag, ASCII; may be empty
	Translated string // keyword translated into Language; may be empty
	Text       string // UTF-8 text body
	Compressed bool   // deflate the text body on the wire
}

// EncodeIntlText builds an iTXt chunk.
func EncodeIntlText(t IntlText) (Chunk, error) {
	if len(t.Keyword) == 0 || len(t.Keyword) > MaxKeywordSize {
		return Chunk{}, fmt.Errorf("%w: length %d", ErrInvalidKeyword, len(t.Keyword))
	}
	for _, s := range []string{t.Keyword, t.Translated, t.Text} {
		if !utf8.ValidString(s) || bytes.IndexByte([]byte(s), 0) >= 0 {
			return Chunk{}, fmt.Errorf("%w: iTXt field", ErrInvalidCharset)
		}
	}
	for i := 0; i < len(t.Language); i++ {
		b := t.Language[i]
		if b < 32 || b > 126 {
			return Chunk{}, fmt.Errorf("%w: language tag", ErrInvalidCharset)
		}
	}

	body := []byte(t.Text)
	flag := byte(0)
	if t.Compressed {
		flag = 1
		body = compress(body)
	}

	data := make([]byte, 0, len(t.Keyword)+len(t.Language)+len(t.Translated)+5+len(body))
	data = append(data, t.Keyword...)
	data = append(data, 0, flag, 0) // separator, flag, method 0 (deflate)
	data = append(data, t.Language...)
	data = append(data, 0)
	data = append(data, t.Translated...)
	data = append(data, 0)
	data = append(data, body...)
	return Chunk{Type: TypeIntlText, Data: data}, nil
}

// DecodeIntlText parses an iTXt payload, inflating the text body when the
// compression flag is set.
func DecodeIntlText(c Chunk) (IntlText, error) {
	var t IntlText

	i := bytes.IndexByte(c.Data, 0)
	if i < 0 {
		return t, ErrMissingSeparator
	}
	t.Keyword = string(c.Data[:i])

	rest := c.Data[i+1:]
	if len(rest) < 2 {
		return t, fmt.Errorf("%w: missing compression flag", ErrInvalidLength)
	}
	flag, method := rest[0], rest[1]
	if method != 0 {
		return t, fmt.Errorf("%w: method %d", ErrUnsupportedMethod, method)
	}
	if flag > 1 {
		return t, fmt.Errorf("%w: compression flag %d", ErrUnsupportedMethod, flag)
	}
	rest = rest[2:]

	i = bytes.IndexByte(rest, 0)
	if i < 0 {
		return t, fmt.Errorf("%w: after language tag", ErrMissingSeparator)
	}
	t.Language = string(rest[:i])
	rest = rest[i+1:]

	i = bytes.IndexByte(rest, 0)
	if i < 0 {
		return t, fmt.Errorf("%w: after translated keyword", ErrMissingSeparator)
	}
	t.Translated = string(rest[:i])
	rest = rest[i+1:]

	if flag == 1 {
		body, err := decompress(rest)
		if err != nil {
			return t, err
		}
		t.Text = string(body)
		t.Compressed = true
	} else {
		t.Text = string(rest)
	}
	return t, nil
}
