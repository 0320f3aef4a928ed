// zTXt codec.
//
// A zTXt payload is keyword || 0x00 || method || deflate(text). The method
// byte is always 0; it exists so the format can grow another compression
// scheme, which it never did.
package pngmeta

import (
	"bytes"
	"fmt"
)

// EncodeCompressedText builds a zTXt chunk. Keyword rules match tEXt; the
// text body is always deflated.
func EncodeCompressedText(keyword, text string) (Chunk, error) {
	if err := checkKeyword(keyword); err != nil {
		return Chunk{}, err
	}
	if !printableLatin1(text) {
		return Chunk{}, fmt.Errorf("%w: text", ErrInvalidCharset)
	}

	body := compress([]byte(text))
	data := make([]byte, 0, len(keyword)+2+len(body))
	data = append(data, keyword...)
	data = append(data, 0, 0) // separator, method 0 (deflate)
	data = append(data, body...)
	return Chunk{Type: TypeCompressedText, Data: data}, nil
}

// DecodeCompressedText splits a zTXt payload and inflates the text body.
func DecodeCompressedText(c Chunk) (keyword, text string, err error) {
	i := bytes.IndexByte(c.Data, 0)
	if i < 0 {
		return "", "", ErrMissingSeparator
	}
	rest := c.Data[i+1:]
	if len(rest) < 1 {
		return "", "", fmt.Errorf("%w: missing compression method", ErrInvalidLength)
	}
	if rest[0] != 0 {
		return "", "", fmt.Errorf("%w: method %d", ErrUnsupportedMethod, rest[0])
	}

	body, err := decompress(rest[1:])
	if err != nil {
		return "", "", err
	}
	return string(c.Data[:i]), string(body), nil
}
