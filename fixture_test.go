// In-memory test fixtures.
//
// Every test operates on byte buffers built directly in memory — no image
// files, no generated fixtures on disk. minimalPNG produces the smallest
// structurally valid file (IHDR, one IDAT, IEND) and the must* helpers
// build chunks whose construction is not itself under test.
package pngmeta

import "testing"

// ihdrPayload is a plausible 13-byte IHDR body: 1x1, 8-bit grayscale. The
// package treats it as opaque; only its presence and position matter.
var ihdrPayload = []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 0, 0, 0, 0}

// idatPayload stands in for compressed pixel data. Opaque to the package.
var idatPayload = []byte{0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00, 0xff, 0xff}

// minimalList returns the smallest well-formed chunk list.
func minimalList() List {
	return List{
		{Type: TypeHeader, Data: append([]byte(nil), ihdrPayload...)},
		{Type: TypeImage, Data: append([]byte(nil), idatPayload...)},
		{Type: TypeEnd},
	}
}

// minimalPNG returns the encoded form of minimalList.
func minimalPNG() []byte {
	return minimalList().Encode()
}

// mustText builds a tEXt chunk or fails the test.
func mustText(t *testing.T, keyword, text string) Chunk {
	t.Helper()
	c, err := EncodeText(keyword, text)
	if err != nil {
		t.Fatalf("EncodeText(%q, %q): %v", keyword, text, err)
	}
	return c
}

// mustCompressedText builds a zTXt chunk or fails the test.
func mustCompressedText(t *testing.T, keyword, text string) Chunk {
	t.Helper()
	c, err := EncodeCompressedText(keyword, text)
	if err != nil {
		t.Fatalf("EncodeCompressedText(%q, %q): %v", keyword, text, err)
	}
	return c
}

// mustIntlText builds an iTXt chunk or fails the test.
func mustIntlText(t *testing.T, it IntlText) Chunk {
	t.Helper()
	c, err := EncodeIntlText(it)
	if err != nil {
		t.Fatalf("EncodeIntlText(%+v): %v", it, err)
	}
	return c
}

// equalLists compares two chunk lists field for field.
func equalLists(a, b List) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}
	return true
}
