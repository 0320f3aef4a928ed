// Compression for zTXt and iTXt payloads.
//
// The text body of a compressed textual chunk is a raw deflate stream — no
// zlib or gzip framing. The stored compression method byte (0) is the only
// method the format defines, so the adapter is a plain deflate round trip.
package pngmeta

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// compress deflates data at the default level. Writing to a bytes.Buffer
// cannot fail, and Close only flushes, so errors are impossible here.
func compress(data []byte) []byte {
	var buf bytes.Buffer
	w, _ := flate.NewWriter(&buf, flate.DefaultCompression)
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Bytes()
}

// decompress inflates a raw deflate stream.
func decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedStream, err)
	}
	return out, nil
}
