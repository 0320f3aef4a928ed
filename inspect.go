// Structural inspection reports.
//
// Inspect parses a file and summarises it chunk by chunk: position, size,
// criticality, an optional payload fingerprint, and the decoded keyword or
// resolution for chunk types the package understands. The report marshals
// to JSON for tooling.
package pngmeta

// ChunkInfo describes one chunk in an inspection report.
type ChunkInfo struct {
	Type     string `json:"type"`
	Offset   int    `json:"offset"` // byte position of the length field
	Length   int    `json:"length"` // payload bytes
	Critical bool   `json:"critical"`
	Digest   string `json:"digest,omitempty"`
	Keyword  string `json:"keyword,omitempty"` // textual chunks only
}

// Report summarises the structure of a parsed file.
type Report struct {
	Size       int               `json:"size"` // total bytes
	Chunks     []ChunkInfo       `json:"chunks"`
	Texts      map[string]string `json:"texts,omitempty"`
	Resolution *Resolution       `json:"resolution,omitempty"`
}

// Inspect parses data and builds a report. alg selects the payload digest
// algorithm (AlgXXHash3, AlgFNV1a, AlgBlake2b); zero omits digests. A
// malformed textual or pHYs chunk fails the report, like any other decode.
func Inspect(data []byte, alg int) (*Report, error) {
	list, err := Parse(data)
	if err != nil {
		return nil, err
	}

	rep := &Report{Size: len(data)}

	off := len(signature)
	for _, c := range list {
		info := ChunkInfo{
			Type:     c.Type,
			Offset:   off,
			Length:   len(c.Data),
			Critical: c.Critical(),
		}
		if alg != 0 {
			info.Digest = fingerprint(c.Data, alg)
		}
		if c.Textual() {
			kw, err := keyword(c)
			if err != nil {
				return nil, err
			}
			info.Keyword = kw
		}
		if c.Kind() == KindPhysical {
			res, err := DecodeResolution(c)
			if err != nil {
				return nil, err
			}
			rep.Resolution = &res
		}
		rep.Chunks = append(rep.Chunks, info)
		off += 12 + len(c.Data)
	}

	texts, err := list.Texts()
	if err != nil {
		return nil, err
	}
	if len(texts) > 0 {
		rep.Texts = texts
	}
	return rep, nil
}
