// Chunk list operations.
//
// A List is the ordered chunk sequence of a parsed file. Mutations enforce
// the format's cardinality rules: single-instance types are replaced in
// place, multi-instance types are appended before the IEND terminator, and
// textual chunks are keyed by keyword across all three textual types — an
// update may swap a plain tEXt chunk for a zTXt or iTXt one with the same
// keyword without leaving a duplicate behind.
//
// Operations assume exclusive access to the list for the duration of a call
// and retain no reference afterwards.
package pngmeta

import (
	"bytes"
	"fmt"
	"slices"
)

// List is an ordered chunk sequence. A well-formed list starts with IHDR
// and ends with IEND.
type List []Chunk

// Remove deletes every chunk of the given type. Removing a type that is not
// present is a no-op.
func (l *List) Remove(typ string) {
	*l = slices.DeleteFunc(*l, func(c Chunk) bool { return c.Type == typ })
}

// Set inserts or replaces a single-instance chunk. An existing chunk of the
// same type is replaced at its index; otherwise the chunk is inserted right
// after the header chunk, or at the front when no header is present.
// Multi-instance types fail with ErrInvalidOperation.
func (l *List) Set(c Chunk) error {
	if !validType(c.Type) {
		return fmt.Errorf("%w: invalid chunk type %q", ErrInvalidOperation, c.Type)
	}
	if !singleInstance[c.Type] {
		return fmt.Errorf("%w: Set on multi-instance type %s", ErrInvalidOperation, c.Type)
	}

	for i, existing := range *l {
		if existing.Type == c.Type {
			(*l)[i] = c
			return nil
		}
	}

	pos := 0
	if len(*l) > 0 && (*l)[0].Type == TypeHeader {
		pos = 1
	}
	*l = slices.Insert(*l, pos, c)
	return nil
}

// Add appends a multi-instance chunk, immediately before the IEND
// terminator when one is present. Single-instance types fail with
// ErrInvalidOperation.
func (l *List) Add(c Chunk) error {
	if !validType(c.Type) {
		return fmt.Errorf("%w: invalid chunk type %q", ErrInvalidOperation, c.Type)
	}
	if singleInstance[c.Type] {
		return fmt.Errorf("%w: Add on single-instance type %s", ErrInvalidOperation, c.Type)
	}

	pos := len(*l)
	for i, existing := range *l {
		if existing.Type == TypeEnd {
			pos = i
			break
		}
	}
	*l = slices.Insert(*l, pos, c)
	return nil
}

// SetText inserts or updates a textual chunk by keyword. The keyword is
// matched against every existing textual chunk regardless of wire type; a
// match is replaced at its original index, otherwise the chunk is added.
// A malformed existing textual chunk fails the whole operation — matching
// is never best-effort.
func (l *List) SetText(c Chunk) error {
	if !c.Textual() {
		return fmt.Errorf("%w: SetText on %s", ErrInvalidOperation, c.Type)
	}
	kw, err := keyword(c)
	if err != nil {
		return err
	}

	for i, existing := range *l {
		if !existing.Textual() {
			continue
		}
		ek, err := keyword(existing)
		if err != nil {
			return err
		}
		if ek == kw {
			(*l)[i] = c
			return nil
		}
	}
	return l.Add(c)
}

// Texts decodes every textual chunk into a keyword-to-text map. When two
// chunks share a keyword the later one wins, matching the reference
// decoder's reading behavior.
func (l List) Texts() (map[string]string, error) {
	out := make(map[string]string)
	for _, c := range l {
		switch c.Kind() {
		case KindText:
			kw, text, err := DecodeText(c)
			if err != nil {
				return nil, err
			}
			out[kw] = text
		case KindCompressedText:
			kw, text, err := DecodeCompressedText(c)
			if err != nil {
				return nil, err
			}
			out[kw] = text
		case KindIntlText:
			t, err := DecodeIntlText(c)
			if err != nil {
				return nil, err
			}
			out[t.Keyword] = t.Text
		}
	}
	return out, nil
}

// keyword extracts a textual chunk's keyword, validating the structure that
// precedes the text body: the separator must exist and the compression
// method byte, where the type carries one, must be zero. The text body is
// not decompressed here.
func keyword(c Chunk) (string, error) {
	i := bytes.IndexByte(c.Data, 0)
	if i < 0 {
		return "", fmt.Errorf("%w: %s keyword", ErrMissingSeparator, c.Type)
	}

	switch c.Kind() {
	case KindText:
	case KindCompressedText:
		rest := c.Data[i+1:]
		if len(rest) < 1 {
			return "", fmt.Errorf("%w: missing compression method", ErrInvalidLength)
		}
		if rest[0] != 0 {
			return "", fmt.Errorf("%w: method %d", ErrUnsupportedMethod, rest[0])
		}
	case KindIntlText:
		rest := c.Data[i+1:]
		if len(rest) < 2 {
			return "", fmt.Errorf("%w: missing compression flag", ErrInvalidLength)
		}
		if rest[1] != 0 {
			return "", fmt.Errorf("%w: method %d", ErrUnsupportedMethod, rest[1])
		}
	default:
		return "", fmt.Errorf("%w: %s is not textual", ErrInvalidOperation, c.Type)
	}
	return string(c.Data[:i]), nil
}
