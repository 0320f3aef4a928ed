// Chunk list mutation tests: cardinality rules, positioning, and keyword
// matching across textual chunk types.
package pngmeta

import (
	"errors"
	"testing"
)

func TestRemove(t *testing.T) {
	list := minimalList()
	list.SetText(mustText(t, "Author", "A"))
	list.SetText(mustText(t, "Title", "T"))

	list.Remove(TypeText)
	for _, c := range list {
		if c.Type == TypeText {
			t.Fatal("tEXt chunk survived Remove")
		}
	}
	if len(list) != 3 {
		t.Errorf("list length = %d, want 3", len(list))
	}

	// Removing an absent type is a no-op.
	list.Remove("tIME")
	if len(list) != 3 {
		t.Errorf("no-op Remove changed length to %d", len(list))
	}
}

func TestSetInsertsAfterHeader(t *testing.T) {
	list := minimalList()
	if err := list.Set(EncodeResolution(Resolution{X: 72, Y: 72})); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if list[1].Type != TypePhysical {
		t.Errorf("chunk 1 = %q, want pHYs right after IHDR", list[1].Type)
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	list := minimalList()
	list.Set(EncodeResolution(Resolution{X: 72, Y: 72, Unit: UnitUnknown}))
	list.Set(EncodeResolution(Resolution{X: 2835, Y: 2835, Unit: UnitMeter}))

	count := 0
	for _, c := range list {
		if c.Type == TypePhysical {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("pHYs count = %d, want 1", count)
	}
	got, err := DecodeResolution(list[1])
	if err != nil {
		t.Fatalf("DecodeResolution: %v", err)
	}
	if got.X != 2835 || got.Unit != UnitMeter {
		t.Errorf("replacement not applied: %+v", got)
	}
}

// TestSetWithoutHeader covers the degenerate list: with no IHDR at the
// front, Set inserts at index 0.
func TestSetWithoutHeader(t *testing.T) {
	list := List{{Type: TypeEnd}}
	if err := list.Set(EncodeResolution(Resolution{X: 1, Y: 1})); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if list[0].Type != TypePhysical {
		t.Errorf("chunk 0 = %q, want pHYs", list[0].Type)
	}
}

func TestSetRejectsMultiInstance(t *testing.T) {
	list := minimalList()
	for _, typ := range []string{TypeText, TypeCompressedText, TypeIntlText, TypeImage, "prVt"} {
		err := list.Set(Chunk{Type: typ})
		if !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("Set(%s): got %v, want ErrInvalidOperation", typ, err)
		}
	}
}

func TestAddInsertsBeforeEnd(t *testing.T) {
	list := minimalList()
	if err := list.Add(mustText(t, "Comment", "hi")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if list[len(list)-1].Type != TypeEnd {
		t.Error("IEND is no longer last")
	}
	if list[len(list)-2].Type != TypeText {
		t.Errorf("chunk before IEND = %q, want tEXt", list[len(list)-2].Type)
	}
}

// TestAddWithoutEnd appends when no terminator is present, e.g. while a
// list is being assembled from scratch.
func TestAddWithoutEnd(t *testing.T) {
	list := List{{Type: TypeHeader, Data: ihdrPayload}}
	if err := list.Add(mustText(t, "Comment", "hi")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if list[len(list)-1].Type != TypeText {
		t.Errorf("last chunk = %q, want tEXt", list[len(list)-1].Type)
	}
}

// TestAddRejectsInvalidType: a tag that is not four ASCII letters can
// never reach the wire, where it would be unparseable by strict readers.
func TestAddRejectsInvalidType(t *testing.T) {
	list := minimalList()
	for _, typ := range []string{"", "abc", "toolong", "ab1d", "ab d"} {
		if err := list.Add(Chunk{Type: typ}); !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("Add(%q): got %v, want ErrInvalidOperation", typ, err)
		}
	}
}

func TestAddRejectsSingleInstance(t *testing.T) {
	list := minimalList()
	for _, typ := range []string{TypeHeader, TypeEnd, TypePhysical, "gAMA", "tIME"} {
		err := list.Add(Chunk{Type: typ})
		if !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("Add(%s): got %v, want ErrInvalidOperation", typ, err)
		}
	}
}

// TestSetTextUpdatesAcrossTypes is the cross-type update contract: a new
// iTXt chunk with keyword "Author" replaces an existing tEXt chunk with
// the same keyword, at the same index, leaving exactly one Author entry.
func TestSetTextUpdatesAcrossTypes(t *testing.T) {
	list := minimalList()
	if err := list.SetText(mustText(t, "Author", "John Doe")); err != nil {
		t.Fatalf("SetText: %v", err)
	}

	var origIndex int
	for i, c := range list {
		if c.Type == TypeText {
			origIndex = i
		}
	}

	repl := mustIntlText(t, IntlText{Keyword: "Author", Text: "Jane Smith"})
	if err := list.SetText(repl); err != nil {
		t.Fatalf("SetText replace: %v", err)
	}

	var authors []Chunk
	for _, c := range list {
		if c.Textual() {
			kw, err := keyword(c)
			if err != nil {
				t.Fatalf("keyword: %v", err)
			}
			if kw == "Author" {
				authors = append(authors, c)
			}
		}
	}
	if len(authors) != 1 {
		t.Fatalf("Author chunk count = %d, want 1", len(authors))
	}
	if authors[0].Type != TypeIntlText {
		t.Errorf("surviving Author chunk type = %q, want iTXt", authors[0].Type)
	}
	if list[origIndex].Type != TypeIntlText {
		t.Errorf("replacement not at original index %d", origIndex)
	}

	it, err := DecodeIntlText(authors[0])
	if err != nil {
		t.Fatalf("DecodeIntlText: %v", err)
	}
	if it.Text != "Jane Smith" {
		t.Errorf("text = %q, want Jane Smith", it.Text)
	}
}

func TestSetTextAddsNewKeyword(t *testing.T) {
	list := minimalList()
	list.SetText(mustText(t, "Author", "A"))
	if err := list.SetText(mustCompressedText(t, "Description", "something long")); err != nil {
		t.Fatalf("SetText: %v", err)
	}

	if list[len(list)-1].Type != TypeEnd {
		t.Error("IEND is no longer last")
	}
	texts, err := list.Texts()
	if err != nil {
		t.Fatalf("Texts: %v", err)
	}
	if len(texts) != 2 {
		t.Errorf("text count = %d, want 2", len(texts))
	}
}

func TestSetTextRejectsNonTextual(t *testing.T) {
	list := minimalList()
	err := list.SetText(EncodeResolution(Resolution{X: 1, Y: 1}))
	if !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("got %v, want ErrInvalidOperation", err)
	}
}

// TestSetTextMalformedExisting plants a textual chunk with no separator in
// the list. Keyword matching must fail hard on it — best-effort matching
// could silently produce a duplicate keyword.
func TestSetTextMalformedExisting(t *testing.T) {
	list := minimalList()
	list.Add(Chunk{Type: TypeText, Data: []byte("NoSeparator")})

	err := list.SetText(mustText(t, "Author", "A"))
	if !errors.Is(err, ErrMissingSeparator) {
		t.Errorf("got %v, want ErrMissingSeparator", err)
	}
}

func TestTextsLastWriteWins(t *testing.T) {
	list := minimalList()
	// Two chunks sharing a keyword, added directly so SetText's dedup
	// does not interfere.
	list.Add(mustText(t, "Author", "First"))
	list.Add(mustCompressedText(t, "Author", "Second"))

	texts, err := list.Texts()
	if err != nil {
		t.Fatalf("Texts: %v", err)
	}
	if texts["Author"] != "Second" {
		t.Errorf(`texts["Author"] = %q, want Second`, texts["Author"])
	}
}

func TestTextsCollectsAllVariants(t *testing.T) {
	list := minimalList()
	list.SetText(mustText(t, "Title", "T"))
	list.SetText(mustCompressedText(t, "Description", "D"))
	list.SetText(mustIntlText(t, IntlText{Keyword: "Comment", Text: "C"}))

	texts, err := list.Texts()
	if err != nil {
		t.Fatalf("Texts: %v", err)
	}
	want := map[string]string{"Title": "T", "Description": "D", "Comment": "C"}
	for k, v := range want {
		if texts[k] != v {
			t.Errorf("texts[%q] = %q, want %q", k, texts[k], v)
		}
	}
}

func TestTextsMalformedChunk(t *testing.T) {
	list := minimalList()
	list.Add(Chunk{Type: TypeCompressedText, Data: []byte("Key\x00\x00\xff\xff\xff")})

	_, err := list.Texts()
	if !errors.Is(err, ErrMalformedStream) {
		t.Errorf("got %v, want ErrMalformedStream", err)
	}
}
