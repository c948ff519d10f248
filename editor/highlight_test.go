package editor

import "testing"

func spansOf(t *testing.T, line string) []Span {
	t.Helper()
	return NewHighlighter(nil).Highlight(line)
}

func TestHighlightKeyword(t *testing.T) {
	spans := spansOf(t, "if x then")
	if len(spans) != 1 {
		t.Fatalf("spans = %+v, want one keyword span", spans)
	}
	want := Span{Offset: 0, Length: 2, Category: SpanKeyword}
	if spans[0] != want {
		t.Errorf("span = %+v, want %+v", spans[0], want)
	}
}

func TestHighlightKeywordWordBoundary(t *testing.T) {
	// "iffy" and "gift" contain keyword letters but are not keywords.
	if spans := spansOf(t, "iffy gift elsewhere"); len(spans) != 0 {
		t.Errorf("spans = %+v, want none for non-keyword identifiers", spans)
	}
}

func TestHighlightString(t *testing.T) {
	spans := spansOf(t, `x = "hello"`)
	if len(spans) != 1 {
		t.Fatalf("spans = %+v, want one string span", spans)
	}
	want := Span{Offset: 4, Length: 7, Category: SpanString}
	if spans[0] != want {
		t.Errorf("span = %+v, want %+v", spans[0], want)
	}
}

func TestHighlightStringShortestMatch(t *testing.T) {
	// Four quotes pair up as two short strings, not one greedy one.
	spans := spansOf(t, `"a" + "b"`)
	if len(spans) != 2 {
		t.Fatalf("spans = %+v, want two string spans", spans)
	}
	if spans[0].Offset != 0 || spans[0].Length != 3 {
		t.Errorf("first string span = %+v, want offset 0 length 3", spans[0])
	}
	if spans[1].Offset != 6 || spans[1].Length != 3 {
		t.Errorf("second string span = %+v, want offset 6 length 3", spans[1])
	}
}

func TestHighlightUnterminatedString(t *testing.T) {
	if spans := spansOf(t, `say "oops`); len(spans) != 0 {
		t.Errorf("spans = %+v, want none for an unterminated quote", spans)
	}
}

func TestHighlightEscapedQuoteNotHandled(t *testing.T) {
	// The string rule pairs raw quotes; the backslash does not escape.
	// The first pair ends at the quote before the backslash's neighbor.
	spans := spansOf(t, `"a\"b"`)
	if len(spans) == 0 {
		t.Fatal("expected at least one string span")
	}
	if spans[0].Length != 4 { // `"a\"`
		t.Errorf("first string span = %+v; escaped quotes are deliberately not handled", spans[0])
	}
}

func TestHighlightComment(t *testing.T) {
	spans := spansOf(t, "x := 1 // trailing note")
	if len(spans) != 1 {
		t.Fatalf("spans = %+v, want one comment span", spans)
	}
	want := Span{Offset: 7, Length: 16, Category: SpanComment}
	if spans[0] != want {
		t.Errorf("span = %+v, want %+v", spans[0], want)
	}
}

func TestHighlightCommentPrecedence(t *testing.T) {
	// Inside `// if ("x")` the keyword and string rules still match, but
	// the comment span is emitted last and so wins per-character in the
	// renderer's last-writer ordering.
	line := `// if ("x")`
	spans := spansOf(t, line)

	last := spans[len(spans)-1]
	if last.Category != SpanComment {
		t.Fatalf("last span = %+v, want the comment span emitted last", last)
	}
	if last.Offset != 0 || last.Length != len(line) {
		t.Errorf("comment span = %+v, want the whole line", last)
	}

	// The overlapping keyword and string matches are still present,
	// before the comment, in category order.
	var cats []SpanCategory
	for _, s := range spans {
		cats = append(cats, s.Category)
	}
	want := []SpanCategory{SpanKeyword, SpanString, SpanComment}
	if len(cats) != len(want) {
		t.Fatalf("categories = %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("category[%d] = %v, want %v", i, cats[i], want[i])
		}
	}
}

func TestHighlightEmissionOrder(t *testing.T) {
	// Categories are always emitted keyword, string, comment regardless
	// of their positions in the line.
	spans := spansOf(t, `"str" if // c`)
	want := []SpanCategory{SpanKeyword, SpanString, SpanComment}
	if len(spans) != len(want) {
		t.Fatalf("spans = %+v, want %d spans", spans, len(want))
	}
	for i, s := range spans {
		if s.Category != want[i] {
			t.Errorf("span[%d].Category = %v, want %v", i, s.Category, want[i])
		}
	}
}

func TestHighlightStatelessAcrossLines(t *testing.T) {
	h := NewHighlighter(nil)

	// A line that opens a quote does not bleed state into the next line.
	h.Highlight(`start "unterminated`)
	spans := h.Highlight("plain text")
	if len(spans) != 0 {
		t.Errorf("spans = %+v, want none; lines are highlighted independently", spans)
	}
}

func TestHighlightCustomKeywords(t *testing.T) {
	h := NewHighlighter([]string{"SELECT", "FROM"})

	spans := h.Highlight("SELECT name FROM users")
	if len(spans) != 2 {
		t.Fatalf("spans = %+v, want two keyword spans", spans)
	}
	// The default set no longer applies.
	if spans := h.Highlight("if else for"); len(spans) != 0 {
		t.Errorf("spans = %+v, want none with a custom keyword set", spans)
	}
}

func TestHighlightEmptyKeywordSet(t *testing.T) {
	h := NewHighlighter([]string{})
	if spans := h.Highlight("if for while"); len(spans) != 0 {
		t.Errorf("spans = %+v, want none with the keyword rule disabled", spans)
	}
	// Other rules still apply.
	if spans := h.Highlight(`"s"`); len(spans) != 1 {
		t.Errorf("spans = %+v, want the string rule to still run", spans)
	}
}

func TestHighlightEmptyLine(t *testing.T) {
	if spans := spansOf(t, ""); len(spans) != 0 {
		t.Errorf("spans = %+v, want none for an empty line", spans)
	}
}
