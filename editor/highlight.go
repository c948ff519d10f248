package editor

import (
	"regexp"
	"strings"
)

// SpanCategory classifies a highlighted sub-range of one line.
type SpanCategory uint8

const (
	SpanKeyword SpanCategory = iota
	SpanString
	SpanComment
)

// Span describes how a byte sub-range of one line should be styled.
type Span struct {
	Offset   int
	Length   int
	Category SpanCategory
}

// DefaultKeywords is the stock keyword set used when the config does not
// supply one. It is a language-agnostic token list, not a grammar.
var DefaultKeywords = []string{
	"if", "else", "for", "while", "switch", "case", "break", "continue",
	"return", "func", "var", "const", "type", "struct",
	"int", "double", "float", "bool", "char", "string", "void",
}

// Highlighter applies layered lexical rules to single lines of text. It
// carries no state between lines: multi-line comments and strings are not
// tracked, and the string rule does not understand escaped quotes. Both
// are documented boundary behaviors of the lexical approach, not bugs.
type Highlighter struct {
	keywordPattern *regexp.Regexp // nil when the keyword set is empty
	stringPattern  *regexp.Regexp
}

// NewHighlighter builds a highlighter for the given closed keyword set.
// A nil set uses DefaultKeywords; an explicitly empty set disables the
// keyword rule.
func NewHighlighter(keywords []string) *Highlighter {
	if keywords == nil {
		keywords = DefaultKeywords
	}
	h := &Highlighter{
		// Shortest pairing of two double quotes on one line.
		stringPattern: regexp.MustCompile(`"[^"]*"`),
	}
	if len(keywords) > 0 {
		quoted := make([]string, len(keywords))
		for i, kw := range keywords {
			quoted[i] = regexp.QuoteMeta(kw)
		}
		h.keywordPattern = regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`)
	}
	return h
}

// Highlight returns the spans for one line, in the fixed category order
// keyword, string literal, comment. Spans may overlap; the renderer
// applies the last-written category per character, so a comment visually
// wins over a string, which wins over a keyword, exactly because of this
// emission order.
func (h *Highlighter) Highlight(line string) []Span {
	var spans []Span
	if h.keywordPattern != nil {
		for _, m := range h.keywordPattern.FindAllStringIndex(line, -1) {
			spans = append(spans, Span{Offset: m[0], Length: m[1] - m[0], Category: SpanKeyword})
		}
	}
	for _, m := range h.stringPattern.FindAllStringIndex(line, -1) {
		spans = append(spans, Span{Offset: m[0], Length: m[1] - m[0], Category: SpanString})
	}
	if idx := strings.Index(line, "//"); idx >= 0 {
		spans = append(spans, Span{Offset: idx, Length: len(line) - idx, Category: SpanComment})
	}
	return spans
}
