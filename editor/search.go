package editor

import "strings"

// Search operations are stateless: each takes the buffer (and, for
// replace-current, the selection) it operates on. The host keeps the last
// query/replacement strings in its find bar; nothing here persists
// between calls.

// FindNext returns the first occurrence of query at or after the byte
// offset from, wrapping around to the start of the buffer when nothing
// follows the offset. An empty query finds nothing and is not an error.
func FindNext(b *Buffer, query string, from int) (Range, bool) {
	if query == "" {
		return Range{}, false
	}
	text := b.Text()
	if from < 0 {
		from = 0
	}
	if from > len(text) {
		from = len(text)
	}
	if idx := strings.Index(text[from:], query); idx >= 0 {
		start := from + idx
		return Range{Start: start, End: start + len(query)}, true
	}
	// Wrap: retry from the top.
	if idx := strings.Index(text, query); idx >= 0 {
		return Range{Start: idx, End: idx + len(query)}, true
	}
	return Range{}, false
}

// FindAll returns all non-overlapping occurrences of query in buffer
// text, left to right. Returns nil if query is empty or absent.
func FindAll(b *Buffer, query string) []Range {
	if query == "" {
		return nil
	}
	text := b.Text()
	var results []Range
	start := 0
	for {
		idx := strings.Index(text[start:], query)
		if idx < 0 {
			break
		}
		abs := start + idx
		results = append(results, Range{Start: abs, End: abs + len(query)})
		start = abs + len(query)
	}
	return results
}

// ReplaceCurrentAndAdvance replaces the selected text with replacement if
// and only if the selection textually equals query, then searches for the
// next occurrence from the cursor. When the selection does not match the
// query, no replacement happens and only the search runs. The selection
// is updated to cover the next match when one exists.
func ReplaceCurrentAndAdvance(b *Buffer, sel *Selection, query, replacement string) (Range, bool) {
	if query == "" {
		return Range{}, false
	}
	from := sel.Range().End
	if sel.Text(b.Text()) == query {
		r := sel.Range()
		b.ApplyEdit(r.Start, query, replacement)
		from = r.Start + len(replacement)
		sel.CollapseTo(from)
	}
	next, ok := FindNext(b, query, from)
	if ok {
		sel.SelectRange(next)
	}
	return next, ok
}

// ReplaceAll replaces every non-overlapping occurrence of query with
// replacement in a single left-to-right pass and returns the occurrence
// count. The count is taken before mutating, and the buffer is only
// touched when it is positive; an empty query replaces nothing. The whole
// substitution is recorded as one undo step.
func ReplaceAll(b *Buffer, query, replacement string) int {
	if query == "" {
		return 0
	}
	old := b.Text()
	count := strings.Count(old, query)
	if count == 0 {
		return 0
	}
	b.ApplyEdit(0, old, strings.Replace(old, query, replacement, -1))
	return count
}
