package lspwire

import "strings"

// ApplyContentChange applies a single content change event to a document.
// An event without a range replaces the entire content; an event with a
// range splices its text into that range.
func ApplyContentChange(content string, change TextDocumentContentChangeEvent) string {
	if change.IsFullReplacement() {
		return change.Text
	}
	return spliceRange(content, *change.Range, change.Text)
}

// ApplyContentChanges applies content changes in order.
func ApplyContentChanges(content string, changes []TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		content = ApplyContentChange(content, change)
	}
	return content
}

// ApplyEdits applies text edits to a document in the order given. An edit
// with empty NewText deletes its range; an edit whose range start equals its
// end inserts at that point.
func ApplyEdits(content string, edits []TextEdit) string {
	for _, edit := range edits {
		content = spliceRange(content, edit.Range, edit.NewText)
	}
	return content
}

// spliceRange replaces rng in content with text. Positions are clamped to
// the document bounds.
func spliceRange(content string, rng Range, text string) string {
	pc := NewPositionConverter(content)
	start, end := pc.RangeToByteOffsets(rng)
	if end < start {
		start, end = end, start
	}

	var b strings.Builder
	b.Grow(len(content) - (end - start) + len(text))
	b.WriteString(content[:start])
	b.WriteString(text)
	b.WriteString(content[end:])
	return b.String()
}
