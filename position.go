package lspwire

// Position arithmetic and offset translation for the addressing entities.
// Wire positions count characters in UTF-16 code units, so converting to and
// from byte offsets has to walk the line content.

// PositionConverter translates between byte offsets in a document and wire
// Positions. It indexes line starts once and is read-only afterwards.
type PositionConverter struct {
	content string
	starts  []int // byte offset of each line start
}

// NewPositionConverter creates a converter for the given content.
func NewPositionConverter(content string) *PositionConverter {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &PositionConverter{content: content, starts: starts}
}

// LineCount returns the number of lines.
func (pc *PositionConverter) LineCount() int {
	return len(pc.starts)
}

// LineContent returns the content of a line, excluding the newline.
func (pc *PositionConverter) LineContent(line int) string {
	if line < 0 || line >= len(pc.starts) {
		return ""
	}
	start := pc.starts[line]
	end := len(pc.content)
	if line+1 < len(pc.starts) {
		end = pc.starts[line+1] - 1
	}
	return pc.content[start:end]
}

// PositionToByteOffset converts a Position to a byte offset, clamping to the
// document bounds.
func (pc *PositionConverter) PositionToByteOffset(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(pc.starts) {
		return len(pc.content)
	}
	return pc.starts[pos.Line] + utf16ToByteOffset(pc.LineContent(pos.Line), pos.Character)
}

// ByteOffsetToPosition converts a byte offset to a Position, clamping to the
// document bounds.
func (pc *PositionConverter) ByteOffsetToPosition(offset int) Position {
	if offset < 0 {
		return Position{}
	}
	if offset > len(pc.content) {
		offset = len(pc.content)
	}
	line := 0
	for i := len(pc.starts) - 1; i >= 0; i-- {
		if pc.starts[i] <= offset {
			line = i
			break
		}
	}
	lineContent := pc.LineContent(line)
	inLine := offset - pc.starts[line]
	if inLine > len(lineContent) {
		inLine = len(lineContent)
	}
	return Position{Line: line, Character: byteToUTF16Offset(lineContent, inLine)}
}

// RangeToByteOffsets converts a Range to start and end byte offsets.
func (pc *PositionConverter) RangeToByteOffsets(rng Range) (start, end int) {
	return pc.PositionToByteOffset(rng.Start), pc.PositionToByteOffset(rng.End)
}

// ByteOffsetsToRange converts start and end byte offsets to a Range.
func (pc *PositionConverter) ByteOffsetsToRange(start, end int) Range {
	return Range{
		Start: pc.ByteOffsetToPosition(start),
		End:   pc.ByteOffsetToPosition(end),
	}
}

// utf16Len returns the length of s in UTF-16 code units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2 // surrogate pair
		} else {
			n++
		}
	}
	return n
}

// byteToUTF16Offset converts a byte offset within s to a UTF-16 offset.
func byteToUTF16Offset(s string, byteOff int) int {
	if byteOff <= 0 {
		return 0
	}
	if byteOff >= len(s) {
		return utf16Len(s)
	}
	n := 0
	for i, r := range s {
		if i >= byteOff {
			break
		}
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// utf16ToByteOffset converts a UTF-16 offset to a byte offset within s.
func utf16ToByteOffset(s string, utf16Off int) int {
	if utf16Off <= 0 {
		return 0
	}
	n := 0
	for i, r := range s {
		if n >= utf16Off {
			return i
		}
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return len(s)
}

// --- Position predicates ---

// ComparePositions returns -1 if a < b, 0 if a == b, 1 if a > b in document
// order.
func ComparePositions(a, b Position) int {
	if a.Line != b.Line {
		if a.Line < b.Line {
			return -1
		}
		return 1
	}
	if a.Character != b.Character {
		if a.Character < b.Character {
			return -1
		}
		return 1
	}
	return 0
}

// IsPositionBefore returns true if a is before b.
func IsPositionBefore(a, b Position) bool {
	return ComparePositions(a, b) < 0
}

// IsPositionInRange returns true if pos is within rng, inclusive.
func IsPositionInRange(pos Position, rng Range) bool {
	return ComparePositions(pos, rng.Start) >= 0 && ComparePositions(pos, rng.End) <= 0
}

// IsRangeEmpty returns true if the range's start equals its end, i.e. the
// range denotes a pure insertion point.
func IsRangeEmpty(rng Range) bool {
	return rng.Start == rng.End
}

// RangesOverlap returns true if two ranges overlap in more than a point.
func RangesOverlap(a, b Range) bool {
	if ComparePositions(a.End, b.Start) <= 0 {
		return false
	}
	if ComparePositions(b.End, a.Start) <= 0 {
		return false
	}
	return true
}

// RangeContains returns true if outer contains inner.
func RangeContains(outer, inner Range) bool {
	return ComparePositions(inner.Start, outer.Start) >= 0 &&
		ComparePositions(inner.End, outer.End) <= 0
}

// UnionRanges returns the smallest range containing both inputs.
func UnionRanges(a, b Range) Range {
	out := a
	if IsPositionBefore(b.Start, out.Start) {
		out.Start = b.Start
	}
	if IsPositionBefore(out.End, b.End) {
		out.End = b.End
	}
	return out
}
