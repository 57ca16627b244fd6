package lspwire

import "testing"

func TestPositionConverter_LineIndex(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   int
	}{
		{"empty", "", 1},
		{"one line no newline", "hello", 1},
		{"one line with newline", "hello\n", 2},
		{"three lines", "a\nb\nc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := NewPositionConverter(tt.content)
			if got := pc.LineCount(); got != tt.lines {
				t.Errorf("LineCount() = %d, want %d", got, tt.lines)
			}
		})
	}
}

func TestPositionConverter_LineContent(t *testing.T) {
	pc := NewPositionConverter("first\nsecond\nthird")
	tests := []struct {
		line int
		want string
	}{
		{0, "first"},
		{1, "second"},
		{2, "third"},
		{3, ""},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := pc.LineContent(tt.line); got != tt.want {
			t.Errorf("LineContent(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestPositionConverter_RoundTripOffsets(t *testing.T) {
	content := "func main() {\n\tprintln(\"hi\")\n}\n"
	pc := NewPositionConverter(content)
	for offset := 0; offset <= len(content); offset++ {
		pos := pc.ByteOffsetToPosition(offset)
		if got := pc.PositionToByteOffset(pos); got != offset {
			t.Errorf("offset %d -> %+v -> %d", offset, pos, got)
		}
	}
}

func TestPositionConverter_UTF16(t *testing.T) {
	// é is 2 bytes / 1 UTF-16 unit, 😀 is 4 bytes / 2 UTF-16 units.
	pc := NewPositionConverter("é😀x")

	tests := []struct {
		name   string
		pos    Position
		offset int
	}{
		{"start", Position{0, 0}, 0},
		{"after é", Position{0, 1}, 2},
		{"after 😀", Position{0, 3}, 6},
		{"after x", Position{0, 4}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pc.PositionToByteOffset(tt.pos); got != tt.offset {
				t.Errorf("PositionToByteOffset(%+v) = %d, want %d", tt.pos, got, tt.offset)
			}
			if got := pc.ByteOffsetToPosition(tt.offset); got != tt.pos {
				t.Errorf("ByteOffsetToPosition(%d) = %+v, want %+v", tt.offset, got, tt.pos)
			}
		})
	}
}

func TestPositionConverter_Clamping(t *testing.T) {
	pc := NewPositionConverter("ab\ncd")
	if got := pc.PositionToByteOffset(Position{Line: 99, Character: 0}); got != 5 {
		t.Errorf("past-end line offset = %d, want 5", got)
	}
	if got := pc.PositionToByteOffset(Position{Line: 0, Character: 99}); got != 2 {
		t.Errorf("past-end character offset = %d, want 2", got)
	}
	if got := pc.ByteOffsetToPosition(-1); got != (Position{}) {
		t.Errorf("negative offset = %+v, want zero position", got)
	}
	if got := pc.ByteOffsetToPosition(99); got != (Position{Line: 1, Character: 2}) {
		t.Errorf("past-end offset = %+v, want {1 2}", got)
	}
}

func TestPositionConverter_Ranges(t *testing.T) {
	pc := NewPositionConverter("hello\nworld\n")
	rng := Range{Start: Position{0, 1}, End: Position{1, 3}}
	start, end := pc.RangeToByteOffsets(rng)
	if start != 1 || end != 9 {
		t.Errorf("RangeToByteOffsets() = (%d,%d), want (1,9)", start, end)
	}
	if got := pc.ByteOffsetsToRange(start, end); got != rng {
		t.Errorf("ByteOffsetsToRange() = %+v, want %+v", got, rng)
	}
}

func TestComparePositions(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 1}, Position{0, 2}, -1},
		{Position{1, 0}, Position{0, 9}, 1},
		{Position{2, 5}, Position{3, 0}, -1},
	}
	for _, tt := range tests {
		if got := ComparePositions(tt.a, tt.b); got != tt.want {
			t.Errorf("ComparePositions(%+v, %+v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsPositionInRange(t *testing.T) {
	rng := Range{Start: Position{1, 2}, End: Position{3, 4}}
	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{1, 2}, true},
		{Position{3, 4}, true},
		{Position{2, 0}, true},
		{Position{1, 1}, false},
		{Position{3, 5}, false},
		{Position{0, 0}, false},
	}
	for _, tt := range tests {
		if got := IsPositionInRange(tt.pos, rng); got != tt.want {
			t.Errorf("IsPositionInRange(%+v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Range
		want bool
	}{
		{
			"disjoint",
			Range{Start: Position{0, 0}, End: Position{0, 5}},
			Range{Start: Position{1, 0}, End: Position{1, 5}},
			false,
		},
		{
			"touching at a point",
			Range{Start: Position{0, 0}, End: Position{0, 5}},
			Range{Start: Position{0, 5}, End: Position{0, 9}},
			false,
		},
		{
			"overlapping",
			Range{Start: Position{0, 0}, End: Position{0, 5}},
			Range{Start: Position{0, 3}, End: Position{0, 9}},
			true,
		},
		{
			"nested",
			Range{Start: Position{0, 0}, End: Position{5, 0}},
			Range{Start: Position{1, 0}, End: Position{2, 0}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangesOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("RangesOverlap() = %v, want %v", got, tt.want)
			}
			if got := RangesOverlap(tt.b, tt.a); got != tt.want {
				t.Errorf("RangesOverlap() not symmetric: reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	outer := Range{Start: Position{1, 0}, End: Position{5, 0}}
	if !RangeContains(outer, Range{Start: Position{2, 0}, End: Position{3, 0}}) {
		t.Error("RangeContains(inner) = false, want true")
	}
	if !RangeContains(outer, outer) {
		t.Error("RangeContains(self) = false, want true")
	}
	if RangeContains(outer, Range{Start: Position{0, 0}, End: Position{3, 0}}) {
		t.Error("RangeContains(start outside) = true, want false")
	}
}

func TestUnionRanges(t *testing.T) {
	a := Range{Start: Position{1, 5}, End: Position{2, 0}}
	b := Range{Start: Position{0, 0}, End: Position{1, 9}}
	want := Range{Start: Position{0, 0}, End: Position{2, 0}}
	if got := UnionRanges(a, b); got != want {
		t.Errorf("UnionRanges() = %+v, want %+v", got, want)
	}
}

func TestIsRangeEmpty(t *testing.T) {
	if !IsRangeEmpty(Range{Start: Position{1, 1}, End: Position{1, 1}}) {
		t.Error("IsRangeEmpty(point) = false, want true")
	}
	if IsRangeEmpty(Range{Start: Position{1, 1}, End: Position{1, 2}}) {
		t.Error("IsRangeEmpty(non-empty) = true, want false")
	}
}
