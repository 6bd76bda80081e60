// Package textpos converts between linear byte offsets and line/column
// positions over an immutable text snapshot.
package textpos

import "sort"

// Numbering configures the line and column bases an Index reports in.
// The zero value is 0-based lines and 0-based columns. Source map
// consumers typically want {LineBase: 1}.
type Numbering struct {
	LineBase   int
	ColumnBase int
}

// Position is a line/column pair in some configured numbering.
type Position struct {
	Line   int
	Column int
}

// Index is a read-only line-start table over a fixed text snapshot.
// It is immutable after construction and safe for concurrent readers.
// When the underlying text changes, build a new Index; an Index is
// never mutated in place.
type Index struct {
	length     int
	num        Numbering
	lineStarts []int
}

// NewIndex scans text once and records the offset following every line
// terminator as the start of the next line. Terminators are "\n", "\r",
// and "\r\n" (CR immediately followed by LF counts as one terminator).
// The reverse pair "\n\r" is two separate terminators. Offset 0 is
// always the first line start, even when text begins with a terminator.
func NewIndex(text string, num Numbering) *Index {
	lineStarts := []int{0}

	for i := 0; i < len(text); {
		switch text[i] {
		case '\n':
			i++
			lineStarts = append(lineStarts, i)
		case '\r':
			i++
			if i < len(text) && text[i] == '\n' {
				i++
			}
			lineStarts = append(lineStarts, i)
		default:
			i++
		}
	}

	return &Index{
		length:     len(text),
		num:        num,
		lineStarts: lineStarts,
	}
}

// PositionFor converts a linear offset to a line/column pair in the
// configured numbering. An offset equal to a recorded line start belongs
// to that line, not the end of the previous one. Offsets past the end of
// the text clamp to the last line, with the column overflowing beyond
// the line's known length; querying one-past-the-end is permitted.
func (ix *Index) PositionFor(offset int) Position {
	if offset < 0 {
		offset = 0
	}

	// Greatest recorded line start that is <= offset.
	line := sort.Search(len(ix.lineStarts), func(i int) bool {
		return ix.lineStarts[i] > offset
	}) - 1

	return Position{
		Line:   line + ix.num.LineBase,
		Column: offset - ix.lineStarts[line] + ix.num.ColumnBase,
	}
}

// OffsetFor converts a line/column pair in the configured numbering back
// to a linear offset. A line beyond the last known line, or a computed
// offset past the end of the text, clamps to the text length. The result
// is always within [0, Len()]; OffsetFor never fails.
func (ix *Index) OffsetFor(line, column int) int {
	l := line - ix.num.LineBase
	c := column - ix.num.ColumnBase

	if l < 0 {
		return 0
	}
	if l >= len(ix.lineStarts) {
		return ix.length
	}

	offset := ix.lineStarts[l] + c
	if offset < 0 {
		return 0
	}
	if offset > ix.length {
		return ix.length
	}
	return offset
}

// LineCount returns the number of recorded lines.
func (ix *Index) LineCount() int {
	return len(ix.lineStarts)
}

// LineStart returns the offset of the 0-based recorded line i.
func (ix *Index) LineStart(i int) int {
	return ix.lineStarts[i]
}

// Len returns the length of the indexed text.
func (ix *Index) Len() int {
	return ix.length
}

// Numbering returns the numbering configuration the Index reports in.
func (ix *Index) Numbering() Numbering {
	return ix.num
}
