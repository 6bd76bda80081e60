// Package mapbuf implements a position-mapped text buffer: a mutable
// string carrying mapping points that every edit repositions, merges,
// or discards without ever re-deriving them from the text.
package mapbuf

import "sort"

// Fragment is anything that can be spliced into a Buffer: a plain
// string (Text) or another mapped buffer, whose points are carried
// along with its text.
type Fragment interface {
	fragmentText() string
	fragmentPoints() []Point
}

// Text is a plain string fragment with no mapping points.
type Text string

func (t Text) fragmentText() string    { return string(t) }
func (t Text) fragmentPoints() []Point { return nil }

// Buffer owns one mutable text string and one sequence of mapping
// points, sorted ascending by offset at all times. A Buffer never
// shares its text or point sequence with another buffer; splicing in
// another buffer copies that buffer's points into the receiver. A
// Buffer must not be mutated from more than one goroutine; the caller
// owns serialization of access.
type Buffer struct {
	text   string
	points []Point
}

// New creates a buffer over text with no mapping points.
func New(text string) *Buffer {
	return &Buffer{text: text}
}

// NewWithPoints creates a buffer over text with the given points.
// The slice is copied and stable-sorted by offset, so same-offset
// points keep their input order.
func NewWithPoints(text string, points []Point) *Buffer {
	ps := make([]Point, len(points))
	copy(ps, points)
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Offset < ps[j].Offset
	})
	return &Buffer{text: text, points: ps}
}

func (b *Buffer) fragmentText() string    { return b.text }
func (b *Buffer) fragmentPoints() []Point { return b.points }

// Text returns the buffer's current text.
func (b *Buffer) Text() string {
	return b.text
}

// Len returns the length of the buffer's current text.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Points returns a copy of the buffer's mapping points in ascending
// offset order.
func (b *Buffer) Points() []Point {
	ps := make([]Point, len(b.points))
	copy(ps, b.points)
	return ps
}

// PointCount returns the number of mapping points.
func (b *Buffer) PointCount() int {
	return len(b.points)
}

// Substring returns a new independent buffer over text[start:end].
// Points with offsets in [start, end] inclusive are copied and re-based
// by -start; points exactly on either boundary are kept, so boundary
// annotations survive re-insertion of the slice elsewhere. The source
// buffer is not modified.
func (b *Buffer) Substring(start, end int) (*Buffer, error) {
	if start < 0 || end < start || end > len(b.text) {
		return nil, &InvalidRangeError{Op: "substring", Start: start, End: end, Length: len(b.text)}
	}

	out := &Buffer{text: b.text[start:end]}
	for _, p := range b.points {
		if p.Offset < start {
			continue
		}
		if p.Offset > end {
			break
		}
		p.Offset -= start
		out.points = append(out.points, p)
	}
	return out, nil
}

// Splice replaces text[offset:offset+deleteLen] with the fragment.
// This is the fundamental mutator; Insert, Delete, and Append are
// defined in terms of it.
//
// Points strictly inside the deleted span are removed: deleted text
// takes its annotations with it. Points at or beyond the span's end
// shift by the length difference; points before the span are untouched.
// If the fragment carries points, they are re-based by +offset and
// inserted as one contiguous batch at the position that preserves
// ascending order, after any existing point with an equal offset.
//
// A range violation returns an InvalidRangeError before any mutation;
// a failed Splice leaves text and points exactly as they were.
func (b *Buffer) Splice(offset, deleteLen int, frag Fragment) error {
	if offset < 0 || deleteLen < 0 || offset+deleteLen > len(b.text) {
		return &InvalidRangeError{Op: "splice", Start: offset, End: offset + deleteLen, Length: len(b.text)}
	}

	insertion := frag.fragmentText()
	incoming := frag.fragmentPoints()
	end := offset + deleteLen
	delta := len(insertion) - deleteLen

	// One filter-then-shift pass into a fresh slice. The old sequence is
	// never mutated mid-iteration.
	kept := make([]Point, 0, len(b.points)+len(incoming))
	for _, p := range b.points {
		switch {
		case p.Offset < offset:
			kept = append(kept, p)
		case p.Offset < end:
			// Dropped with the deleted text.
		default:
			p.Offset += delta
			kept = append(kept, p)
		}
	}

	if len(incoming) > 0 {
		batch := make([]Point, len(incoming))
		copy(batch, incoming)
		for i := range batch {
			batch[i].Offset += offset
		}

		// The batch is already sorted, so locating its first offset is
		// enough. Insert after equal offsets for a stable order.
		at := sort.Search(len(kept), func(i int) bool {
			return kept[i].Offset > batch[0].Offset
		})
		kept = append(kept[:at], append(batch, kept[at:]...)...)
	}

	b.text = b.text[:offset] + insertion + b.text[end:]
	b.points = kept
	return nil
}

// Insert splices the fragment in at offset without deleting anything.
func (b *Buffer) Insert(offset int, frag Fragment) error {
	return b.Splice(offset, 0, frag)
}

// Delete removes text[offset:offset+length] and the points inside it.
func (b *Buffer) Delete(offset, length int) error {
	return b.Splice(offset, length, Text(""))
}

// Append splices the fragment onto the end of the buffer.
func (b *Buffer) Append(frag Fragment) error {
	return b.Splice(len(b.text), 0, frag)
}
