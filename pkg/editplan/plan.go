// Package editplan orchestrates batches of deletions against one mapped
// buffer. Each individual splice is independently valid; what the buffer
// cannot check is whether two scheduled deletions overlap, so the batch
// is validated, sorted, and overlap-checked here before anything is
// applied, then applied back-to-front so earlier offsets are unaffected
// by later length changes.
package editplan

import (
	"fmt"
	"sort"

	"github.com/yaklabco/mapstitch/pkg/mapbuf"
)

// Deletion is a scheduled removal of the byte range [Start, End).
type Deletion struct {
	Start int
	End   int
}

// Len returns the number of bytes the deletion removes.
func (d Deletion) Len() int {
	return d.End - d.Start
}

// RangeError describes a deletion with an invalid range.
type RangeError struct {
	Deletion Deletion
	Message  string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid deletion [%d:%d]: %s", e.Deletion.Start, e.Deletion.End, e.Message)
}

// OverlapError describes two scheduled deletions that overlap. The
// batch is rejected rather than applied in an inconsistent order.
type OverlapError struct {
	First  Deletion
	Second Deletion
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping deletions: [%d:%d] and [%d:%d]",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// Plan accumulates deletions for one buffer.
type Plan struct {
	deletions []Deletion
}

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{deletions: make([]Deletion, 0)}
}

// Delete schedules removal of [start, end).
func (p *Plan) Delete(start, end int) {
	p.deletions = append(p.deletions, Deletion{Start: start, End: end})
}

// Deletions returns a copy of the scheduled deletions in schedule order.
func (p *Plan) Deletions() []Deletion {
	out := make([]Deletion, len(p.deletions))
	copy(out, p.deletions)
	return out
}

// Prepare validates every range against contentLen, sorts the batch by
// ascending start, and rejects any overlap. The plan itself is not
// modified; the returned slice is a sorted copy.
func (p *Plan) Prepare(contentLen int) ([]Deletion, error) {
	for _, d := range p.deletions {
		if d.Start < 0 {
			return nil, &RangeError{Deletion: d, Message: "start is negative"}
		}
		if d.End < d.Start {
			return nil, &RangeError{Deletion: d, Message: "end is before start"}
		}
		if d.End > contentLen {
			return nil, &RangeError{
				Deletion: d,
				Message:  fmt.Sprintf("end %d exceeds content length %d", d.End, contentLen),
			}
		}
	}

	sorted := make([]Deletion, len(p.deletions))
	copy(sorted, p.deletions)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return nil, &OverlapError{First: sorted[i-1], Second: sorted[i]}
		}
	}

	return sorted, nil
}

// MergeOverlapping coalesces overlapping or adjacent deletions in a
// sorted batch into single deletions covering the union. For callers
// that prefer coalescing to rejection.
func MergeOverlapping(sorted []Deletion) []Deletion {
	if len(sorted) == 0 {
		return nil
	}

	out := make([]Deletion, 0, len(sorted))
	current := sorted[0]

	for _, d := range sorted[1:] {
		if d.Start > current.End {
			out = append(out, current)
			current = d
			continue
		}
		if d.End > current.End {
			current.End = d.End
		}
	}

	return append(out, current)
}

// Apply prepares the plan against the buffer's current length and
// applies the deletions in descending start order. Nothing is applied
// if preparation fails.
func (p *Plan) Apply(buf *mapbuf.Buffer) error {
	sorted, err := p.Prepare(buf.Len())
	if err != nil {
		return err
	}

	for i := len(sorted) - 1; i >= 0; i-- {
		d := sorted[i]
		if err := buf.Delete(d.Start, d.Len()); err != nil {
			return fmt.Errorf("apply deletion [%d:%d]: %w", d.Start, d.End, err)
		}
	}
	return nil
}
