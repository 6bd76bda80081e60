package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mapstitch/pkg/mapbuf"
	"github.com/yaklabco/mapstitch/pkg/textpos"
)

// Table formatting constants.
const (
	minNameWidth   = 6
	minSourceWidth = 8
	heavySeparator = "="
)

// FormatPoint formats a single mapping point as
// "offset (line:col) name <- source:line:col".
func (s *Styles) FormatPoint(p mapbuf.Point, pos textpos.Position) string {
	name := p.Name
	if name == "" {
		name = "-"
	}

	return fmt.Sprintf("%s %s  %s <- %s",
		s.Bold.Render(fmt.Sprintf("%6d", p.Offset)),
		s.Location.Render(fmt.Sprintf("(%d:%d)", pos.Line, pos.Column)),
		s.PointName.Render(name),
		s.Source.Render(fmt.Sprintf("%s:%d:%d", p.Source, p.OriginalLine, p.OriginalColumn)),
	)
}

// FormatPointTable renders all of a buffer's mapping points as a table:
// one row per point, generated position resolved against the buffer's
// current text with 1-based lines. Rows are fitted to width by capping
// the SOURCE column and truncating paths that overflow it.
func (s *Styles) FormatPointTable(buf *mapbuf.Buffer, width int) string {
	points := buf.Points()
	if len(points) == 0 {
		return s.Dim.Render("no mapping points") + "\n"
	}

	ix := textpos.NewIndex(buf.Text(), textpos.Numbering{LineBase: 1})

	nameWidth := minNameWidth
	sourceWidth := minSourceWidth
	for _, p := range points {
		if len(p.Name) > nameWidth {
			nameWidth = len(p.Name)
		}
		if len(p.Source) > sourceWidth {
			sourceWidth = len(p.Source)
		}
	}

	// Everything but the SOURCE column is fixed-width; SOURCE absorbs
	// whatever the terminal cannot fit.
	fixed := 6 + 2 + 9 + 2 + nameWidth + 2 + 2 + len("ORIG")
	if budget := width - fixed; sourceWidth > budget {
		sourceWidth = budget
	}
	if sourceWidth < minSourceWidth {
		sourceWidth = minSourceWidth
	}

	var builder strings.Builder

	header := fmt.Sprintf("%6s  %-9s  %-*s  %-*s  %s",
		"OFFSET", "GEN", nameWidth, "NAME", sourceWidth, "SOURCE", "ORIG")
	builder.WriteString(s.TableHeader.Render(header))
	builder.WriteString("\n")
	builder.WriteString(s.TableSeparator.Render(strings.Repeat(heavySeparator, len(header))))
	builder.WriteString("\n")

	for _, p := range points {
		pos := ix.PositionFor(p.Offset)
		name := p.Name
		if name == "" {
			name = "-"
		}
		builder.WriteString(fmt.Sprintf("%6d  %-9s  %-*s  %-*s  %d:%d\n",
			p.Offset,
			fmt.Sprintf("%d:%d", pos.Line, pos.Column),
			nameWidth, name,
			sourceWidth, truncate(p.Source, sourceWidth),
			p.OriginalLine, p.OriginalColumn,
		))
	}

	return builder.String()
}

// truncate shortens s to at most width bytes, marking the cut with an
// ellipsis.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// FormatSummary renders a one-line buffer summary.
func (s *Styles) FormatSummary(path string, buf *mapbuf.Buffer) string {
	ix := textpos.NewIndex(buf.Text(), textpos.Numbering{LineBase: 1})
	return fmt.Sprintf("%s  %s\n",
		s.FilePath.Render(path),
		s.Dim.Render(fmt.Sprintf("(%d bytes, %d lines, %d points)",
			buf.Len(), ix.LineCount(), buf.PointCount())),
	)
}
