package mapbuf

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaklabco/mapstitch/pkg/fsutil"
	"github.com/yaklabco/mapstitch/pkg/sourcemap"
	"github.com/yaklabco/mapstitch/pkg/textpos"
)

// Save writes the buffer's text to path with a trailing map reference
// marker, and the companion map artifact to path+".map". Both writes
// are atomic (temp file + rename). Save never touches buffer state, so
// a failed write leaves the buffer intact.
func Save(ctx context.Context, b *Buffer, path string) error {
	mapName := filepath.Base(path) + ".map"

	artifact, err := Artifact(b, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	data, err := artifact.Bytes()
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	var out strings.Builder
	out.WriteString(b.text)
	if b.text != "" && !strings.HasSuffix(b.text, "\n") {
		out.WriteByte('\n')
	}
	out.WriteString("//# sourceMappingURL=" + mapName + "\n")

	if err := fsutil.WriteAtomic(ctx, path, []byte(out.String()), 0); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := fsutil.WriteAtomic(ctx, path+".map", data, 0); err != nil {
		return fmt.Errorf("save %s: %w", path+".map", err)
	}
	return nil
}

// Artifact builds the position-map artifact for the buffer's current
// text. Offsets are converted through a fresh index over the final
// text; entries come out in ascending generated order even when the
// caller constructed points out of order.
func Artifact(b *Buffer, file string) (*sourcemap.Map, error) {
	points := b.Points()
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Offset < points[j].Offset
	})

	ix := textpos.NewIndex(b.text, artifactNumbering)
	entries := make([]sourcemap.Entry, 0, len(points))
	for _, p := range points {
		if p.Offset < 0 || p.Offset > len(b.text) {
			return nil, fmt.Errorf("point %q at offset %d outside text of length %d",
				p.Name, p.Offset, len(b.text))
		}
		pos := ix.PositionFor(p.Offset)
		entries = append(entries, sourcemap.Entry{
			GeneratedLine:   pos.Line,
			GeneratedColumn: pos.Column,
			Source:          p.Source,
			OriginalLine:    p.OriginalLine,
			OriginalColumn:  p.OriginalColumn,
			Name:            p.Name,
		})
	}

	return sourcemap.Encode(file, entries), nil
}
