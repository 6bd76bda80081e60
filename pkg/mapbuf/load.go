package mapbuf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/yaklabco/mapstitch/pkg/fsutil"
	"github.com/yaklabco/mapstitch/pkg/sourcemap"
	"github.com/yaklabco/mapstitch/pkg/textpos"
)

// mapRefPattern matches the inline map reference marker line. The first
// occurrence on any line wins.
var mapRefPattern = regexp.MustCompile(`(?m)^//# sourceMappingURL=(\S+)[ \t]*\r?\n?`)

// artifactNumbering is the line/column convention of map artifacts:
// 1-based lines, 0-based columns.
var artifactNumbering = textpos.Numbering{LineBase: 1}

// Load reads a generated file and reconstructs its mapped buffer. When
// the text carries a sourceMappingURL marker, the marker is stripped
// from the text, the artifact is resolved relative to the file's
// directory, decoded, and its entries converted to offsets over the
// stripped text. A text without a marker loads with an empty point set.
//
// A missing artifact is a MapNotFoundError; an undecodable one is a
// MalformedMapError. Neither is swallowed.
func Load(ctx context.Context, path string) (*Buffer, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return LoadText(string(content), filepath.Dir(path))
}

// LoadText builds a buffer from in-memory text, resolving any map
// reference relative to dir. See Load.
func LoadText(text, dir string) (*Buffer, error) {
	loc := mapRefPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return New(text), nil
	}

	ref := text[loc[2]:loc[3]]
	text = text[:loc[0]] + text[loc[1]:]

	mapPath := filepath.Join(dir, ref)
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, &MapNotFoundError{Path: mapPath, Err: err}
	}

	m, err := sourcemap.Parse(data)
	if err != nil {
		return nil, &MalformedMapError{Path: mapPath, Err: err}
	}
	entries, err := m.Entries()
	if err != nil {
		return nil, &MalformedMapError{Path: mapPath, Err: err}
	}

	ix := textpos.NewIndex(text, artifactNumbering)
	points := make([]Point, 0, len(entries))
	for _, e := range entries {
		points = append(points, Point{
			Offset:         ix.OffsetFor(e.GeneratedLine, e.GeneratedColumn),
			Name:           e.Name,
			Source:         e.Source,
			OriginalLine:   e.OriginalLine,
			OriginalColumn: e.OriginalColumn,
		})
	}

	return NewWithPoints(text, points), nil
}
