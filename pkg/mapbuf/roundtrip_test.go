package mapbuf_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/mapstitch/pkg/mapbuf"
)

func TestSaveLoad_RoundTripWithoutPoints(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.js")
	text := "const a = 1;\nconst b = 2;\n"

	buf := mapbuf.New(text)
	if err := mapbuf.Save(context.Background(), buf, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// The written text carries the marker as its final line.
	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasSuffix(string(written), "//# sourceMappingURL=out.js.map\n") {
		t.Errorf("written text missing marker line: %q", written)
	}

	loaded, err := mapbuf.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Text() != text {
		t.Errorf("loaded text = %q, want %q", loaded.Text(), text)
	}
	if loaded.PointCount() != 0 {
		t.Errorf("PointCount() = %d, want 0", loaded.PointCount())
	}
}

func TestSaveLoad_RoundTripWithPoints(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.js")
	text := "function greet() {\n  return hello;\n}\n"

	want := []mapbuf.Point{
		{Offset: 9, Name: "greet", Source: "src/greet.ts", OriginalLine: 2, OriginalColumn: 9},
		{Offset: 28, Name: "hello", Source: "src/hello.ts", OriginalLine: 5, OriginalColumn: 2},
		{Offset: 33, Source: "src/hello.ts", OriginalLine: 5, OriginalColumn: 7},
	}

	buf := mapbuf.NewWithPoints(text, want)
	if err := mapbuf.Save(context.Background(), buf, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := mapbuf.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Text() != text {
		t.Errorf("loaded text = %q, want %q", loaded.Text(), text)
	}
	got := loaded.Points()
	if len(got) != len(want) {
		t.Fatalf("PointCount() = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoad_TextWithoutMarker(t *testing.T) {
	t.Parallel()

	buf, err := mapbuf.LoadText("no marker here\n", ".")
	if err != nil {
		t.Fatalf("LoadText() error = %v", err)
	}
	if buf.Text() != "no marker here\n" || buf.PointCount() != 0 {
		t.Errorf("buffer = %q with %d points", buf.Text(), buf.PointCount())
	}
}

func TestLoad_MarkerStrippedMidText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "x.map"),
		[]byte(`{"version":3,"file":"x.js","sourceRoot":"","sources":[],"names":[],"mappings":""}`),
		0o644); err != nil {
		t.Fatal(err)
	}

	buf, err := mapbuf.LoadText("line1\n//# sourceMappingURL=x.map\nline2\n", dir)
	if err != nil {
		t.Fatalf("LoadText() error = %v", err)
	}
	if buf.Text() != "line1\nline2\n" {
		t.Errorf("Text() = %q, want marker line stripped", buf.Text())
	}
}

func TestLoad_MissingArtifact(t *testing.T) {
	t.Parallel()

	_, err := mapbuf.LoadText("//# sourceMappingURL=gone.js.map\n", t.TempDir())

	var notFound *mapbuf.MapNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("LoadText() error = %v, want MapNotFoundError", err)
	}
}

func TestLoad_MalformedArtifact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.map"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := mapbuf.LoadText("//# sourceMappingURL=bad.map\n", dir)

	var malformed *mapbuf.MalformedMapError
	if !errors.As(err, &malformed) {
		t.Fatalf("LoadText() error = %v, want MalformedMapError", err)
	}
}

func TestArtifact_EntriesInGeneratedOrder(t *testing.T) {
	t.Parallel()

	buf := mapbuf.NewWithPoints("aa\nbb\n", []mapbuf.Point{
		{Offset: 4, Name: "b", Source: "s.ts", OriginalLine: 2, OriginalColumn: 1},
		{Offset: 0, Name: "a", Source: "s.ts", OriginalLine: 1, OriginalColumn: 0},
	})

	m, err := mapbuf.Artifact(buf, "gen.js")
	if err != nil {
		t.Fatalf("Artifact() error = %v", err)
	}

	if m.File != "gen.js" || m.SourceRoot != "" {
		t.Errorf("artifact header = %q/%q", m.File, m.SourceRoot)
	}
	entries, err := m.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Name != "a" || entries[0].GeneratedLine != 1 || entries[0].GeneratedColumn != 0 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Name != "b" || entries[1].GeneratedLine != 2 || entries[1].GeneratedColumn != 1 {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}
