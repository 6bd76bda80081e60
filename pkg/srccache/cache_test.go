package srccache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mapstitch/pkg/srccache"
	"github.com/yaklabco/mapstitch/pkg/textpos"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGet_CachesSingleEntry(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "a.ts", "one\ntwo\n")
	b := writeFile(t, dir, "b.ts", "alpha\nbeta\n")

	cache := srccache.New(textpos.Numbering{LineBase: 1})

	text, _, err := cache.Get(a)
	if err != nil {
		t.Fatalf("Get(a) error = %v", err)
	}
	if text != "one\ntwo\n" || cache.Path() != a {
		t.Errorf("cached %q for %q", text, cache.Path())
	}

	// A repeat hit survives deletion of the file on disk.
	if err := os.Remove(a); err != nil {
		t.Fatal(err)
	}
	if _, _, err := cache.Get(a); err != nil {
		t.Errorf("Get(a) after removal error = %v, want cache hit", err)
	}

	// Switching files replaces the entry.
	if _, _, err := cache.Get(b); err != nil {
		t.Fatalf("Get(b) error = %v", err)
	}
	if cache.Path() != b {
		t.Errorf("Path() = %q, want %q", cache.Path(), b)
	}
	if _, _, err := cache.Get(a); err == nil {
		t.Error("Get(a) succeeded after eviction, want read error")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "src.ts", "const a = 1\nconst b = 2\n")

	cache := srccache.New(textpos.Numbering{LineBase: 1})

	offset, err := cache.Lookup(path, 2, 6)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if offset != 18 {
		t.Errorf("Lookup(2, 6) = %d, want 18", offset)
	}
}

func TestGet_MissingFile(t *testing.T) {
	t.Parallel()

	cache := srccache.New(textpos.Numbering{})
	if _, _, err := cache.Get(filepath.Join(t.TempDir(), "nope.ts")); err == nil {
		t.Error("Get() succeeded for missing file")
	}
}
