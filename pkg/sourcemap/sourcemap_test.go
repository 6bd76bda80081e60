package sourcemap_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/yaklabco/mapstitch/pkg/sourcemap"
)

func TestEncode_InternsSourcesAndNames(t *testing.T) {
	t.Parallel()

	entries := []sourcemap.Entry{
		{GeneratedLine: 1, GeneratedColumn: 0, Source: "a.ts", OriginalLine: 1, OriginalColumn: 0, Name: "x"},
		{GeneratedLine: 1, GeneratedColumn: 4, Source: "b.ts", OriginalLine: 2, OriginalColumn: 1, Name: "y"},
		{GeneratedLine: 2, GeneratedColumn: 2, Source: "a.ts", OriginalLine: 3, OriginalColumn: 0, Name: "x"},
	}

	m := sourcemap.Encode("out.js", entries)

	if m.Version != 3 {
		t.Errorf("Version = %d, want 3", m.Version)
	}
	if len(m.Sources) != 2 || m.Sources[0] != "a.ts" || m.Sources[1] != "b.ts" {
		t.Errorf("Sources = %v", m.Sources)
	}
	if len(m.Names) != 2 || m.Names[0] != "x" || m.Names[1] != "y" {
		t.Errorf("Names = %v", m.Names)
	}
	if strings.Count(m.Mappings, ";") != 1 {
		t.Errorf("Mappings = %q, want one line separator", m.Mappings)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []sourcemap.Entry
	}{
		{
			name:    "no entries",
			entries: nil,
		},
		{
			name: "single entry without name",
			entries: []sourcemap.Entry{
				{GeneratedLine: 1, GeneratedColumn: 0, Source: "s.ts", OriginalLine: 1, OriginalColumn: 0},
			},
		},
		{
			name: "several entries on one line",
			entries: []sourcemap.Entry{
				{GeneratedLine: 1, GeneratedColumn: 2, Source: "s.ts", OriginalLine: 4, OriginalColumn: 8, Name: "foo"},
				{GeneratedLine: 1, GeneratedColumn: 9, Source: "s.ts", OriginalLine: 4, OriginalColumn: 15},
				{GeneratedLine: 1, GeneratedColumn: 20, Source: "t.ts", OriginalLine: 1, OriginalColumn: 0, Name: "bar"},
			},
		},
		{
			name: "entries across skipped lines",
			entries: []sourcemap.Entry{
				{GeneratedLine: 1, GeneratedColumn: 0, Source: "s.ts", OriginalLine: 9, OriginalColumn: 1, Name: "a"},
				{GeneratedLine: 4, GeneratedColumn: 7, Source: "s.ts", OriginalLine: 2, OriginalColumn: 30, Name: "b"},
			},
		},
		{
			name: "backwards original positions need negative deltas",
			entries: []sourcemap.Entry{
				{GeneratedLine: 1, GeneratedColumn: 50, Source: "s.ts", OriginalLine: 100, OriginalColumn: 70, Name: "tail"},
				{GeneratedLine: 2, GeneratedColumn: 0, Source: "s.ts", OriginalLine: 1, OriginalColumn: 0, Name: "head"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := sourcemap.Encode("out.js", tt.entries)
			got, err := m.Entries()
			if err != nil {
				t.Fatalf("Entries() error = %v", err)
			}

			if len(got) != len(tt.entries) {
				t.Fatalf("len(Entries()) = %d, want %d", len(got), len(tt.entries))
			}
			for i := range tt.entries {
				if got[i] != tt.entries[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.entries[i])
				}
			}
		})
	}
}

func TestParse_RejectsBadDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{nope"},
		{name: "wrong version", data: `{"version":2,"mappings":""}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := sourcemap.Parse([]byte(tt.data)); err == nil {
				t.Error("Parse() succeeded, want error")
			}
		})
	}
}

func TestEntries_RejectsCorruptMappings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mappings string
		sources  []string
	}{
		{name: "invalid character", mappings: "A*AA", sources: []string{"s"}},
		{name: "source index out of range", mappings: "AEAA", sources: []string{"s"}},
		{name: "truncated continuation", mappings: "g", sources: []string{"s"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := &sourcemap.Map{
				Version:  3,
				Sources:  tt.sources,
				Names:    []string{},
				Mappings: tt.mappings,
			}
			if _, err := m.Entries(); err == nil {
				t.Error("Entries() succeeded, want error")
			}
		})
	}
}

func TestBytes_JSONShape(t *testing.T) {
	t.Parallel()

	m := sourcemap.Encode("gen.js", []sourcemap.Entry{
		{GeneratedLine: 1, GeneratedColumn: 0, Source: "a.ts", OriginalLine: 1, OriginalColumn: 0},
	})

	data, err := m.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, key := range []string{"version", "file", "sourceRoot", "sources", "names", "mappings"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("serialized map missing %q field", key)
		}
	}
	if _, ok := doc["sourcesContent"]; ok {
		t.Error("serialized map should not carry sourcesContent")
	}
}
