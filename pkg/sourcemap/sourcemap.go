// Package sourcemap reads and writes source map v3 artifacts: the JSON
// document associating generated line/column positions with original
// source positions through a base 64 VLQ "mappings" encoding.
package sourcemap

import (
	"encoding/json"
	"fmt"
)

// Version is the only source map revision this package understands.
const Version = 3

// Entry associates one generated position with an original position.
// GeneratedLine and OriginalLine are 1-based; columns are 0-based.
// Name may be empty; such entries still serialize, as 4-field segments.
type Entry struct {
	GeneratedLine   int
	GeneratedColumn int
	Source          string
	OriginalLine    int
	OriginalColumn  int
	Name            string
}

// Map is the artifact document. SourceRoot is always empty and no
// sourcesContent field is emitted.
type Map struct {
	Version    int      `json:"version"`
	File       string   `json:"file"`
	SourceRoot string   `json:"sourceRoot"`
	Sources    []string `json:"sources"`
	Names      []string `json:"names"`
	Mappings   string   `json:"mappings"`
}

// Parse decodes and validates an artifact document.
func Parse(data []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse source map: %w", err)
	}
	if m.Version != Version {
		return nil, fmt.Errorf("unsupported source map version %d", m.Version)
	}
	return &m, nil
}

// Bytes serializes the artifact document.
func (m *Map) Bytes() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode source map: %w", err)
	}
	return data, nil
}

// Encode builds an artifact for file from entries. Entries must already
// be in ascending generated order; sources and names tables are interned
// in first-appearance order.
func Encode(file string, entries []Entry) *Map {
	m := &Map{
		Version:    Version,
		File:       file,
		SourceRoot: "",
		Sources:    []string{},
		Names:      []string{},
	}

	sourceIndex := make(map[string]int)
	nameIndex := make(map[string]int)

	var buf []byte

	// All segment fields after the first on a line are deltas against the
	// previous segment's fields; generated column resets at each line.
	genLine := 1
	genCol := 0
	prevSource := 0
	prevOrigLine := 0
	prevOrigCol := 0
	prevName := 0
	lineHasSegment := false

	for _, e := range entries {
		for genLine < e.GeneratedLine {
			buf = append(buf, ';')
			genLine++
			genCol = 0
			lineHasSegment = false
		}
		if lineHasSegment {
			buf = append(buf, ',')
		}

		buf = encodeVLQ(buf, e.GeneratedColumn-genCol)
		genCol = e.GeneratedColumn

		si, ok := sourceIndex[e.Source]
		if !ok {
			si = len(m.Sources)
			sourceIndex[e.Source] = si
			m.Sources = append(m.Sources, e.Source)
		}
		buf = encodeVLQ(buf, si-prevSource)
		prevSource = si

		// Original lines are 0-based on the wire.
		origLine := e.OriginalLine - 1
		buf = encodeVLQ(buf, origLine-prevOrigLine)
		prevOrigLine = origLine

		buf = encodeVLQ(buf, e.OriginalColumn-prevOrigCol)
		prevOrigCol = e.OriginalColumn

		if e.Name != "" {
			ni, ok := nameIndex[e.Name]
			if !ok {
				ni = len(m.Names)
				nameIndex[e.Name] = ni
				m.Names = append(m.Names, e.Name)
			}
			buf = encodeVLQ(buf, ni-prevName)
			prevName = ni
		}

		lineHasSegment = true
	}

	m.Mappings = string(buf)
	return m
}

// Entries decodes the mappings string back into entries in generated
// order. Segments without source information (1-field segments) carry
// no original position and are skipped.
func (m *Map) Entries() ([]Entry, error) {
	encoded := []byte(m.Mappings)
	var entries []Entry

	genLine := 1
	genCol := 0
	source := 0
	origLine := 0
	origCol := 0
	name := 0

	i := 0
	for i < len(encoded) {
		switch encoded[i] {
		case ';':
			genLine++
			genCol = 0
			i++
			continue
		case ',':
			i++
			continue
		}

		var err error
		var delta int

		delta, i, err = decodeVLQ(encoded, i)
		if err != nil {
			return nil, err
		}
		genCol += delta

		// A segment ends at the next separator or the end of input.
		if i >= len(encoded) || encoded[i] == ';' || encoded[i] == ',' {
			continue
		}

		delta, i, err = decodeVLQ(encoded, i)
		if err != nil {
			return nil, err
		}
		source += delta
		if source < 0 || source >= len(m.Sources) {
			return nil, fmt.Errorf("source index %d out of range", source)
		}

		delta, i, err = decodeVLQ(encoded, i)
		if err != nil {
			return nil, err
		}
		origLine += delta

		delta, i, err = decodeVLQ(encoded, i)
		if err != nil {
			return nil, err
		}
		origCol += delta

		entry := Entry{
			GeneratedLine:   genLine,
			GeneratedColumn: genCol,
			Source:          m.Sources[source],
			OriginalLine:    origLine + 1,
			OriginalColumn:  origCol,
		}

		if i < len(encoded) && encoded[i] != ';' && encoded[i] != ',' {
			delta, i, err = decodeVLQ(encoded, i)
			if err != nil {
				return nil, err
			}
			name += delta
			if name < 0 || name >= len(m.Names) {
				return nil, fmt.Errorf("name index %d out of range", name)
			}
			entry.Name = m.Names[name]
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
