// Package config defines the edit-script document consumed by the
// apply command: an input file, an output file, and an ordered list of
// buffer operations. These are pure data structures; the CLI layer owns
// execution.
package config

import "fmt"

// OpKind names one buffer operation.
type OpKind string

const (
	// OpDelete removes the byte range [Start, End) and the mapping
	// points inside it. Delete operations are batched, overlap-checked,
	// and applied back-to-front.
	OpDelete OpKind = "delete"

	// OpInsert splices Text or the mapped file File in at offset At.
	OpInsert OpKind = "insert"

	// OpAppend splices Text or the mapped file File onto the end.
	OpAppend OpKind = "append"
)

// Operation is one step of an edit script. Which fields matter depends
// on Op: delete uses Start/End, insert uses At plus Text or File,
// append uses Text or File.
type Operation struct {
	Op    OpKind `yaml:"op"`
	Start int    `yaml:"start,omitempty"`
	End   int    `yaml:"end,omitempty"`
	At    int    `yaml:"at,omitempty"`
	Text  string `yaml:"text,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// Script is the root edit-script document.
type Script struct {
	Input      string      `yaml:"input"`
	Output     string      `yaml:"output"`
	Operations []Operation `yaml:"operations"`
}

// Validate checks the script for structural problems before anything
// touches a buffer: unknown ops, missing paths, negative or inverted
// ranges, and fragment-less insertions.
func (s *Script) Validate() error {
	if s.Input == "" {
		return fmt.Errorf("script has no input file")
	}
	if s.Output == "" {
		return fmt.Errorf("script has no output file")
	}

	for i, op := range s.Operations {
		if err := op.validate(); err != nil {
			return fmt.Errorf("operation %d: %w", i+1, err)
		}
	}
	return nil
}

func (op Operation) validate() error {
	switch op.Op {
	case OpDelete:
		if op.Start < 0 || op.End < op.Start {
			return fmt.Errorf("delete has invalid range [%d:%d]", op.Start, op.End)
		}
		if op.Text != "" || op.File != "" {
			return fmt.Errorf("delete does not take text or file")
		}
	case OpInsert:
		if op.At < 0 {
			return fmt.Errorf("insert at negative offset %d", op.At)
		}
		if err := op.validateFragment(); err != nil {
			return err
		}
	case OpAppend:
		if err := op.validateFragment(); err != nil {
			return err
		}
	case "":
		return fmt.Errorf("missing op")
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
	return nil
}

func (op Operation) validateFragment() error {
	if op.Text == "" && op.File == "" {
		return fmt.Errorf("%s needs text or file", op.Op)
	}
	if op.Text != "" && op.File != "" {
		return fmt.Errorf("%s takes text or file, not both", op.Op)
	}
	return nil
}
