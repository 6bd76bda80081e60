package mapbuf

import "fmt"

// InvalidRangeError describes an out-of-range request against a buffer.
// The buffer is never modified when one of these is returned.
type InvalidRangeError struct {
	Op     string
	Start  int
	End    int
	Length int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s: invalid range [%d:%d] for text of length %d",
		e.Op, e.Start, e.End, e.Length)
}

// MapNotFoundError indicates a text referenced a companion map artifact
// that could not be located.
type MapNotFoundError struct {
	Path string
	Err  error
}

func (e *MapNotFoundError) Error() string {
	return fmt.Sprintf("map artifact %s not found: %v", e.Path, e.Err)
}

func (e *MapNotFoundError) Unwrap() error {
	return e.Err
}

// MalformedMapError indicates a companion map artifact could not be
// decoded. It is always propagated to the caller: a silently dropped
// map corrupts downstream tooling.
type MalformedMapError struct {
	Path string
	Err  error
}

func (e *MalformedMapError) Error() string {
	return fmt.Sprintf("malformed map artifact %s: %v", e.Path, e.Err)
}

func (e *MalformedMapError) Unwrap() error {
	return e.Err
}
