package mapbuf

// Point binds an offset in a buffer's text to a named location in an
// original source. Offset is the only field a buffer operation may
// rewrite; the original location and name are fixed at creation.
type Point struct {
	// Offset is the 0-based index into the buffer's current text.
	// Every mutation keeps 0 <= Offset <= buffer length.
	Offset int

	// Name is the identifier associated with the location. May be empty.
	Name string

	// Source identifies the original file or resource.
	Source string

	// OriginalLine is the 1-based line in Source.
	OriginalLine int

	// OriginalColumn is the 0-based column in Source.
	OriginalColumn int
}
