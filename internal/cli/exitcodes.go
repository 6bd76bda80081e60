package cli

// Exit codes for mapstitch.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates the requested operation failed.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitScriptError indicates edit-script errors.
	ExitScriptError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)
