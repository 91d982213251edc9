package doccmp

// Exit codes returned by the doccmp CLI, for tools that run it and check the
// result symbolically.
const (
	// ExitSuccess indicates the comparison ran. Without --strict this holds
	// even when the documents differ.
	ExitSuccess = 0

	// ExitDifferent indicates the documents differ under --strict, or an
	// unexpected runtime failure.
	ExitDifferent = 1

	// ExitUsageError indicates invalid flags or an invalid rules file.
	ExitUsageError = 2

	// ExitInputError indicates a document could not be read or parsed.
	ExitInputError = 3
)
