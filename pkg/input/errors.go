package input

import "fmt"

// FormatError reports a malformed or incomplete input file.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid input file %s: %s", e.Path, e.Reason)
}

// ValidationError reports an input file that parsed but failed a value check.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input in %s: %s", e.Path, e.Reason)
}
