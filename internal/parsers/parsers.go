// Package parsers extracts structured numeric values from the free-form text
// produced by Android diagnostic shell commands. Output formats are
// version-dependent and reverse-engineered, so every parser is a narrow pure
// function over raw text that fails explicitly when its expected pattern is
// absent, never returning a silent zero.
package parsers

// ParseError reports that an expected field was absent from diagnostic
// output or its value was out of range.
type ParseError struct {
	Field string // Name of the expected-but-missing field.
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "parse failed: " + e.Field + " not found"
}

func newParseError(field string) error {
	return &ParseError{Field: field}
}
