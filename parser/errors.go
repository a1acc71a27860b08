package parser

// ParseError is returned when input cannot be decoded or parsed into a
// document.
type ParseError struct {
	Charset string
	Err     error
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Cause lets github.com/pkg/errors.Cause see through the wrapper.
func (e *ParseError) Cause() error { return e.Err }
