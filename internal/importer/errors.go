package importer

import "fmt"

// ParseError reports a CSV file whose structure does not match the
// configured format. No partial WBS accompanies it.
type ParseError struct {
	Path string // empty when parsing from a reader
	Row  int    // 1-based file line; 0 when not tied to a row
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	var s string
	if e.Path != "" {
		s = e.Path + ": "
	}
	if e.Row > 0 {
		s += fmt.Sprintf("row %d: ", e.Row)
	}
	s += e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *ParseError) Unwrap() error { return e.Err }
