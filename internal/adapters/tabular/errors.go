package tabular

import (
	"errors"
	"fmt"
)

// ErrInput is the single error kind for every input failure: missing or
// unreadable file, malformed header or row, or an unparsable score.
var ErrInput = errors.New("input error")

// Detail kinds wrapped inside an InputError.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMalformedHeader   = errors.New("malformed header")
	ErrMalformedRow      = errors.New("malformed row")
	ErrInvalidScore      = errors.New("invalid score")
)

// InputError annotates an input failure with the offending file path.
// It matches ErrInput under errors.Is.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInput.
func (e *InputError) Is(target error) bool { return target == ErrInput }

// inputError wraps err for path. It is applied once, at the boundary of each
// exported reader; nil stays nil.
func inputError(path string, err error) error {
	if err == nil {
		return nil
	}
	var ie *InputError
	if errors.As(err, &ie) {
		return err
	}
	return &InputError{Path: path, Err: err}
}
