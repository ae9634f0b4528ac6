package source

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSource is returned by Open when no source was configured.
	ErrNoSource = errors.New("no data source configured")
	// ErrUnsupportedSource is returned by Open for unrecognized specs.
	ErrUnsupportedSource = errors.New("unsupported data source")
)

// LoadErrorCode classifies load failures.
type LoadErrorCode string

const (
	CodeNotFound   LoadErrorCode = "NOT_FOUND"
	CodeReadFailed LoadErrorCode = "READ_FAILED"
	CodeMalformed  LoadErrorCode = "MALFORMED"
)

// LoadError reports why a source could not produce a snapshot.
type LoadError struct {
	Code LoadErrorCode
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErr(code LoadErrorCode, path string, err error) error {
	return &LoadError{Code: code, Path: path, Err: err}
}

// CodeOf returns the LoadErrorCode carried by err, or "" when err is not
// a LoadError.
func CodeOf(err error) LoadErrorCode {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}
