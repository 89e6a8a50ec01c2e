package iconheaders

import (
	"errors"
	"fmt"
)

// ErrMissingSource is returned if a metadata document or a font file cannot
// be found at its configured location. It is fatal for a single font only.
var ErrMissingSource = errors.New("source file missing")

// ErrMalformedMetadata is returned if a metadata document cannot be decoded.
var ErrMalformedMetadata = errors.New("malformed metadata")

// SourceError records a failure concerning one input of a font.
type SourceError struct {
	Font string // display name of the font
	Path string // file path of the input
	Err  error  // underlying error, usually wrapping one of the sentinels
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Font, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Font, e.Err)
}

// Unwrap makes SourceError usable with errors.Is.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Missing creates a SourceError for an input which is not present.
func Missing(font, path string, err error) *SourceError {
	if err == nil {
		return &SourceError{Font: font, Path: path, Err: ErrMissingSource}
	}
	return &SourceError{Font: font, Path: path, Err: fmt.Errorf("%w: %v", ErrMissingSource, err)}
}
