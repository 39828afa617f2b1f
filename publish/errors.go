package publish

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrMarshal indicates the encoding failed to marshal a catalog.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the encoding failed to unmarshal a catalog.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// EncodingError represents a marshal/unmarshal error.
type EncodingError struct {
	Err         error  // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string // Content type of the encoding
	Cause       error  // Original error from the encoding
}

func (e *EncodingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// newEncodingError creates an EncodingError for marshal/unmarshal failures.
func newEncodingError(sentinel error, contentType string, cause error) error {
	return &EncodingError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}
