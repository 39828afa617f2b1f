package structify

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnresolvableFieldType indicates a field type is neither a primitive,
	// a registered codec, nor a type that declares its own codec.
	ErrUnresolvableFieldType = errors.New("unresolvable field type")

	// ErrDeclaredCodec indicates a StructSerializable type did not yield a
	// usable codec for itself.
	ErrDeclaredCodec = errors.New("could not extract declared codec")

	// ErrNotRecord indicates a record codec was requested for a non-struct type.
	ErrNotRecord = errors.New("type is not a struct")

	// ErrEmptyEnumeration indicates an enumeration has no variants.
	ErrEmptyEnumeration = errors.New("enumeration has no variants")

	// ErrInvalidDiscriminant indicates a variant tag is out of range or repeated.
	ErrInvalidDiscriminant = errors.New("invalid discriminant")

	// ErrEncodeField indicates a field value could not be packed.
	ErrEncodeField = errors.New("encode field failed")

	// ErrDecodeConstruction indicates a value could not be assembled from
	// its decoded fields.
	ErrDecodeConstruction = errors.New("decode construction failed")

	// ErrUnknownDiscriminant indicates a tag has no variant.
	ErrUnknownDiscriminant = errors.New("unknown discriminant")

	// ErrUnknownVariant indicates a value is not one of the enumeration's variants.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrNilValue indicates a pointer field held nil.
	ErrNilValue = errors.New("value is nil")

	// ErrShortBuffer indicates fewer bytes remained than the codec's size.
	ErrShortBuffer = errors.New("short buffer")
)

// FieldError represents a failure attributed to one field of a type.
// It wraps a sentinel error with the owning type and field name.
type FieldError struct {
	Err   error  // Underlying sentinel error (ErrUnresolvableFieldType, etc.)
	Type  string // Owning type name
	Field string // Field name, empty for type-level failures
	Cause error  // Original error, if any
}

func (e *FieldError) Error() string {
	where := e.Type
	if e.Field != "" {
		where = e.Type + "#" + e.Field
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", where, e.Err.Error())
}

func (e *FieldError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// newFieldError creates a FieldError for typ#field.
func newFieldError(sentinel error, typ, field string, cause error) error {
	return &FieldError{
		Err:   sentinel,
		Type:  typ,
		Field: field,
		Cause: cause,
	}
}

// recoverError converts a recovered panic value into an error.
func recoverError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
