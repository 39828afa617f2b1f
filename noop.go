package structify

import (
	"reflect"
)

// noopRecord is the fallback codec for a record that could not be
// structified. It publishes nothing and never yields a value.
type noopRecord[T any] struct {
	typeName string
	err      error
}

func newNoopRecord[T any](typeName string, err error) *noopRecord[T] {
	return &noopRecord[T]{typeName: typeName, err: err}
}

func (s *noopRecord[T]) TypeName() string       { return s.typeName }
func (s *noopRecord[T]) Schema() string         { return "" }
func (s *noopRecord[T]) Size() int              { return 0 }
func (s *noopRecord[T]) Nested() []Codec        { return nil }
func (s *noopRecord[T]) IsImmutable() bool      { return true }
func (s *noopRecord[T]) Pack(*Buffer, T)        {}
func (s *noopRecord[T]) goType() reflect.Type   { return reflect.TypeFor[T]() }
func (s *noopRecord[T]) generationError() error { return s.err }

func (s *noopRecord[T]) Unpack(*Buffer) (T, bool) {
	var zero T
	return zero, false
}

func (s *noopRecord[T]) packValue(*Buffer, reflect.Value) error {
	return nil
}

func (s *noopRecord[T]) unpackValue(*Buffer) (reflect.Value, error) {
	return reflect.Value{}, errAbsent
}

// noopEnum is the fallback codec for an enumeration that could not be
// structified.
type noopEnum[E comparable] struct {
	typeName string
	err      error
}

func newNoopEnum[E comparable](typeName string, err error) *noopEnum[E] {
	return &noopEnum[E]{typeName: typeName, err: err}
}

func (s *noopEnum[E]) TypeName() string       { return s.typeName }
func (s *noopEnum[E]) Schema() string         { return "" }
func (s *noopEnum[E]) Size() int              { return 0 }
func (s *noopEnum[E]) Nested() []Codec        { return nil }
func (s *noopEnum[E]) IsImmutable() bool      { return true }
func (s *noopEnum[E]) Pack(*Buffer, E)        {}
func (s *noopEnum[E]) Variants() []Variant[E] { return nil }
func (s *noopEnum[E]) goType() reflect.Type   { return reflect.TypeFor[E]() }
func (s *noopEnum[E]) generationError() error { return s.err }

func (s *noopEnum[E]) Unpack(*Buffer) (E, bool) {
	var zero E
	return zero, false
}

func (s *noopEnum[E]) Variant(int) (E, error) {
	var zero E
	return zero, ErrUnknownDiscriminant
}

func (s *noopEnum[E]) packValue(*Buffer, reflect.Value) error {
	return nil
}

func (s *noopEnum[E]) unpackValue(*Buffer) (reflect.Value, error) {
	return reflect.Value{}, errAbsent
}

// GenerationError returns the reason c is a no-op codec, or nil if c was
// generated successfully or is not a generated codec.
func GenerationError(c Codec) error {
	if f, ok := c.(interface{ generationError() error }); ok {
		return f.generationError()
	}
	return nil
}
