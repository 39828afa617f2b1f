package structify

import (
	"errors"
	"reflect"

	"github.com/zoobzio/sentinel"
)

// recordStruct is a frozen codec for struct type T.
type recordStruct[T any] struct {
	typ      reflect.Type
	typeName string
	schema   string
	size     int
	fields   []fieldPlan
	nested   []Codec
}

// GenerateRecord builds a codec for struct type T from its exported fields.
//
// Each field's type is resolved against the primitive registry, the custom
// codec registry, and the type's own StructSerializable declaration, in that
// order. If T is not a struct or any field cannot be resolved, every failure
// is reported and a no-op codec is returned.
//
// The result is not cached; callers should keep it.
func GenerateRecord[T any]() Struct[T] {
	rt := reflect.TypeFor[T]()
	typeName := rt.Name()

	if rt.Kind() != reflect.Struct {
		err := newFieldError(ErrNotRecord, typeName, "", errors.New(rt.String()))
		emitGenerateFailed(typeName, "", err)
		return newNoopRecord[T](typeName, err)
	}

	schema := NewSchemaBuilder()
	pipeline := resolveFields(typeName, scanFields(rt, sentinel.Scan[T]()), schema)
	if err := pipeline.err(); err != nil {
		return newNoopRecord[T](typeName, err)
	}

	s := &recordStruct[T]{
		typ:      rt,
		typeName: typeName,
		schema:   schema.Build(),
		size:     pipeline.size,
		fields:   pipeline.fields,
		nested:   pipeline.nested,
	}
	emitCodecGenerated(typeName, s.size)
	return s
}

func (s *recordStruct[T]) TypeName() string     { return s.typeName }
func (s *recordStruct[T]) Schema() string       { return s.schema }
func (s *recordStruct[T]) Size() int            { return s.size }
func (s *recordStruct[T]) IsImmutable() bool    { return true }
func (s *recordStruct[T]) goType() reflect.Type { return s.typ }

// Nested returns a copy of the flattened nested codec list.
func (s *recordStruct[T]) Nested() []Codec {
	return append([]Codec(nil), s.nested...)
}

// Pack writes value's fields in declaration order. If any field cannot be
// encoded, the Size() bytes at the starting position are zeroed and a
// diagnostic is emitted.
func (s *recordStruct[T]) Pack(buf *Buffer, value T) {
	if err := s.packValue(buf, reflect.ValueOf(&value).Elem()); err != nil {
		var fe *FieldError
		field := ""
		if errors.As(err, &fe) {
			field = fe.Field
		}
		emitPackFailed(s.typeName, field, err)
	}
}

func (s *recordStruct[T]) packValue(buf *Buffer, v reflect.Value) error {
	start := buf.Position()
	for i := range s.fields {
		f := &s.fields[i]
		if err := f.encode(buf, v.FieldByIndex(f.index)); err != nil {
			buf.SetPosition(start)
			buf.Zero(s.size)
			return newFieldError(ErrEncodeField, s.typeName, f.name, err)
		}
	}
	return nil
}

// Unpack decodes every field, then assembles T. The buffer advances by
// Size() even when assembly fails.
func (s *recordStruct[T]) Unpack(buf *Buffer) (T, bool) {
	v, err := s.unpackValue(buf)
	if err != nil {
		var fe *FieldError
		field := ""
		if errors.As(err, &fe) {
			field = fe.Field
		}
		emitUnpackFailed(s.typeName, field, err)
		var zero T
		return zero, false
	}
	return v.Interface().(T), true
}

func (s *recordStruct[T]) unpackValue(buf *Buffer) (reflect.Value, error) {
	truncated := buf.Remaining() < s.size
	out := reflect.New(s.typ).Elem()

	var failed error
	for i := range s.fields {
		f := &s.fields[i]
		fv, err := f.decode(buf)
		if failed != nil {
			continue
		}
		if err != nil {
			failed = newFieldError(ErrDecodeConstruction, s.typeName, f.name, err)
			continue
		}
		out.FieldByIndex(f.index).Set(fv)
	}

	if truncated {
		return reflect.Value{}, newFieldError(ErrDecodeConstruction, s.typeName, "", ErrShortBuffer)
	}
	if failed != nil {
		return reflect.Value{}, failed
	}
	if err := s.validate(out); err != nil {
		return reflect.Value{}, err
	}
	return out, nil
}

// validate runs the Validator hook on the assembled value. A panicking
// Validate is a construction failure like any other.
func (s *recordStruct[T]) validate(out reflect.Value) (err error) {
	v, ok := out.Addr().Interface().(Validator)
	if !ok {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = newFieldError(ErrDecodeConstruction, s.typeName, "", recoverError(r))
		}
	}()
	if verr := v.Validate(); verr != nil {
		return newFieldError(ErrDecodeConstruction, s.typeName, "", verr)
	}
	return nil
}
