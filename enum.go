package structify

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/zoobzio/sentinel"
)

// variantFieldName names the tag statement in every enumeration schema.
const variantFieldName = "variant"

// maxDiscriminant is the largest tag representable in the 1-byte tag.
const maxDiscriminant = 0xff

// Variant is one member of an enumeration.
type Variant[E comparable] struct {
	Name  string // schema name of the variant
	Tag   int    // discriminant written on the wire, 0..255
	Value E
}

// Ordinals returns variants for values with tags assigned in declaration
// order. Names come from fmt.Stringer when E implements it, otherwise from
// fmt.Sprint.
func Ordinals[E comparable](values ...E) []Variant[E] {
	variants := make([]Variant[E], len(values))
	for i, v := range values {
		name := fmt.Sprint(v)
		if s, ok := any(v).(fmt.Stringer); ok {
			name = s.String()
		}
		variants[i] = Variant[E]{Name: name, Tag: i, Value: v}
	}
	return variants
}

// enumStruct is a frozen codec for enumeration type E.
type enumStruct[E comparable] struct {
	typ      reflect.Type
	typeName string
	schema   string
	size     int
	variants []Variant[E]
	byTag    map[int]E
	byValue  map[E]int
	fields   []fieldPlan
	nested   []Codec
}

// GenerateEnum builds a codec for the enumeration described by variants.
//
// The tag occupies one byte and is written first. When E is a struct, its
// exported fields form a payload shared by every variant and are written
// after the tag; for other kinds there is no payload.
//
// If there are no variants, a tag is out of range or repeated, a value is
// repeated, or a payload field cannot be resolved, a no-op codec is returned.
func GenerateEnum[E comparable](variants ...Variant[E]) EnumStruct[E] {
	rt := reflect.TypeFor[E]()
	typeName := rt.Name()

	if len(variants) == 0 {
		err := newFieldError(ErrEmptyEnumeration, typeName, "", nil)
		emitGenerateFailed(typeName, "", err)
		return newNoopEnum[E](typeName, err)
	}

	s := &enumStruct[E]{
		typ:      rt,
		typeName: typeName,
		variants: append([]Variant[E](nil), variants...),
		byTag:    make(map[int]E, len(variants)),
		byValue:  make(map[E]int, len(variants)),
	}

	var errs []error
	tagField := NewEnumFieldBuilder(variantFieldName)
	for _, v := range variants {
		if err := s.addVariant(v); err != nil {
			emitGenerateFailed(typeName, v.Name, err)
			errs = append(errs, err)
			continue
		}
		tagField.AddVariant(v.Name, v.Tag)
	}

	schema := NewSchemaBuilder().AddEnumField(tagField)
	var specs []fieldSpec
	if rt.Kind() == reflect.Struct {
		specs = scanFields(rt, sentinel.Scan[E]())
	}
	pipeline := resolveFields(typeName, specs, schema)
	errs = append(errs, pipeline.errs...)

	if err := errors.Join(errs...); err != nil {
		return newNoopEnum[E](typeName, err)
	}

	s.schema = schema.Build()
	s.size = 1 + pipeline.size
	s.fields = pipeline.fields
	s.nested = pipeline.nested
	emitCodecGenerated(typeName, s.size)
	return s
}

func (s *enumStruct[E]) addVariant(v Variant[E]) error {
	if v.Tag < 0 || v.Tag > maxDiscriminant {
		return newFieldError(ErrInvalidDiscriminant, s.typeName, v.Name,
			fmt.Errorf("tag %d outside 0..%d", v.Tag, maxDiscriminant))
	}
	if _, dup := s.byTag[v.Tag]; dup {
		return newFieldError(ErrInvalidDiscriminant, s.typeName, v.Name,
			fmt.Errorf("tag %d already assigned", v.Tag))
	}
	if _, dup := s.byValue[v.Value]; dup {
		return newFieldError(ErrInvalidDiscriminant, s.typeName, v.Name,
			fmt.Errorf("value %v already assigned", v.Value))
	}
	s.byTag[v.Tag] = v.Value
	s.byValue[v.Value] = v.Tag
	return nil
}

func (s *enumStruct[E]) TypeName() string     { return s.typeName }
func (s *enumStruct[E]) Schema() string       { return s.schema }
func (s *enumStruct[E]) Size() int            { return s.size }
func (s *enumStruct[E]) IsImmutable() bool    { return true }
func (s *enumStruct[E]) goType() reflect.Type { return s.typ }

// Nested returns a copy of the flattened nested codec list.
func (s *enumStruct[E]) Nested() []Codec {
	return append([]Codec(nil), s.nested...)
}

// Variants returns a copy of the variant table in declaration order.
func (s *enumStruct[E]) Variants() []Variant[E] {
	return append([]Variant[E](nil), s.variants...)
}

// Variant returns the value registered for tag.
func (s *enumStruct[E]) Variant(tag int) (E, error) {
	v, ok := s.byTag[tag]
	if !ok {
		return v, fmt.Errorf("%w: %s tag %d", ErrUnknownDiscriminant, s.typeName, tag)
	}
	return v, nil
}

// Pack writes value's tag followed by its payload fields. A value that is
// not a variant, or a payload field that cannot be encoded, zero-fills the
// Size() bytes at the starting position.
func (s *enumStruct[E]) Pack(buf *Buffer, value E) {
	if err := s.packValue(buf, reflect.ValueOf(&value).Elem()); err != nil {
		var fe *FieldError
		field := ""
		if errors.As(err, &fe) {
			field = fe.Field
		}
		emitPackFailed(s.typeName, field, err)
	}
}

func (s *enumStruct[E]) packValue(buf *Buffer, v reflect.Value) error {
	start := buf.Position()
	fail := func(field string, err error) error {
		buf.SetPosition(start)
		buf.Zero(s.size)
		return newFieldError(ErrEncodeField, s.typeName, field, err)
	}

	tag, ok := s.byValue[v.Interface().(E)]
	if !ok {
		return fail(variantFieldName, fmt.Errorf("%w: %v", ErrUnknownVariant, v.Interface()))
	}
	buf.PutUint8(uint8(tag))

	for i := range s.fields {
		f := &s.fields[i]
		if err := f.encode(buf, v.FieldByIndex(f.index)); err != nil {
			return fail(f.name, err)
		}
	}
	return nil
}

// Unpack reads the tag and skips the payload, so the buffer always advances
// by Size(). An unrecognized tag yields no value and no diagnostic.
func (s *enumStruct[E]) Unpack(buf *Buffer) (E, bool) {
	v, err := s.unpackValue(buf)
	if err != nil {
		if errors.Is(err, ErrShortBuffer) {
			emitUnpackFailed(s.typeName, variantFieldName, err)
		}
		var zero E
		return zero, false
	}
	return v.Interface().(E), true
}

func (s *enumStruct[E]) unpackValue(buf *Buffer) (reflect.Value, error) {
	truncated := buf.Remaining() < s.size
	tag := int(buf.GetUint8())
	// The payload is implied by the tag; discard it without instance state.
	buf.Skip(s.size - 1)

	if truncated {
		return reflect.Value{}, newFieldError(ErrDecodeConstruction, s.typeName, variantFieldName, ErrShortBuffer)
	}
	value, err := s.Variant(tag)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(&value).Elem(), nil
}
