package structify

import (
	"errors"
	"fmt"
	"reflect"
	"unicode"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the field naming tag with sentinel
	sentinel.Tag(tagName)
}

// tagName is the struct tag that renames ("struct:\"x\"") or excludes
// ("struct:\"-\"") a field.
const tagName = "struct"

// fieldPlan describes how to encode and decode a single field.
type fieldPlan struct {
	index      []int        // reflect.Value.FieldByIndex access path
	name       string       // schema field name
	schemaType string       // schema type name
	size       int          // width in bytes
	pointer    bool         // true if the field is *X and resolved as X
	elem       reflect.Type // resolved type (X for *X)
	prim       *PrimitiveType
	codec      valueCodec // nil for primitives
}

// fieldSpec is one input descriptor: name, type, and access path.
type fieldSpec struct {
	name  string
	typ   reflect.Type
	index []int
}

// fieldPipeline is the accumulated result of resolving a type's fields.
type fieldPipeline struct {
	fields []fieldPlan
	size   int
	nested []Codec
	errs   []error
}

// scanFields returns the exported fields of struct type rt in declaration order.
func scanFields(rt reflect.Type, spec sentinel.Metadata) []fieldSpec {
	if len(spec.Fields) == 0 && rt.NumField() > 0 {
		spec = reflectMetadata(rt)
	}
	fields := make([]fieldSpec, 0, len(spec.Fields))
	for _, field := range spec.Fields {
		if len(field.Index) == 0 {
			continue
		}
		sf := rt.FieldByIndex(field.Index)
		if !sf.IsExported() {
			continue
		}
		name, ok := field.Tags[tagName]
		if !ok {
			name = sf.Tag.Get(tagName)
		}
		if name == "-" {
			continue
		}
		if name == "" {
			name = lowerCamel(field.Name)
		}
		fields = append(fields, fieldSpec{
			name:  name,
			typ:   field.ReflectType,
			index: append([]int{}, field.Index...),
		})
	}
	return fields
}

// reflectMetadata builds field metadata for rt directly when sentinel has
// none for it.
func reflectMetadata(rt reflect.Type) sentinel.Metadata {
	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tags := make(map[string]string)
		if val, ok := sf.Tag.Lookup(tagName); ok {
			tags[tagName] = val
		}
		spec.Fields = append(spec.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        tags,
		})
	}
	return spec
}

// resolveFields resolves every field, appending statements to schema. All
// fields are visited so every failure is reported in one pass.
func resolveFields(owner string, specs []fieldSpec, schema *SchemaBuilder) *fieldPipeline {
	p := &fieldPipeline{}
	for _, fs := range specs {
		plan, err := resolveField(fs)
		if err != nil {
			cause := err
			// The bare sentinel means no resolution applied; name the type instead.
			if err == ErrUnresolvableFieldType {
				cause = errors.New(fs.typ.String())
			}
			ferr := newFieldError(ErrUnresolvableFieldType, owner, fs.name, cause)
			emitGenerateFailed(owner, fs.name, ferr)
			p.errs = append(p.errs, ferr)
			continue
		}
		schema.AddField(plan.name, plan.schemaType)
		p.size += plan.size
		p.fields = append(p.fields, plan)
		if plan.codec != nil {
			p.addNested(plan.codec)
		}
	}
	return p
}

// addNested appends c and its nested codecs, each once, in first-seen order.
func (p *fieldPipeline) addNested(c Codec) {
	p.addOnce(c)
	for _, n := range c.Nested() {
		p.addOnce(n)
	}
}

func (p *fieldPipeline) addOnce(c Codec) {
	for _, n := range p.nested {
		if sameCodec(n, c) {
			return
		}
	}
	p.nested = append(p.nested, c)
}

// sameCodec compares codec identity without panicking on codecs whose
// dynamic type is not comparable.
func sameCodec(a, b Codec) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() || !ra.Comparable() {
		return false
	}
	return ra.Equal(rb)
}

// err returns the joined field failures, or nil.
func (p *fieldPipeline) err() error {
	return errors.Join(p.errs...)
}

// resolveField looks up fs.typ as a primitive, then a registered codec, then
// a declared codec. A no-op codec does not resolve its field.
func resolveField(fs fieldSpec) (fieldPlan, error) {
	plan := fieldPlan{index: fs.index, name: fs.name, elem: fs.typ}
	if fs.typ.Kind() == reflect.Pointer {
		plan.pointer = true
		plan.elem = fs.typ.Elem()
	}

	if prim, ok := LookupPrimitive(plan.elem); ok {
		plan.prim = &prim
		plan.schemaType = prim.Name
		plan.size = prim.Size
		return plan, nil
	}

	codec, ok := lookupCustom(plan.elem)
	if !ok {
		var err error
		codec, err = extractDeclared(plan.elem)
		if err != nil {
			return plan, err
		}
	}
	if gerr := GenerationError(codec); gerr != nil {
		return plan, fmt.Errorf("%s has no usable codec: %w", plan.elem, gerr)
	}
	plan.codec = codec
	plan.schemaType = codec.TypeName()
	plan.size = codec.Size()
	return plan, nil
}

// encode writes the field value fv.
func (f *fieldPlan) encode(buf *Buffer, fv reflect.Value) error {
	if f.pointer {
		if fv.IsNil() {
			return ErrNilValue
		}
		fv = fv.Elem()
	}
	if f.prim != nil {
		f.prim.Encode(buf, fv)
		return nil
	}
	return f.codec.packValue(buf, fv)
}

// decode reads one field value. The buffer advances by f.size on every path.
func (f *fieldPlan) decode(buf *Buffer) (reflect.Value, error) {
	var v reflect.Value
	if f.prim != nil {
		v = f.prim.Decode(buf)
	} else {
		var err error
		v, err = f.codec.unpackValue(buf)
		if err != nil {
			if f.pointer && isAbsent(err) {
				return reflect.Zero(reflect.PointerTo(f.elem)), nil
			}
			return reflect.Value{}, err
		}
	}
	if f.pointer {
		p := reflect.New(f.elem)
		p.Elem().Set(v)
		return p, nil
	}
	return v, nil
}

// isAbsent reports whether a nested decode merely produced no value.
func isAbsent(err error) bool {
	return errors.Is(err, errAbsent) || errors.Is(err, ErrUnknownDiscriminant)
}

// lowerCamel lowers the leading run of capitals: "ID" -> "id",
// "URLPath" -> "urlPath", "FirmwareMajor" -> "firmwareMajor".
func lowerCamel(name string) string {
	runes := []rune(name)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	switch {
	case n == 0:
		return name
	case n > 1 && n < len(runes) && unicode.IsLower(runes[n]):
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
