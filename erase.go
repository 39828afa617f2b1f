package structify

import (
	"fmt"
	"reflect"
)

// valueCodec is the reflective form of a codec used inside generated
// pipelines. Generated codecs implement it directly; hand-written codecs are
// adapted.
type valueCodec interface {
	Codec
	goType() reflect.Type
	packValue(buf *Buffer, v reflect.Value) error
	unpackValue(buf *Buffer) (reflect.Value, error)
}

var (
	bufferType       = reflect.TypeFor[*Buffer]()
	boolType         = reflect.TypeFor[bool]()
	serializableType = reflect.TypeFor[StructSerializable]()
)

// errAbsent reports that a nested codec produced no value.
var errAbsent = fmt.Errorf("%w: nested value absent", ErrDecodeConstruction)

// typedCodec adapts a hand-written Struct[T].
type typedCodec[T any] struct {
	Struct[T]
}

func adaptStruct[T any](s Struct[T]) valueCodec {
	if vc, ok := s.(valueCodec); ok && vc.goType() == reflect.TypeFor[T]() {
		return vc
	}
	return &typedCodec[T]{Struct: s}
}

func (c *typedCodec[T]) goType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (c *typedCodec[T]) packValue(buf *Buffer, v reflect.Value) (err error) {
	start := buf.Position()
	defer func() {
		if r := recover(); r != nil {
			buf.SetPosition(start)
			buf.Zero(c.Size())
			err = recoverError(r)
		}
	}()
	c.Pack(buf, v.Interface().(T))
	return nil
}

func (c *typedCodec[T]) unpackValue(buf *Buffer) (out reflect.Value, err error) {
	start := buf.Position()
	defer func() {
		if r := recover(); r != nil {
			buf.SetPosition(start + c.Size())
			err = recoverError(r)
		}
	}()
	value, ok := c.Unpack(buf)
	if !ok {
		return reflect.Value{}, errAbsent
	}
	return reflect.ValueOf(&value).Elem(), nil
}

// methodCodec adapts a codec for t whose Pack and Unpack methods are only
// reachable by reflection, as returned from StructSerializable.
type methodCodec struct {
	Codec
	typ    reflect.Type
	pack   reflect.Value
	unpack reflect.Value
}

func (c *methodCodec) goType() reflect.Type {
	return c.typ
}

func (c *methodCodec) packValue(buf *Buffer, v reflect.Value) (err error) {
	start := buf.Position()
	defer func() {
		if r := recover(); r != nil {
			buf.SetPosition(start)
			buf.Zero(c.Size())
			err = recoverError(r)
		}
	}()
	c.pack.Call([]reflect.Value{reflect.ValueOf(buf), v})
	return nil
}

func (c *methodCodec) unpackValue(buf *Buffer) (out reflect.Value, err error) {
	start := buf.Position()
	defer func() {
		if r := recover(); r != nil {
			buf.SetPosition(start + c.Size())
			err = recoverError(r)
		}
	}()
	res := c.unpack.Call([]reflect.Value{reflect.ValueOf(buf)})
	if !res[1].Bool() {
		return reflect.Value{}, errAbsent
	}
	return res[0], nil
}

// adaptCodec returns the reflective form of c, which must be a codec for t.
func adaptCodec(c Codec, t reflect.Type) (valueCodec, error) {
	if c == nil {
		return nil, fmt.Errorf("codec for %s is nil", t)
	}
	if vc, ok := c.(valueCodec); ok {
		if vc.goType() != t {
			return nil, fmt.Errorf("codec is for %s, not %s", vc.goType(), t)
		}
		return vc, nil
	}

	rv := reflect.ValueOf(c)
	pack := rv.MethodByName("Pack")
	unpack := rv.MethodByName("Unpack")
	if !pack.IsValid() || !unpack.IsValid() {
		return nil, fmt.Errorf("codec %T has no Pack/Unpack methods", c)
	}
	pt, ut := pack.Type(), unpack.Type()
	if pt.NumIn() != 2 || pt.NumOut() != 0 || pt.In(0) != bufferType || pt.In(1) != t {
		return nil, fmt.Errorf("codec %T: Pack is %s, want func(*Buffer, %s)", c, pt, t)
	}
	if ut.NumIn() != 1 || ut.NumOut() != 2 || ut.In(0) != bufferType || ut.Out(0) != t || ut.Out(1) != boolType {
		return nil, fmt.Errorf("codec %T: Unpack is %s, want func(*Buffer) (%s, bool)", c, ut, t)
	}
	return &methodCodec{Codec: c, typ: t, pack: pack, unpack: unpack}, nil
}

// declaresCodec reports whether t or *t implements StructSerializable.
func declaresCodec(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}
	return t.Implements(serializableType) || reflect.PointerTo(t).Implements(serializableType)
}

// extractDeclared invokes t's StructSerializable declaration. Panics and
// wrong-shaped results are reported as ErrDeclaredCodec.
func extractDeclared(t reflect.Type) (vc valueCodec, err error) {
	var recv reflect.Value
	switch {
	case t.Kind() == reflect.Interface:
		return nil, ErrUnresolvableFieldType
	case t.Implements(serializableType):
		recv = reflect.Zero(t)
	case reflect.PointerTo(t).Implements(serializableType):
		recv = reflect.New(t)
	default:
		return nil, ErrUnresolvableFieldType
	}

	defer func() {
		if r := recover(); r != nil {
			vc = nil
			err = fmt.Errorf("%w from %s: %v", ErrDeclaredCodec, t, recoverError(r))
		}
	}()

	codec := recv.Interface().(StructSerializable).StructCodec()
	vc, err = adaptCodec(codec, t)
	if err != nil {
		return nil, fmt.Errorf("%w from %s: %v", ErrDeclaredCodec, t, err)
	}
	return vc, nil
}
