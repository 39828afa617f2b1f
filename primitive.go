package structify

import (
	"reflect"
)

// Char is a single UTF-16 code unit, encoded as 2 bytes with schema type "char".
type Char uint16

// Schema type names for the built-in primitives.
const (
	TypeBool    = "bool"
	TypeChar    = "char"
	TypeInt8    = "int8"
	TypeUint8   = "uint8"
	TypeInt16   = "int16"
	TypeUint16  = "uint16"
	TypeInt32   = "int32"
	TypeUint32  = "uint32"
	TypeInt64   = "int64"
	TypeUint64  = "uint64"
	TypeFloat32 = "float32"
	TypeFloat64 = "float64"
)

// PrimitiveType describes how a built-in scalar is laid out on the wire.
type PrimitiveType struct {
	Name   string // schema type name
	Size   int    // width in bytes
	Decode func(buf *Buffer) reflect.Value
	Encode func(buf *Buffer, v reflect.Value)
}

// primitives is populated once at init and read-only afterward.
// Keys are exact types: named types over a basic kind are not primitives.
var primitives = map[reflect.Type]PrimitiveType{}

func addPrimitive[T any](name string, size int, get func(*Buffer) T, put func(*Buffer, T)) {
	primitives[reflect.TypeFor[T]()] = PrimitiveType{
		Name: name,
		Size: size,
		Decode: func(buf *Buffer) reflect.Value {
			return reflect.ValueOf(get(buf))
		},
		Encode: func(buf *Buffer, v reflect.Value) {
			put(buf, v.Interface().(T))
		},
	}
}

func init() {
	addPrimitive(TypeBool, 1, (*Buffer).GetBool, (*Buffer).PutBool)
	addPrimitive(TypeInt8, 1, (*Buffer).GetInt8, (*Buffer).PutInt8)
	addPrimitive(TypeUint8, 1, (*Buffer).GetUint8, (*Buffer).PutUint8)
	addPrimitive(TypeInt16, 2, (*Buffer).GetInt16, (*Buffer).PutInt16)
	addPrimitive(TypeUint16, 2, (*Buffer).GetUint16, (*Buffer).PutUint16)
	addPrimitive(TypeInt32, 4, (*Buffer).GetInt32, (*Buffer).PutInt32)
	addPrimitive(TypeUint32, 4, (*Buffer).GetUint32, (*Buffer).PutUint32)
	addPrimitive(TypeInt64, 8, (*Buffer).GetInt64, (*Buffer).PutInt64)
	addPrimitive(TypeUint64, 8, (*Buffer).GetUint64, (*Buffer).PutUint64)
	addPrimitive(TypeFloat32, 4, (*Buffer).GetFloat32, (*Buffer).PutFloat32)
	addPrimitive(TypeFloat64, 8, (*Buffer).GetFloat64, (*Buffer).PutFloat64)
	addPrimitive(TypeChar, 2,
		func(buf *Buffer) Char { return Char(buf.GetUint16()) },
		func(buf *Buffer, c Char) { buf.PutUint16(uint16(c)) },
	)

	for _, p := range primitives {
		validPrimitiveNames[p.Name] = true
	}
}

// validPrimitiveNames contains every registered schema type name.
var validPrimitiveNames = map[string]bool{}

// LookupPrimitive returns the primitive layout registered for t.
func LookupPrimitive(t reflect.Type) (PrimitiveType, bool) {
	p, ok := primitives[t]
	return p, ok
}

// IsPrimitiveName returns true if name is the schema type of a built-in primitive.
func IsPrimitiveName(name string) bool {
	return validPrimitiveNames[name]
}
