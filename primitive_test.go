package structify

import (
	"reflect"
	"testing"
)

func TestLookupPrimitive(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		name string
		size int
	}{
		{reflect.TypeFor[bool](), TypeBool, 1},
		{reflect.TypeFor[Char](), TypeChar, 2},
		{reflect.TypeFor[int8](), TypeInt8, 1},
		{reflect.TypeFor[uint8](), TypeUint8, 1},
		{reflect.TypeFor[int16](), TypeInt16, 2},
		{reflect.TypeFor[uint16](), TypeUint16, 2},
		{reflect.TypeFor[int32](), TypeInt32, 4},
		{reflect.TypeFor[uint32](), TypeUint32, 4},
		{reflect.TypeFor[int64](), TypeInt64, 8},
		{reflect.TypeFor[uint64](), TypeUint64, 8},
		{reflect.TypeFor[float32](), TypeFloat32, 4},
		{reflect.TypeFor[float64](), TypeFloat64, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := LookupPrimitive(tt.typ)
			if !ok {
				t.Fatalf("LookupPrimitive(%s) not found", tt.typ)
			}
			if p.Name != tt.name || p.Size != tt.size {
				t.Errorf("LookupPrimitive(%s) = %s/%d, want %s/%d", tt.typ, p.Name, p.Size, tt.name, tt.size)
			}

			buf := NewBuffer(0)
			p.Encode(buf, reflect.Zero(tt.typ))
			if buf.Position() != tt.size {
				t.Errorf("Encode() wrote %d bytes, want %d", buf.Position(), tt.size)
			}
			buf.Rewind()
			if v := p.Decode(buf); v.Type() != tt.typ {
				t.Errorf("Decode() type = %s, want %s", v.Type(), tt.typ)
			}
			if !IsPrimitiveName(tt.name) {
				t.Errorf("IsPrimitiveName(%q) = false", tt.name)
			}
		})
	}
}

func TestLookupPrimitive_NotPrimitive(t *testing.T) {
	type Meters float64
	for _, typ := range []reflect.Type{
		reflect.TypeFor[int](),
		reflect.TypeFor[uint](),
		reflect.TypeFor[string](),
		reflect.TypeFor[Meters](),
		reflect.TypeFor[*int32](),
	} {
		if _, ok := LookupPrimitive(typ); ok {
			t.Errorf("LookupPrimitive(%s) found, want not found", typ)
		}
	}
	if IsPrimitiveName("int") {
		t.Error(`IsPrimitiveName("int") = true`)
	}
}
