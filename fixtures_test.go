package structify_test

import (
	"errors"
	"sync"

	"github.com/zoobzio/structify"
)

// Point is a flat record of primitives.
type Point struct {
	X int32
	Y int32
}

// Inner is registered as a custom codec by the nesting tests.
type Inner struct {
	A int16
	B int16
}

// Outer nests Inner.
type Outer struct {
	Inner Inner
	ID    int32
}

// Unregistered has no codec anywhere.
type Unregistered struct {
	V int32
}

// Outer2 has a field that cannot be resolved.
type Outer2 struct {
	Weird Unregistered
}

// Leaf, Mid, and Top form a two-level nesting chain.
type Leaf struct {
	V uint8
}

type Mid struct {
	Leaf Leaf
	W    int16
}

type Top struct {
	Mid  Mid
	Leaf Leaf
}

// AllPrimitives covers every built-in scalar.
type AllPrimitives struct {
	Flag  bool
	Code  structify.Char
	I8    int8
	U8    uint8
	I16   int16
	U16   uint16
	I32   int32
	U32   uint32
	I64   int64
	U64   uint64
	F32   float32
	F64   float64
	Extra uint8 `struct:"-"`
}

// Tagged exercises field naming.
type Tagged struct {
	Speed   float32 `struct:"speed_mps"`
	URLPath uint8
	ID      uint16
	hidden  int32 // unexported fields are not part of the layout
}

// Reading has an optional field.
type Reading struct {
	Sensor *int32
	Temp   float32
}

// Range rejects inverted bounds on decode.
type Range struct {
	Lo int32
	Hi int32
}

func (r Range) Validate() error {
	if r.Lo > r.Hi {
		return errors.New("inverted range")
	}
	return nil
}

// Audited panics from its validation hook.
type Audited struct {
	Count int32
}

func (*Audited) Validate() error { panic("audit unavailable") }

// BadInner cannot be structified; HoldsBad depends on it.
type BadInner struct {
	U Unregistered
}

type HoldsBad struct {
	In BadInner
	ID int32
}

// Gauge declares its own codec.
type Gauge struct {
	Value float64
}

var gaugeStruct = sync.OnceValue(func() structify.Struct[Gauge] {
	return structify.GenerateRecord[Gauge]()
})

func (Gauge) StructCodec() structify.Codec { return gaugeStruct() }

// Panel uses the declared Gauge codec.
type Panel struct {
	Left  Gauge
	Right Gauge
}

// Broken declares a codec but returns nil.
type Broken struct {
	X int32
}

func (Broken) StructCodec() structify.Codec { return nil }

// Mismatched declares a codec for a different type.
type Mismatched struct {
	X int32
}

func (Mismatched) StructCodec() structify.Codec { return structify.GenerateRecord[Point]() }

// Panicky panics from its declaration.
type Panicky struct {
	X int32
}

func (*Panicky) StructCodec() structify.Codec { panic("declaration unavailable") }

// HasBroken, HasMismatched, and HasPanicky wrap bad declarations.
type HasBroken struct {
	B Broken
}

type HasMismatched struct {
	M Mismatched
}

type HasPanicky struct {
	P Panicky
}

// Celsius has a hand-written codec registered with Register.
type Celsius float64

type celsiusStruct struct{}

func (celsiusStruct) TypeName() string          { return "Celsius" }
func (celsiusStruct) Schema() string            { return "float64 value;" }
func (celsiusStruct) Size() int                 { return 8 }
func (celsiusStruct) Nested() []structify.Codec { return nil }
func (celsiusStruct) IsImmutable() bool         { return true }

func (celsiusStruct) Pack(buf *structify.Buffer, c Celsius) {
	buf.PutFloat64(float64(c))
}

func (celsiusStruct) Unpack(buf *structify.Buffer) (Celsius, bool) {
	return Celsius(buf.GetFloat64()), true
}

// Kelvin declares a hand-written codec reached through reflection.
type Kelvin float32

type kelvinStruct struct{}

func (kelvinStruct) TypeName() string          { return "Kelvin" }
func (kelvinStruct) Schema() string            { return "float32 value;" }
func (kelvinStruct) Size() int                 { return 4 }
func (kelvinStruct) Nested() []structify.Codec { return nil }
func (kelvinStruct) IsImmutable() bool         { return true }

func (kelvinStruct) Pack(buf *structify.Buffer, k Kelvin) {
	if k < 0 {
		panic("negative kelvin")
	}
	buf.PutFloat32(float32(k))
}

func (kelvinStruct) Unpack(buf *structify.Buffer) (Kelvin, bool) {
	k := Kelvin(buf.GetFloat32())
	return k, k >= 0
}

func (Kelvin) StructCodec() structify.Codec { return kelvinStruct{} }

// Climate combines hand-written codecs.
type Climate struct {
	Indoor  Celsius
	Outdoor Kelvin
}

// Color is a plain enumeration.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
)

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	}
	return "UNKNOWN"
}

// Gear is an enumeration whose variants share a payload.
type Gear struct {
	Ratio float64
	Teeth uint8
}

var (
	LowGear  = Gear{Ratio: 3.5, Teeth: 12}
	HighGear = Gear{Ratio: 1.25, Teeth: 30}
)

// Status nests an enumeration, once required and once optional.
type Status struct {
	Color Color
	Alt   *Color
}
