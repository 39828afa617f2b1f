// Package structify derives fixed-layout binary codecs for Go value types.
//
// A codec ("struct") describes a type with a compact textual schema, a fixed
// byte width, and Pack/Unpack operations over a Buffer. Codecs are derived
// procedurally from a type's fields instead of being written by hand.
//
// # Records
//
// Any struct whose exported fields resolve to a primitive, a registered
// codec, or a type that declares its own codec can be structified:
//
//	type Point struct {
//	    X int32 `struct:"x"`
//	    Y int32 `struct:"y"`
//	}
//
//	var pointStruct = structify.GenerateRecord[Point]()
//
//	pointStruct.Schema() // "int32 x;int32 y;"
//	pointStruct.Size()   // 8
//
// # Enumerations
//
// Enumerations are closed sets of comparable values with a 1-byte tag:
//
//	type Color uint8
//
//	var colorStruct = structify.GenerateEnum(structify.Ordinals(Red, Green, Blue)...)
//
//	colorStruct.Schema() // "enum {RED=0,GREEN=1,BLUE=2} int8 variant;"
//
// When the enumeration type is a struct, its exported fields form a payload
// shared by every variant and are appended to the schema after the tag.
//
// # Resolution
//
// Field types are resolved in order against the primitive registry, the
// custom codec registry (see Register), and finally the type's own
// StructSerializable declaration. If any field fails to resolve the generator
// returns a zero-size no-op codec and emits a diagnostic; GenerationError
// reports the cause.
//
// # Failure behavior
//
// Pack always writes exactly Size() bytes: if a field cannot be encoded the
// region is rewound and zero-filled. Unpack always advances the buffer by
// Size() bytes and reports an absent value on failure.
//
// Codecs are immutable and safe for concurrent use on independent buffers.
// The engine does not cache codecs; hold them in package-level variables.
package structify

// Codec is the type-erased contract shared by every generated codec.
type Codec interface {
	// TypeName returns the identifier used for schema registration.
	TypeName() string

	// Schema returns the schema text describing the layout.
	Schema() string

	// Size returns the fixed number of bytes a packed value occupies.
	Size() int

	// Nested returns every codec this codec depends on, transitively
	// flattened in first-seen order.
	Nested() []Codec

	// IsImmutable reports whether unpacked values may be shared.
	IsImmutable() bool
}

// Struct is a fixed-size binary codec for values of type T.
type Struct[T any] interface {
	Codec

	// Pack writes value at the buffer's position and advances it by Size().
	// On failure the region is zero-filled.
	Pack(buf *Buffer, value T)

	// Unpack reads a value at the buffer's position. The buffer always
	// advances by Size(); false reports an absent value.
	Unpack(buf *Buffer) (T, bool)
}

// EnumStruct is a codec for an enumeration of comparable values.
type EnumStruct[E comparable] interface {
	Struct[E]

	// Variants returns the variant table in declaration order.
	Variants() []Variant[E]

	// Variant returns the value registered for tag.
	Variant(tag int) (E, error)
}

// StructSerializable marks a type that declares its own authoritative codec.
// It may be implemented on T or *T; the method is invoked on a zero value and
// must return a codec for T.
//
// The codec is accepted when it was produced by this package for T, or when
// it exposes Pack(*Buffer, T) and Unpack(*Buffer) (T, bool) methods.
type StructSerializable interface {
	StructCodec() Codec
}

// Validator is implemented by records that reject invalid field combinations.
// Unpack calls Validate on the assembled value; an error makes the value absent.
type Validator interface {
	Validate() error
}
