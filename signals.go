package structify

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalCodecGenerated  = capitan.NewSignal("structify.codec.generated", "Codec generated")
	SignalCodecRegistered = capitan.NewSignal("structify.codec.registered", "Custom codec registered")
	SignalGenerateFailed  = capitan.NewSignal("structify.generate.failed", "Type could not be structified")
	SignalPackFailed      = capitan.NewSignal("structify.pack.failed", "Value could not be packed")
	SignalUnpackFailed    = capitan.NewSignal("structify.unpack.failed", "Value could not be unpacked")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeyField    = capitan.NewStringKey("field")
	KeySize     = capitan.NewIntKey("size")
	KeyOverride = capitan.NewStringKey("override")
	KeyError    = capitan.NewErrorKey("error")
)

// emitCodecGenerated emits an event when a codec is frozen.
func emitCodecGenerated(typeName string, size int) {
	capitan.Emit(context.Background(), SignalCodecGenerated,
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitCodecRegistered emits an event when a custom codec is registered.
func emitCodecRegistered(typeName string, override bool) {
	mode := "false"
	if override {
		mode = "true"
	}
	capitan.Emit(context.Background(), SignalCodecRegistered,
		KeyTypeName.Field(typeName),
		KeyOverride.Field(mode),
	)
}

// emitGenerateFailed emits an error event for a type or field that could not
// be resolved.
func emitGenerateFailed(typeName, field string, err error) {
	capitan.Error(context.Background(), SignalGenerateFailed,
		KeyTypeName.Field(typeName),
		KeyField.Field(field),
		KeyError.Field(err),
	)
}

// emitPackFailed emits an error event when a pack was zero-filled.
func emitPackFailed(typeName, field string, err error) {
	capitan.Error(context.Background(), SignalPackFailed,
		KeyTypeName.Field(typeName),
		KeyField.Field(field),
		KeyError.Field(err),
	)
}

// emitUnpackFailed emits an error event when an unpack yielded no value.
func emitUnpackFailed(typeName, field string, err error) {
	capitan.Error(context.Background(), SignalUnpackFailed,
		KeyTypeName.Field(typeName),
		KeyField.Field(field),
		KeyError.Field(err),
	)
}
