package structify

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]valueCodec)
	registryMu sync.RWMutex
)

// Register adds a hand-written codec for T to the custom codec registry.
//
// With override set, the codec replaces any existing entry. Otherwise it is
// added only if no entry exists and T does not declare its own codec through
// StructSerializable, so a type's authoritative codec is never shadowed.
//
// Register codecs before generating codecs that depend on them.
func Register[T any](s Struct[T], override bool) {
	typ := reflect.TypeFor[T]()
	vc := adaptStruct(s)

	registryMu.Lock()
	defer registryMu.Unlock()

	if !override {
		if _, exists := registry[typ]; exists || declaresCodec(typ) {
			return
		}
	}
	registry[typ] = vc
	emitCodecRegistered(s.TypeName(), override)
}

// Lookup returns the custom codec registered for t.
func Lookup(t reflect.Type) (Codec, bool) {
	vc, ok := lookupCustom(t)
	if !ok {
		return nil, false
	}
	return vc, true
}

func lookupCustom(t reflect.Type) (valueCodec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	vc, ok := registry[t]
	return vc, ok
}

// Reset clears the custom codec registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]valueCodec)
}
