package structify

import (
	"errors"
	"testing"
)

func TestEmitCodecGenerated(_ *testing.T) {
	// Should not panic
	emitCodecGenerated("Point", 8)
}

func TestEmitCodecRegistered(_ *testing.T) {
	emitCodecRegistered("Inner", false)
	emitCodecRegistered("Inner", true)
}

func TestEmitGenerateFailed(_ *testing.T) {
	emitGenerateFailed("Outer2", "weird", errors.New("test error"))
}

func TestEmitPackFailed(_ *testing.T) {
	emitPackFailed("Reading", "sensor", errors.New("test error"))
}

func TestEmitUnpackFailed(_ *testing.T) {
	emitUnpackFailed("Range", "", errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalCodecGenerated", SignalCodecGenerated},
		{"SignalCodecRegistered", SignalCodecRegistered},
		{"SignalGenerateFailed", SignalGenerateFailed},
		{"SignalPackFailed", SignalPackFailed},
		{"SignalUnpackFailed", SignalUnpackFailed},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyTypeName", KeyTypeName},
		{"KeyField", KeyField},
		{"KeySize", KeySize},
		{"KeyOverride", KeyOverride},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
