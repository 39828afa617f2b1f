// Package testing provides test utilities for structify codecs.
package testing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zoobzio/structify"
)

// RoundTrip packs value at a non-zero offset, checks that exactly Size()
// bytes were written and the cursor advanced by Size(), then unpacks and
// compares the result with value. It returns the packed bytes.
func RoundTrip[T any](tb testing.TB, s structify.Struct[T], value T, opts ...cmp.Option) []byte {
	tb.Helper()

	const offset = 3
	size := s.Size()
	buf := structify.NewBuffer(offset + size)
	buf.SetPosition(offset)

	s.Pack(buf, value)
	if got := buf.Position(); got != offset+size {
		tb.Fatalf("Pack() advanced to %d, want %d", got, offset+size)
	}
	if got := buf.Len(); got != offset+size {
		tb.Fatalf("Pack() grew buffer to %d bytes, want %d", got, offset+size)
	}

	buf.SetPosition(offset)
	got, ok := s.Unpack(buf)
	if !ok {
		tb.Fatalf("Unpack() returned no value for %s", s.TypeName())
	}
	if pos := buf.Position(); pos != offset+size {
		tb.Fatalf("Unpack() advanced to %d, want %d", pos, offset+size)
	}
	if diff := cmp.Diff(value, got, opts...); diff != "" {
		tb.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	packed := make([]byte, size)
	copy(packed, buf.Bytes()[offset:])
	return packed
}

// Packed returns the bytes s writes for value.
func Packed[T any](tb testing.TB, s structify.Struct[T], value T) []byte {
	tb.Helper()
	buf := structify.NewBuffer(s.Size())
	s.Pack(buf, value)
	if got := buf.Position(); got != s.Size() {
		tb.Fatalf("Pack() advanced to %d, want %d", got, s.Size())
	}
	return buf.Bytes()
}

// AssertZeroFilled fails unless data[start:start+size] is all zero.
func AssertZeroFilled(tb testing.TB, data []byte, start, size int) {
	tb.Helper()
	if len(data) < start+size {
		tb.Fatalf("buffer holds %d bytes, want at least %d", len(data), start+size)
	}
	for i, b := range data[start : start+size] {
		if b != 0 {
			tb.Fatalf("byte %d = %#x, want 0", start+i, b)
		}
	}
}

// AssertNoop fails unless s is a no-op codec.
func AssertNoop(tb testing.TB, s structify.Codec) {
	tb.Helper()
	if s.Size() != 0 {
		tb.Errorf("Size() = %d, want 0", s.Size())
	}
	if s.Schema() != "" {
		tb.Errorf("Schema() = %q, want empty", s.Schema())
	}
	if len(s.Nested()) != 0 {
		tb.Errorf("Nested() has %d codecs, want none", len(s.Nested()))
	}
	if structify.GenerationError(s) == nil {
		tb.Error("GenerationError() = nil, want failure")
	}
}
