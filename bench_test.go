package structify_test

import (
	"testing"

	"github.com/zoobzio/structify"
)

func BenchmarkRecord_Pack(b *testing.B) {
	s := structify.GenerateRecord[AllPrimitives]()
	buf := structify.NewBuffer(s.Size())
	v := AllPrimitives{Flag: true, I32: 42, F64: 3.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Rewind()
		s.Pack(buf, v)
	}
}

func BenchmarkRecord_Unpack(b *testing.B) {
	s := structify.GenerateRecord[AllPrimitives]()
	buf := structify.NewBuffer(s.Size())
	s.Pack(buf, AllPrimitives{Flag: true, I32: 42, F64: 3.5})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Rewind()
		_, _ = s.Unpack(buf)
	}
}

func BenchmarkEnum_Unpack(b *testing.B) {
	s := structify.GenerateEnum(
		structify.Variant[Gear]{Name: "LOW", Tag: 0, Value: LowGear},
		structify.Variant[Gear]{Name: "HIGH", Tag: 1, Value: HighGear},
	)
	buf := structify.NewBuffer(s.Size())
	s.Pack(buf, HighGear)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Rewind()
		_, _ = s.Unpack(buf)
	}
}
