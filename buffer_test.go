package structify

import (
	"bytes"
	"math"
	"testing"
)

func TestBuffer_LittleEndian(t *testing.T) {
	buf := NewBuffer(0)
	buf.PutUint16(0x0102)
	buf.PutInt32(-2)
	buf.PutUint64(0x0102030405060708)

	want := []byte{
		0x02, 0x01,
		0xfe, 0xff, 0xff, 0xff,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Bytes() = % x, want % x", buf.Bytes(), want)
	}
}

func TestBuffer_RoundTrip(t *testing.T) {
	buf := NewBuffer(0)
	buf.PutBool(true)
	buf.PutInt8(-3)
	buf.PutUint8(250)
	buf.PutInt16(-300)
	buf.PutUint16(60000)
	buf.PutInt32(math.MinInt32)
	buf.PutUint32(math.MaxUint32)
	buf.PutInt64(math.MinInt64)
	buf.PutUint64(math.MaxUint64)
	buf.PutFloat32(3.25)
	buf.PutFloat64(math.Inf(-1))
	buf.Rewind()

	if !buf.GetBool() {
		t.Error("GetBool() = false")
	}
	if v := buf.GetInt8(); v != -3 {
		t.Errorf("GetInt8() = %d", v)
	}
	if v := buf.GetUint8(); v != 250 {
		t.Errorf("GetUint8() = %d", v)
	}
	if v := buf.GetInt16(); v != -300 {
		t.Errorf("GetInt16() = %d", v)
	}
	if v := buf.GetUint16(); v != 60000 {
		t.Errorf("GetUint16() = %d", v)
	}
	if v := buf.GetInt32(); v != math.MinInt32 {
		t.Errorf("GetInt32() = %d", v)
	}
	if v := buf.GetUint32(); v != math.MaxUint32 {
		t.Errorf("GetUint32() = %d", v)
	}
	if v := buf.GetInt64(); v != math.MinInt64 {
		t.Errorf("GetInt64() = %d", v)
	}
	if v := buf.GetUint64(); v != math.MaxUint64 {
		t.Errorf("GetUint64() = %d", v)
	}
	if v := buf.GetFloat32(); v != 3.25 {
		t.Errorf("GetFloat32() = %v", v)
	}
	if v := buf.GetFloat64(); !math.IsInf(v, -1) {
		t.Errorf("GetFloat64() = %v", v)
	}
	if buf.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", buf.Remaining())
	}
}

func TestBuffer_GetBoolNonZero(t *testing.T) {
	buf := WrapBuffer([]byte{0x02})
	if !buf.GetBool() {
		t.Error("GetBool() on 0x02 = false, want true")
	}
}

func TestBuffer_ReadPastEnd(t *testing.T) {
	buf := WrapBuffer([]byte{0x01, 0x02})

	if v := buf.GetUint32(); v != 0x0201 {
		t.Errorf("GetUint32() = %#x, want 0x201", v)
	}
	if buf.Position() != 4 {
		t.Errorf("Position() = %d, want 4", buf.Position())
	}
	if buf.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", buf.Remaining())
	}
	if v := buf.GetUint8(); v != 0 {
		t.Errorf("GetUint8() past end = %d, want 0", v)
	}
}

func TestBuffer_WriteGrows(t *testing.T) {
	buf := NewBuffer(2)
	buf.SetPosition(1)
	buf.PutUint32(0xffffffff)

	if buf.Len() != 5 {
		t.Errorf("Len() = %d, want 5", buf.Len())
	}
	if buf.Bytes()[0] != 0 {
		t.Errorf("byte 0 = %#x, want 0", buf.Bytes()[0])
	}
}

func TestBuffer_ZeroAndSkip(t *testing.T) {
	buf := WrapBuffer([]byte{1, 2, 3, 4, 5})
	buf.Skip(1)
	buf.Zero(3)

	if !bytes.Equal(buf.Bytes(), []byte{1, 0, 0, 0, 5}) {
		t.Errorf("Bytes() = % x", buf.Bytes())
	}
	if buf.Position() != 4 {
		t.Errorf("Position() = %d, want 4", buf.Position())
	}
}

func TestBuffer_PutGet(t *testing.T) {
	buf := NewBuffer(0)
	buf.Put([]byte{9, 8, 7})
	buf.Rewind()

	p := make([]byte, 5)
	buf.Get(p)
	if !bytes.Equal(p, []byte{9, 8, 7, 0, 0}) {
		t.Errorf("Get() = % x", p)
	}
	if buf.Position() != 5 {
		t.Errorf("Position() = %d, want 5", buf.Position())
	}
}

func TestBuffer_SetPositionClamps(t *testing.T) {
	buf := NewBuffer(4)
	buf.SetPosition(-3)
	if buf.Position() != 0 {
		t.Errorf("Position() = %d, want 0", buf.Position())
	}
}
