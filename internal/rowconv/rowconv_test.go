package rowconv

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestBit2L(t *testing.T) {
	src := []byte{0, 255}
	dst := make([]byte, 2)
	Bit2L(dst, src, 2)
	want := []byte{0, 255}
	if string(dst) != string(want) {
		t.Fatalf("Bit2L(%v) = %v, want %v", src, dst, want)
	}
}

func TestL2Bit(t *testing.T) {
	tests := []struct {
		in   byte
		want byte
	}{
		{127, 0},
		{128, 255},
		{0, 0},
		{255, 255},
	}
	for _, tt := range tests {
		dst := make([]byte, 1)
		L2Bit(dst, []byte{tt.in}, 1)
		if dst[0] != tt.want {
			t.Errorf("L2Bit(%d) = %d, want %d", tt.in, dst[0], tt.want)
		}
	}
}

func TestRGB2L(t *testing.T) {
	src := []byte{10, 20, 30, 0}
	dst := make([]byte, 1)
	RGB2L(dst, src, 1)
	// 10*299 + 20*587 + 30*114 = 18150; 18150/1000 = 18.
	if dst[0] != 18 {
		t.Fatalf("RGB2L(10,20,30) = %d, want 18", dst[0])
	}
}

func TestRGB2BGR16(t *testing.T) {
	src := []byte{255, 0, 0, 0}
	dst := make([]byte, 2)
	RGB2BGR16(dst, src, 1)
	got := binary.LittleEndian.Uint16(dst)
	if got != 0xF800 {
		t.Fatalf("RGB2BGR16(255,0,0) = %#04x, want 0xF800", got)
	}
}

func TestRGBA2RGBa(t *testing.T) {
	src := []byte{200, 100, 50, 128}
	dst := make([]byte, 4)
	RGBA2RGBa(dst, src, 1)
	want := []byte{100, 50, 25, 128}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("RGBA2RGBa(%v) = %v, want %v", src, dst, want)
		}
	}
}

func TestCMYK2RGB(t *testing.T) {
	dst := make([]byte, 4)
	CMYK2RGB(dst, []byte{0, 0, 0, 0}, 1)
	want := []byte{255, 255, 255, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("CMYK2RGB(0,0,0,0) = %v, want %v", dst, want)
		}
	}

	dst2 := make([]byte, 4)
	CMYK2RGB(dst2, []byte{0, 0, 0, 255}, 1)
	want2 := []byte{0, 0, 0, 255}
	for i := range want2 {
		if dst2[i] != want2[i] {
			t.Fatalf("CMYK2RGB(0,0,0,255) = %v, want %v", dst2, want2)
		}
	}
}

func TestCopyRGBForceAlpha(t *testing.T) {
	src := []byte{1, 2, 3, 99}
	dst := make([]byte, 4)
	CopyRGBForceAlpha(dst, src, 1)
	want := []byte{1, 2, 3, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("CopyRGBForceAlpha = %v, want %v", dst, want)
		}
	}
}

func TestI2I16RoundTrip(t *testing.T) {
	vals := []int32{0, 1, -1, 32767, -32768, 12345, -12345}
	for _, v := range vals {
		src := make([]byte, 4)
		binary.LittleEndian.PutUint32(src, uint32(v))

		i16 := make([]byte, 2)
		I2I16(i16, src, 1)

		back := make([]byte, 4)
		I162I(back, i16, 1)
		got := int32(binary.LittleEndian.Uint32(back))
		if got != v {
			t.Errorf("I;16 round trip: %d -> %d", v, got)
		}
	}
}

func TestI2I16BRoundTrip(t *testing.T) {
	vals := []int32{0, 1, -1, 32767, -32768}
	for _, v := range vals {
		src := make([]byte, 4)
		binary.LittleEndian.PutUint32(src, uint32(v))

		i16b := make([]byte, 2)
		I2I16B(i16b, src, 1)

		back := make([]byte, 4)
		I16B2I(back, i16b, 1)
		got := int32(binary.LittleEndian.Uint32(back))
		if got != v {
			t.Errorf("I;16B round trip: %d -> %d", v, got)
		}
	}
}

func TestI2I16Clamp(t *testing.T) {
	src := make([]byte, 4)
	binary.LittleEndian.PutUint32(src, uint32(int32(100000)))
	dst := make([]byte, 2)
	I2I16(dst, src, 1)
	back := make([]byte, 4)
	I162I(back, dst, 1)
	got := int32(binary.LittleEndian.Uint32(back))
	if got != 32767 {
		t.Fatalf("I2I16 clamp: got %d, want 32767", got)
	}
}

func TestF2LClip(t *testing.T) {
	put := func(f float32) []byte {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, math.Float32bits(f))
		return b
	}
	tests := []struct {
		in   float32
		want byte
	}{
		{-10, 0},
		{0, 0},
		{100.9, 100},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		dst := make([]byte, 1)
		F2L(dst, put(tt.in), 1)
		if dst[0] != tt.want {
			t.Errorf("F2L(%v) = %d, want %d", tt.in, dst[0], tt.want)
		}
	}
}

func TestLRGBAlphaFill(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	dst := make([]byte, 4)
	CopyRGBForceAlpha(dst, src, 1)
	if dst[3] != 255 {
		t.Fatalf("alpha fill failed: got %d", dst[3])
	}

	dst2 := make([]byte, 4)
	Bit2RGB(dst2, []byte{1}, 1)
	if dst2[3] != 255 {
		t.Fatalf("Bit2RGB alpha fill failed: got %d", dst2[3])
	}
}
