package rowconv

import (
	"encoding/binary"

	"github.com/deepteams/pixconv/internal/clip"
)

// I2I16 narrows an I row to little-endian I;16, clamping each value to
// [-32768, 32767].
func I2I16(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := clip.Clip16(int32(binary.LittleEndian.Uint32(src[x*4:])))
		binary.LittleEndian.PutUint16(dst[x*2:], uint16(int16(v)))
	}
}

// I2I16B narrows an I row to big-endian I;16B, clamping each value to
// [-32768, 32767].
func I2I16B(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := clip.Clip16(int32(binary.LittleEndian.Uint32(src[x*4:])))
		binary.BigEndian.PutUint16(dst[x*2:], uint16(int16(v)))
	}
}

// I162I widens a little-endian I;16 row to I.
func I162I(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := int32(int16(binary.LittleEndian.Uint16(src[x*2:])))
		binary.LittleEndian.PutUint32(dst[x*4:], uint32(v))
	}
}

// I16B2I widens a big-endian I;16B row to I.
func I16B2I(dst, src []byte, width int) {
	for x := 0; x < width; x++ {
		v := int32(int16(binary.BigEndian.Uint16(src[x*2:])))
		binary.LittleEndian.PutUint32(dst[x*4:], uint32(v))
	}
}
