package wire3d

import "math"

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHex returns a new opaque Color from a 0xRRGGBB value, like 0x5e676e.
func NewColorFromHex(hex uint32) Color {
	return NewColorFromPacked(0xff000000 | hex)
}

// NewColorFromPacked returns a new Color from a packed 0xAARRGGBB value, as stored in a Renderer's color buffer.
func NewColorFromPacked(packed uint32) Color {
	return Color{
		R: float32((packed>>16)&0xff) / 255,
		G: float32((packed>>8)&0xff) / 255,
		B: float32(packed&0xff) / 255,
		A: float32(packed>>24) / 255,
	}
}

// ToPacked returns the Color packed into a single 0xAARRGGBB value, with each channel rounded to 8 bits.
func (color Color) ToPacked() uint32 {
	return uint32(channelToByte(color.A))<<24 |
		uint32(channelToByte(color.R))<<16 |
		uint32(channelToByte(color.G))<<8 |
		uint32(channelToByte(color.B))
}

func channelToByte(v float32) uint8 {
	return uint8(clamp(math.Round(float64(v)*255), 0, 255))
}

// blendPacked blends the RGB channels of two packed colors in 8-bit fixed point, weighting first by factor and
// second by 1-factor. The alpha byte of the result is always 0.
func blendPacked(first, second uint32, factor float64) uint32 {
	c8 := uint32(256 * factor)
	rb := ((first&0xff00ff)*c8 + (second&0xff00ff)*(256-c8)) >> 8 & 0xff00ff
	g := ((first&0x00ff00)*c8 + (second&0x00ff00)*(256-c8)) >> 8 & 0x00ff00
	return rb | g
}
