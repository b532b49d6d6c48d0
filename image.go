package wire3d

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CopyPixels writes the color buffer into dst as 8-bit RGBA, four bytes per pixel, in row-major order. This is the
// layout ebiten.Image.WritePixels and image.RGBA.Pix use. The buffer's alpha is ignored; every pixel is written opaque.
// dst must be at least 4 * width * height bytes long.
func (r *Renderer) CopyPixels(dst []byte) {

	if len(dst) < len(r.colorBuffer)*4 {
		panic(fmt.Sprintf("wire3d: pixel slice of %d bytes too small for %dx%d target", len(dst), r.width, r.height))
	}

	for i, packed := range r.colorBuffer {
		p := dst[i*4 : i*4+4 : i*4+4]
		p[0] = uint8(packed >> 16)
		p[1] = uint8(packed >> 8)
		p[2] = uint8(packed)
		p[3] = 0xff
	}

}

// Image returns a copy of the color buffer as an opaque *image.RGBA.
func (r *Renderer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	r.CopyPixels(img.Pix)
	return img
}

// WritePNG encodes the color buffer as a PNG image to the io.Writer given.
func (r *Renderer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("wire3d: encoding png: %w", err)
	}
	return nil
}

// DrawDebugText draws the text given onto img with its top-left corner at x, y, in a 7x13 bitmap font. Each line
// of the text is drawn below the previous one.
func DrawDebugText(img *image.RGBA, x, y int, text string, textColor Color) {

	face := basicfont.Face7x13

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{channelToByte(textColor.R), channelToByte(textColor.G), channelToByte(textColor.B), channelToByte(textColor.A)}),
		Face: face,
	}

	for i, line := range strings.Split(text, "\n") {
		drawer.Dot = fixed.P(x, y+face.Ascent+i*face.Height)
		drawer.DrawString(line)
	}

}

// DebugText returns a short, multi-line summary of the DebugInfo counters, suitable for DrawDebugText.
func (info DebugInfo) DebugText() string {
	return fmt.Sprintf(
		"Draw calls: %d\nPolygons: %d (%d back-facing)\nLines: %d (%d clipped, %d culled)\nPixels written: %d",
		info.DrawCalls,
		info.Polygons, info.BackFacingPolygons,
		info.Lines, info.LinesClipped, info.LinesCulled,
		info.PixelsWritten,
	)
}
