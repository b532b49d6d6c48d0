package wire3d

import "math"

// drawLine clips the clip-space segment a-b, maps what remains to the screen, and rasterizes it. Both endpoints are
// altered in place.
func (r *Renderer) drawLine(a, b *vertex) {

	r.DebugInfo.Lines++

	visible, clipped := clipSegment(a, b)

	if !visible {
		r.DebugInfo.LinesCulled++
		Logger().Debug("wire3d: line culled")
		return
	}

	if clipped {
		r.DebugInfo.LinesClipped++
	}

	a.toScreen(r.viewport)
	b.toScreen(r.viewport)

	r.wuLine(a.x, a.y, a.z+r.depthOffset, b.x, b.y, b.z+r.depthOffset)

}

// wuLine draws an anti-aliased line from (x0, y0) to (x1, y1) in screen space using Xiaolin Wu's algorithm, with the
// depth key interpolated from z0 to z1 along the way and tested for every pixel.
func (r *Renderer) wuLine(x0, y0, z0, x1, y1, z1 float64) {

	if !isFinite(x0, y0, z0, x1, y1, z1) {
		return
	}

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)

	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}

	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		z0, z1 = z1, z0
	}

	dx := x1 - x0
	gy, gz := 0.0, 0.0
	if dx != 0 {
		gy = (y1 - y0) / dx
		gz = (z1 - z0) / dx
	}

	xEnd0 := int(x0 + 0.5)
	yEnd0 := y0 + gy*(float64(xEnd0)-x0)
	zEnd0 := z0 + gz*(float64(xEnd0)-x0)
	r.wuPixel(steep, xEnd0, yEnd0, zEnd0, rfPart(x0+0.5))

	xEnd1 := int(x1 + 0.5)
	yEnd1 := y1 + gy*(float64(xEnd1)-x1)
	zEnd1 := z1 + gz*(float64(xEnd1)-x1)
	r.wuPixel(steep, xEnd1, yEnd1, zEnd1, fPart(x1+0.5))

	// The walk along the major axis never needs to leave the target.
	limit := r.width
	if steep {
		limit = r.height
	}

	start := max(xEnd0+1, 0)
	end := min(xEnd1, limit)

	for x := start; x < end; x++ {
		step := float64(x - xEnd0)
		r.wuPixel(steep, x, yEnd0+gy*step, zEnd0+gz*step, 1)
	}

}

// wuPixel plots the two pixels straddling the minor axis position interY at major axis position x.
func (r *Renderer) wuPixel(steep bool, x int, interY, z, gap float64) {
	y := int(interY)
	f := fPart(interY)
	if steep {
		r.plot(y, x, z, (1-f)*gap)
		r.plot(y+1, x, z, f*gap)
	} else {
		r.plot(x, y, z, (1-f)*gap)
		r.plot(x, y+1, z, f*gap)
	}
}

// plot depth tests a single pixel, and if it passes, stores its depth and blends the draw color over it by coverage.
func (r *Renderer) plot(x, y int, z, coverage float64) {

	if coverage <= 0 || x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}

	i := y*r.width + x

	if !(z < r.depthBuffer[i]) {
		return
	}

	r.depthBuffer[i] = z
	r.colorBuffer[i] = 0xff000000 | blendPacked(r.rgb, r.colorBuffer[i], coverage)
	r.DebugInfo.PixelsWritten++

}

// fPart returns the fractional part of x, measured away from zero.
func fPart(x float64) float64 {
	if x < 0 {
		return float64(int(x)) - x
	}
	return x - float64(int(x))
}

func rfPart(x float64) float64 {
	return 1 - fPart(x)
}
