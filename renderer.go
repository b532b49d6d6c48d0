package wire3d

import (
	"fmt"
	"image"
	"math"
)

// Mode is the primitive assembly mode of a Begin / End block.
type Mode int

const (
	ModeLine    Mode = iota // Every disjoint pair of vertices (0-1, 2-3, ...) is drawn as a line segment.
	ModePolygon             // All vertices form one closed polygon, drawn as its outline.
)

func (mode Mode) String() string {
	switch mode {
	case ModeLine:
		return "line"
	case ModePolygon:
		return "polygon"
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}

const (
	// MaxVertexCount is the maximum number of vertices a single Begin / End block can hold.
	MaxVertexCount = 64
	// DefaultViewportMargin is the number of rows at the bottom of the target left out of the viewport.
	DefaultViewportMargin = 3
	// BackFaceBlend is the weight of the draw color when it is blended with the fill color for back-facing polygons.
	BackFaceBlend = 0.20
	// BackFaceDepthOffset is added to the depth key of back-facing polygon outlines, so front-facing outlines at the
	// same depth win.
	BackFaceDepthOffset = 0.05
)

// DebugInfo holds counters for a Renderer's frame. These values are reset when Renderer.Clear() is called.
type DebugInfo struct {
	DrawCalls          int // Number of End() calls
	TransformUpdates   int // Number of times the combined world * view * projection matrix was recomputed
	Polygons           int // Number of polygons assembled, visible or not
	BackFacingPolygons int // Number of polygons classified as back-facing
	SkippedPolygons    int // Number of polygon blocks skipped for having fewer than 3 vertices
	Lines              int // Number of line segments submitted for clipping
	LinesClipped       int // Number of line segments shortened by clipping
	LinesCulled        int // Number of line segments rejected entirely by clipping
	PixelsWritten      int // Number of pixels that passed the depth test and were blended
}

// Renderer is an immediate-mode software wireframe renderer. It owns the transform state, a fixed-capacity vertex
// scratch buffer, and a color and depth buffer sized to its target. Shapes are drawn by calling Begin, Vertex
// (any number of times, up to MaxVertexCount), and End, or with the Draw* shape builders.
//
// The color and depth buffers cover the whole target, width * height pixels, while the viewport leaves out the bottom
// DefaultViewportMargin rows. Only anti-aliasing at the viewport edge reaches into those rows.
//
// A Renderer is not safe for concurrent use; each frame is expected to be Clear, SetView / SetProjection, a series of
// transform and draw calls, and finally reading the ColorBuffer (or Image) for presentation.
type Renderer struct {
	world Matrix4
	view  Matrix4
	proj  Matrix4
	comb  Matrix4
	dirty bool

	vertices [MaxVertexCount]vertex
	count    int
	mode     Mode

	width, height int
	viewport      image.Rectangle
	colorBuffer   []uint32
	depthBuffer   []float64

	rgb         uint32
	fill        uint32
	depthOffset float64

	DebugInfo DebugInfo
}

// NewRenderer creates a new Renderer drawing into color and depth buffers of width * height pixels. The viewport
// covers the whole width and all but the bottom DefaultViewportMargin rows of the target.
func NewRenderer(width, height int) *Renderer {

	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("wire3d: invalid renderer size %dx%d", width, height))
	}

	vpHeight := height - DefaultViewportMargin
	if vpHeight <= 0 {
		vpHeight = height
	}

	r := &Renderer{
		world:       NewMatrix4(),
		view:        NewMatrix4(),
		proj:        NewMatrix4(),
		comb:        NewMatrix4(),
		dirty:       true,
		width:       width,
		height:      height,
		viewport:    image.Rect(0, 0, width, vpHeight),
		colorBuffer: make([]uint32, width*height),
		depthBuffer: make([]float64, width*height),
		rgb:         0xff000000,
		fill:        0xff000000,
	}

	Logger().Info("wire3d: renderer created", "width", width, "height", height, "viewport", r.viewport)

	return r

}

// Size returns the width and height of the Renderer's target in pixels.
func (r *Renderer) Size() (w, h int) {
	return r.width, r.height
}

// Viewport returns the rectangle normalized device coordinates are mapped into.
func (r *Renderer) Viewport() image.Rectangle {
	return r.viewport
}

// ColorBuffer returns the color buffer, one packed 0xAARRGGBB value per pixel, in row-major order. The slice is owned
// by the Renderer and is only valid to read between frames.
func (r *Renderer) ColorBuffer() []uint32 {
	return r.colorBuffer
}

// DepthBuffer returns the depth buffer, one depth key per pixel, in row-major order. Cleared pixels hold +Inf.
func (r *Renderer) DepthBuffer() []float64 {
	return r.depthBuffer
}

// SetColor sets the current draw color.
func (r *Renderer) SetColor(color Color) {
	r.rgb = color.ToPacked()
}

// Color returns the current draw color.
func (r *Renderer) Color() Color {
	return NewColorFromPacked(r.rgb)
}

// Clear fills the color buffer with the current draw color, which also becomes the fill color used to fade grid lines
// and back-facing polygons. The depth buffer is reset to +Inf and the DebugInfo counters are reset.
func (r *Renderer) Clear() {

	r.fill = r.rgb

	for i := range r.colorBuffer {
		r.colorBuffer[i] = r.fill
	}

	inf := math.Inf(1)
	for i := range r.depthBuffer {
		r.depthBuffer[i] = inf
	}

	r.DebugInfo = DebugInfo{}

}

// ClearWithColor sets the draw color to the color given, and then clears the Renderer with it.
func (r *Renderer) ClearWithColor(color Color) {
	r.SetColor(color)
	r.Clear()
}

// Identity resets the world matrix to the identity matrix.
func (r *Renderer) Identity() {
	r.dirty = true
	r.world = NewMatrix4()
}

// Rotate applies a rotation of angle radians about the axis [x, y, z] after the current world transform. The axis must
// not be zero-length.
func (r *Renderer) Rotate(x, y, z, angle float64) {
	r.dirty = true
	r.world = r.world.Mult(NewMatrix4Rotate(x, y, z, angle))
}

// Transform applies the matrix given after the current world transform.
func (r *Renderer) Transform(matrix Matrix4) {
	r.dirty = true
	r.world = r.world.Mult(matrix)
}

// SetView replaces the view matrix.
func (r *Renderer) SetView(matrix Matrix4) {
	r.dirty = true
	r.view = matrix
}

// SetProjection replaces the projection matrix.
func (r *Renderer) SetProjection(matrix Matrix4) {
	r.dirty = true
	r.proj = matrix
}

// SetCamera replaces both the view and the projection matrix with the Camera's.
func (r *Renderer) SetCamera(camera *Camera) {
	r.SetView(camera.ViewMatrix())
	r.SetProjection(camera.Projection())
}

// World returns the current world matrix.
func (r *Renderer) World() Matrix4 {
	return r.world
}

func (r *Renderer) combinedTransform() Matrix4 {
	if r.dirty {
		r.comb = r.world.Mult(r.view).Mult(r.proj)
		r.dirty = false
		r.DebugInfo.TransformUpdates++
	}
	return r.comb
}

// Begin starts a new primitive in the given Mode, discarding any vertices from an unfinished block.
func (r *Renderer) Begin(mode Mode) {
	r.mode = mode
	r.count = 0
}

// Vertex adds a point to the current primitive. Adding more than MaxVertexCount vertices in a single block panics.
func (r *Renderer) Vertex(x, y, z float64) {
	if r.count >= MaxVertexCount {
		Logger().Error("wire3d: vertex buffer overflow", "capacity", MaxVertexCount, "mode", r.mode)
		panic(fmt.Sprintf("wire3d: more than %d vertices in a single Begin / End block", MaxVertexCount))
	}
	r.vertices[r.count].set(x, y, z, 1)
	r.count++
}

// End transforms the current primitive's vertices and draws it. The draw color is left unchanged.
func (r *Renderer) End() {

	r.DebugInfo.DrawCalls++

	oldColor := r.rgb
	r.depthOffset = 0

	matrix := r.combinedTransform()

	switch r.mode {
	case ModeLine:
		r.drawLines(matrix)
	case ModePolygon:
		r.drawPolygon(matrix)
	}

	r.rgb = oldColor
	r.depthOffset = 0

}

func (r *Renderer) drawLines(matrix Matrix4) {
	for i := 0; i+1 < r.count; i += 2 {
		a := &r.vertices[i]
		b := &r.vertices[i+1]
		a.project(matrix)
		b.project(matrix)
		r.drawLine(a, b)
	}
}

func (r *Renderer) drawPolygon(matrix Matrix4) {

	if r.count < 3 {
		r.DebugInfo.SkippedPolygons++
		Logger().Debug("wire3d: polygon skipped", "vertices", r.count)
		return
	}

	r.DebugInfo.Polygons++

	for i := 0; i < r.count; i++ {
		r.vertices[i].project(matrix)
	}

	if isBackFacing(&r.vertices[0], &r.vertices[1], &r.vertices[2]) {
		r.DebugInfo.BackFacingPolygons++
		r.rgb = 0xff000000 | blendPacked(r.rgb, r.fill, BackFaceBlend)
		r.depthOffset = BackFaceDepthOffset
	}

	// Clipping works on the endpoints in place, so each edge gets its own copies.
	last := r.count - 1
	a, b := r.vertices[last], r.vertices[0]
	r.drawLine(&a, &b)

	for i := last; i > 0; i-- {
		a, b = r.vertices[i-1], r.vertices[i]
		r.drawLine(&a, &b)
	}

}

// isBackFacing returns true if the clip-space triangle a, b, c winds clockwise once projected.
func isBackFacing(a, b, c *vertex) bool {
	cax := c.x/c.w - a.x/a.w
	cay := a.y/a.w - b.y/b.w
	bax := b.x/b.w - a.x/a.w
	bay := a.y/a.w - c.y/c.w
	return cax*cay < bax*bay
}
