package wire3d

import "math"

// DefaultGridColor is the color DrawDefaultGrid blends its lines from.
var DefaultGridColor = NewColor(0, 0, 0, 0.25)

// cubeIndices lists the corners of each of a cube's six faces, as indexes into the corners built by DrawCube.
var cubeIndices = [24]int{0, 1, 2, 3, 1, 4, 7, 2, 4, 5, 6, 7, 0, 3, 6, 5, 0, 5, 4, 1, 3, 2, 7, 6}

// DrawGrid draws a grid of lines on the XZ plane, size units across and step units apart, centered on the origin.
// Ordinary lines are drawn in a quarter-strength blend of the color given and the fill color; the two lines crossing
// the origin are drawn at half strength. The blended grid color remains the current draw color afterwards.
// step must be positive.
func (r *Renderer) DrawGrid(size, step float64, color Color) {

	half := size * 0.5
	packed := color.ToPacked()

	r.rgb = 0xff000000 | blendPacked(packed, r.fill, 0.25)

	for i := -half; i <= half; i += step {
		if i != 0 {
			r.Begin(ModeLine)
			r.Vertex(-half, 0, i)
			r.Vertex(half, 0, i)
			r.Vertex(i, 0, -half)
			r.Vertex(i, 0, half)
			r.End()
		}
	}

	r.rgb = 0xff000000 | blendPacked(packed, r.fill, 0.5)

	r.Begin(ModeLine)
	r.Vertex(-half, 0, 0)
	r.Vertex(half, 0, 0)
	r.Vertex(0, 0, -half)
	r.Vertex(0, 0, half)
	r.End()

}

// DrawDefaultGrid draws a 20 x 20 unit grid with 1 unit spacing in DefaultGridColor.
func (r *Renderer) DrawDefaultGrid() {
	r.DrawGrid(20, 1, DefaultGridColor)
}

// DrawAxis draws three line segments of the length given from the origin along +X, +Y, and +Z, in the colors given.
func (r *Renderer) DrawAxis(scale float64, xColor, yColor, zColor Color) {

	r.SetColor(xColor)
	r.Begin(ModeLine)
	r.Vertex(0, 0, 0)
	r.Vertex(scale, 0, 0)
	r.End()

	r.SetColor(yColor)
	r.Begin(ModeLine)
	r.Vertex(0, 0, 0)
	r.Vertex(0, scale, 0)
	r.End()

	r.SetColor(zColor)
	r.Begin(ModeLine)
	r.Vertex(0, 0, 0)
	r.Vertex(0, 0, scale)
	r.End()

}

// DrawDefaultAxis draws a unit-length axis in red (X), green (Y), and blue (Z).
func (r *Renderer) DrawDefaultAxis() {
	r.DrawAxis(1, NewColor(1, 0, 0, 1), NewColor(0, 1, 0, 1), NewColor(0, 0, 1, 1))
}

// DrawPlane draws a width x depth rectangle on the XZ plane, centered on the origin.
func (r *Renderer) DrawPlane(width, depth float64, color Color) {
	r.SetColor(color)
	r.Begin(ModePolygon)
	r.Vertex(-width*0.5, 0, depth*0.5)
	r.Vertex(width*0.5, 0, depth*0.5)
	r.Vertex(width*0.5, 0, -depth*0.5)
	r.Vertex(-width*0.5, 0, -depth*0.5)
	r.End()
}

// DrawCube draws the six faces of the axis-aligned box spanning from min to max.
func (r *Renderer) DrawCube(min, max Vector, color Color) {

	r.SetColor(color)

	corners := [8]Vector{
		NewVector(min.X, max.Y, min.Z),
		NewVector(max.X, max.Y, min.Z),
		NewVector(max.X, min.Y, min.Z),
		NewVector(min.X, min.Y, min.Z),
		NewVector(max.X, max.Y, max.Z),
		NewVector(min.X, max.Y, max.Z),
		NewVector(min.X, min.Y, max.Z),
		NewVector(max.X, min.Y, max.Z),
	}

	for side := 0; side < 6; side++ {
		r.Begin(ModePolygon)
		for _, index := range cubeIndices[side*4 : side*4+4] {
			r.Vertex(corners[index].X, corners[index].Y, corners[index].Z)
		}
		r.End()
	}

}

// DrawSphere draws a UV sphere of the radius given, centered on the origin. stacks is the number of divisions from pole
// to pole, and slices the number of divisions around the Y axis. The quads touching the poles are left out.
func (r *Renderer) DrawSphere(radius float64, stacks, slices int, color Color) {

	r.SetColor(color)

	curve := make([]Vector, 0, stacks+1)
	stackAngle := math.Pi / float64(stacks)
	for stack := 0; stack <= stacks; stack++ {
		curve = append(curve, NewMatrix4RotateZ(stackAngle*float64(stack)).MultVec(VecY))
	}

	points := revolve(curve, slices, radius)

	stride := stacks + 1

	for slice := 0; slice < slices; slice++ {
		index := slice * stride
		for stack := 1; stack < stacks-1; stack++ {
			ma := stack + index
			md := stack + index + 1
			mc := stack + index + stride + 1
			mb := stack + index + stride
			r.drawQuad(points[ma], points[mb], points[mc], points[md])
		}
	}

}

// DrawCapsule draws a capsule of the radius given, with height units between the centers of its two hemispherical caps.
// stacks is the number of divisions from pole to pole across both caps, and slices the number of divisions around the
// Y axis.
func (r *Renderer) DrawCapsule(radius, height float64, stacks, slices int, color Color) {

	r.SetColor(color)

	curve := make([]Vector, 0, stacks+2)
	stackAngle := math.Pi / float64(stacks)
	top := NewVector(0, height*0.5, 0)
	bottom := NewVector(0, -height*0.5, 0)
	for stack := 0; stack <= stacks/2; stack++ {
		curve = append(curve, NewMatrix4RotateZ(stackAngle*float64(stack)).MultVec(NewVector(0, radius, 0)).Add(top))
	}
	for stack := stacks / 2; stack <= stacks; stack++ {
		curve = append(curve, NewMatrix4RotateZ(stackAngle*float64(stack)).MultVec(NewVector(0, radius, 0)).Add(bottom))
	}

	points := revolve(curve, slices, 1)

	stride := len(curve)

	for slice := 0; slice < slices; slice++ {
		index := slice * stride
		for stack := 0; stack <= stacks; stack++ {
			ma := stack + index
			md := stack + index + 1
			mc := stack + index + stride + 1
			mb := stack + index + stride
			if stack < stacks {
				r.drawQuad(points[ma], points[mb], points[mc], points[md])
			} else {
				// The quad touching the bottom pole starts from the pole.
				r.drawQuad(points[md], points[ma], points[mb], points[mc])
			}
		}
	}

}

// DrawMesh draws every triangle of the Mesh as a polygon outline.
func (r *Renderer) DrawMesh(mesh *Mesh, color Color) {

	r.SetColor(color)

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		r.Begin(ModePolygon)
		for _, index := range mesh.Indices[i : i+3] {
			v := mesh.Vertices[index]
			r.Vertex(v.X, v.Y, v.Z)
		}
		r.End()
	}

}

// revolve sweeps the curve about the Y axis in slices steps, producing slices+1 copies of the curve (the last
// coinciding with the first), each scaled by the scale given.
func revolve(curve []Vector, slices int, scale float64) []Vector {

	points := make([]Vector, 0, (slices+1)*len(curve))
	sliceAngle := math.Pi * 2 / float64(slices)

	for slice := 0; slice <= slices; slice++ {
		aboutY := NewMatrix4RotateY(sliceAngle * float64(slice))
		for _, point := range curve {
			p := aboutY.MultVec(point).Scale(scale)
			p.W = 0
			points = append(points, p)
		}
	}

	return points

}

func (r *Renderer) drawQuad(v0, v1, v2, v3 Vector) {
	r.Begin(ModePolygon)
	r.Vertex(v0.X, v0.Y, v0.Z)
	r.Vertex(v1.X, v1.Y, v1.Z)
	r.Vertex(v2.X, v2.Y, v2.Z)
	r.Vertex(v3.X, v3.Y, v3.Z)
	r.End()
}
