package wire3d

import "image"

// vertex is a mutable homogeneous coordinate register. It starts out in model space, and is transformed in place into
// clip space, clipped, and finally mapped to screen space.
type vertex struct {
	x, y, z, w float64
}

func (v *vertex) set(x, y, z, w float64) {
	v.x = x
	v.y = y
	v.z = z
	v.w = w
}

// project transforms the vertex as a row vector by the matrix given.
func (v *vertex) project(m Matrix4) {
	v.set(
		v.x*m[0][0]+v.y*m[1][0]+v.z*m[2][0]+v.w*m[3][0],
		v.x*m[0][1]+v.y*m[1][1]+v.z*m[2][1]+v.w*m[3][1],
		v.x*m[0][2]+v.y*m[1][2]+v.z*m[2][2]+v.w*m[3][2],
		v.x*m[0][3]+v.y*m[1][3]+v.z*m[2][3]+v.w*m[3][3],
	)
}

// lerpTowards moves the vertex the fraction t of the way towards the other vertex.
func (v *vertex) lerpTowards(to *vertex, t float64) {
	s := 1 - t
	v.set(
		s*v.x+t*to.x,
		s*v.y+t*to.y,
		s*v.z+t*to.z,
		s*v.w+t*to.w,
	)
}

// toScreen performs the perspective divide and maps the vertex into the viewport, flipping Y. Z becomes the depth
// key 1 + z/w; W is left as-is.
func (v *vertex) toScreen(viewport image.Rectangle) {
	v.set(
		float64(viewport.Min.X)+float64(viewport.Dx())*(1+v.x/v.w)*0.5,
		float64(viewport.Min.Y)+float64(viewport.Dy())*(1-v.y/v.w)*0.5,
		1+v.z/v.w,
		v.w,
	)
}

// Outcode bits, one per clip plane, in the priority order planes are clipped against.
const (
	clipPosX uint8 = 1 << (5 - iota)
	clipPosY
	clipPosZ
	clipNegX
	clipNegY
	clipNegZ
)

// maxClipPasses is how many times a segment is clipped before it is drawn as-is.
const maxClipPasses = 5

// outcode returns the set of clip planes of the canonical view volume |x|, |y|, |z| <= w that the vertex lies outside of.
func outcode(v *vertex) uint8 {
	var code uint8
	if v.x > v.w {
		code |= clipPosX
	}
	if v.y > v.w {
		code |= clipPosY
	}
	if v.z > v.w {
		code |= clipPosZ
	}
	if v.x < -v.w {
		code |= clipNegX
	}
	if v.y < -v.w {
		code |= clipNegY
	}
	if v.z < -v.w {
		code |= clipNegZ
	}
	return code
}

// clipToPlane moves from along the segment towards to, onto the highest priority plane set in code.
func clipToPlane(from, to *vertex, code uint8) {

	var t float64

	switch {
	case code&clipPosX != 0:
		t = (from.w - from.x) / (from.w - from.x - to.w + to.x)
	case code&clipPosY != 0:
		t = (from.w - from.y) / (from.w - from.y - to.w + to.y)
	case code&clipPosZ != 0:
		t = (from.w - from.z) / (from.w - from.z - to.w + to.z)
	case code&clipNegX != 0:
		t = (from.w + from.x) / (from.w + from.x - to.w - to.x)
	case code&clipNegY != 0:
		t = (from.w + from.y) / (from.w + from.y - to.w - to.y)
	default:
		t = (from.w + from.z) / (from.w + from.z - to.w - to.z)
	}

	from.lerpTowards(to, t)

}

// clipSegment clips the clip-space segment a-b against the canonical view volume, altering the endpoints in place.
// It returns false if the segment lies entirely outside of a single plane. clipped reports whether either endpoint
// was moved. A segment that has not settled after maxClipPasses is still reported visible.
func clipSegment(a, b *vertex) (visible, clipped bool) {

	for i := 0; i < maxClipPasses; i++ {

		codeA := outcode(a)
		codeB := outcode(b)

		if codeA == 0 && codeB == 0 {
			return true, clipped
		}

		if codeA&codeB != 0 {
			return false, clipped
		}

		if codeA != 0 {
			clipToPlane(a, b, codeA)
		}

		if codeB != 0 {
			clipToPlane(b, a, codeB)
		}

		clipped = true

	}

	return true, clipped

}
