package wire3d

import (
	"math"
	"strconv"
)

// Matrix4 represents a 4x4 matrix for translation, scale, rotation, and projection. A Matrix4 in wire3d is row-major
// (i.e. the X axis is matrix[0], and translation lives in matrix[3]). Points are transformed as row vectors
// (see Vector.Mult), so a chain of transforms reads left to right: world.Mult(view).Mult(projection).
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4RotateY returns a new Matrix4 rotating by the angle given (in radians) about the Y axis.
func NewMatrix4RotateY(angle float64) Matrix4 {
	s := math.Sin(angle)
	c := math.Cos(angle)
	return Matrix4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4RotateZ returns a new Matrix4 rotating by the angle given (in radians) about the Z axis.
func NewMatrix4RotateZ(angle float64) Matrix4 {
	s := math.Sin(angle)
	c := math.Cos(angle)
	return Matrix4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// The axis is normalized first; it must not be zero-length, as there is no fallback axis (the result would be NaN).
// When applied to row vectors, this rotates counter-clockwise about the axis.
func NewMatrix4Rotate(x, y, z, angle float64) Matrix4 {

	axis := NewVector(x, y, z).Unit()

	c := math.Cos(-angle)
	s := math.Sin(-angle)
	t := 1 - c

	return Matrix4{
		{c + axis.X*axis.X*t, axis.X*axis.Y*t - axis.Z*s, axis.X*axis.Z*t + axis.Y*s, 0},
		{axis.X*axis.Y*t + axis.Z*s, c + axis.Y*axis.Y*t, axis.Y*axis.Z*t - axis.X*s, 0},
		{axis.X*axis.Z*t - axis.Y*s, axis.Y*axis.Z*t + axis.X*s, c + axis.Z*axis.Z*t, 0},
		{0, 0, 0, 1},
	}

}

// NewLookAtMatrix generates a view Matrix4 for an eye at the position given, looking at the target, with the provided up
// direction. Transforming the eye position by the resulting matrix yields the origin.
func NewLookAtMatrix(eye, target, up Vector) Matrix4 {

	z0 := eye.X - target.X
	z1 := eye.Y - target.Y
	z2 := eye.Z - target.Z
	lz := 1 / math.Sqrt(z0*z0+z1*z1+z2*z2)

	x0 := up.Y*z2 - up.Z*z1
	x1 := up.Z*z0 - up.X*z2
	x2 := up.X*z1 - up.Y*z0
	lx := 1 / math.Sqrt(x0*x0+x1*x1+x2*x2)

	y0 := z1*x2 - z2*x1
	y1 := z2*x0 - z0*x2
	y2 := z0*x1 - z1*x0
	ly := 1 / math.Sqrt(y0*y0+y1*y1+y2*y2)

	return Matrix4{
		{x0 * lx, y0 * ly, z0 * lz, 0},
		{x1 * lx, y1 * ly, z1 * lz, 0},
		{x2 * lx, y2 * ly, z2 * lz, 0},
		{
			-(x0*eye.X + x1*eye.Y + x2*eye.Z) * lx,
			-(y0*eye.X + y1*eye.Y + y2*eye.Z) * ly,
			-(z0*eye.X + z1*eye.Y + z2*eye.Z) * lz,
			1,
		},
	}

}

// NewProjectionPerspective generates a symmetric perspective frustum Matrix4. fovy is the vertical field of view in radians,
// aspect is the width / height ratio of the view, and near and far are the distances to the clipping planes. After the
// perspective divide, a point at the near distance maps to a depth of -1, and a point at the far distance maps to +1.
func NewProjectionPerspective(fovy, aspect, near, far float64) Matrix4 {

	tan := math.Tan(fovy / 2)
	nf := 1 / (near - far)

	return Matrix4{
		{1 / (tan * aspect), 0, 0, 0},
		{0, 1 / tan, 0, 0},
		{0, 0, (far + near) * nf, -1},
		{0, 0, 2 * far * near * nf, 0},
	}

}

// Translated returns a copy of the Matrix4 with a translation applied before it; this is equivalent to
// NewMatrix4Translate(x, y, z).Mult(matrix).
func (matrix Matrix4) Translated(x, y, z float64) Matrix4 {
	for i := 0; i < 4; i++ {
		matrix[3][i] += x*matrix[0][i] + y*matrix[1][i] + z*matrix[2][i]
	}
	return matrix
}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them. For row vectors,
// a.Mult(b) applies a first, then b.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := Matrix4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			newMat[row][col] = matrix[row][0]*other[0][col] +
				matrix[row][1]*other[1][col] +
				matrix[row][2]*other[2][col] +
				matrix[row][3]*other[3][col]
		}
	}

	return newMat

}

// MultVec returns the column product matrix * vec, including the W component. (a.Mult(b)).MultVec(v) is equal to
// a.MultVec(b.MultVec(v)).
func (matrix Matrix4) MultVec(vec Vector) Vector {

	return Vector{
		X: matrix[0][0]*vec.X + matrix[0][1]*vec.Y + matrix[0][2]*vec.Z + matrix[0][3]*vec.W,
		Y: matrix[1][0]*vec.X + matrix[1][1]*vec.Y + matrix[1][2]*vec.Z + matrix[1][3]*vec.W,
		Z: matrix[2][0]*vec.X + matrix[2][1]*vec.Y + matrix[2][2]*vec.Z + matrix[2][3]*vec.W,
		W: matrix[3][0]*vec.X + matrix[3][1]*vec.Y + matrix[3][2]*vec.Z + matrix[3][3]*vec.W,
	}

}

// Transposed transposes a Matrix4, switching the Matrix from being Row Major to being Column Major. For rotation
// matrices, this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {

	newMat := Matrix4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			newMat[col][row] = matrix[row][col]
		}
	}

	return newMat

}

// Row returns the indicated row of the Matrix4 as a Vector.
func (matrix Matrix4) Row(rowIndex int) Vector {
	return Vector{matrix[rowIndex][0], matrix[rowIndex][1], matrix[rowIndex][2], matrix[rowIndex][3]}
}

// Equals returns true if all elements of both matrices are within tolerance of each other.
func (matrix Matrix4) Equals(other Matrix4, tolerance float64) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(matrix[row][col]-other[row][col]) > tolerance {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the matrix is an identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix == NewMatrix4()
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(x, 'f', -1, 64) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
