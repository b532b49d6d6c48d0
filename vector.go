package wire3d

import (
	"fmt"
	"math"
)

// VecX represents a unit vector in the global direction of +X on the right-handed coordinate system (right).
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector in the global direction of +Y on the right-handed coordinate system (upwards).
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector in the global direction of +Z on the right-handed coordinate system (backwards, towards you).
var VecZ = NewVector(0, 0, 1)

// VecZero is the zero Vector.
var VecZero = NewVector(0, 0, 0)

// Vector represents a homogeneous 4D Vector. By convention, a W of 0 indicates a direction, while a W of 1 indicates a point.
// Vector functions return copies of the modified Vector, meaning you can do method-chaining easily.
// Unlike most 3D vector types, every operation here includes the W component.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
	W float64 // The W (4th) component of the Vector; 0 for directions, 1 for points
}

// NewVector creates a new direction Vector with the specified x, y, and z components. W is set to 0.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z, W: 0}
}

// NewPoint creates a new Vector representing a point (so W is set to 1).
func NewPoint(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z, W: 1}
}

// Add returns a copy of the calling Vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	vec.W += other.W
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	vec.W -= other.W
	return vec
}

// Scale returns a copy of the Vector with all components multiplied by the scalar provided.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	vec.W *= scalar
	return vec
}

// Divide returns a copy of the Vector with all components divided by the scalar provided.
func (vec Vector) Divide(scalar float64) Vector {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	vec.W /= scalar
	return vec
}

// Invert returns a copy of the Vector with all components negated.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	vec.W = -vec.W
	return vec
}

// Magnitude returns the Euclidean length of the Vector, including the W component.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z + vec.W*vec.W)
}

// Unit returns a copy of the Vector divided by its length.
// A zero-length Vector has no direction, so the result is NaN in every component.
func (vec Vector) Unit() Vector {
	return vec.Divide(vec.Magnitude())
}

// Dot returns the dot product of the X, Y, and Z components of both Vectors.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns a new direction Vector, indicating the cross product of the calling Vector and the provided other Vector.
// This function ignores the W component of both Vectors.
func (vec Vector) Cross(other Vector) Vector {
	return Vector{
		X: vec.Y*other.Z - vec.Z*other.Y,
		Y: vec.Z*other.X - vec.X*other.Z,
		Z: vec.X*other.Y - vec.Y*other.X,
	}
}

// Mult treats the Vector as a row vector and returns vec * matrix. This is the convention the render pipeline uses
// for vertices; see Matrix4.MultVec for the column product.
func (vec Vector) Mult(matrix Matrix4) Vector {
	return Vector{
		X: vec.X*matrix[0][0] + vec.Y*matrix[1][0] + vec.Z*matrix[2][0] + vec.W*matrix[3][0],
		Y: vec.X*matrix[0][1] + vec.Y*matrix[1][1] + vec.Z*matrix[2][1] + vec.W*matrix[3][1],
		Z: vec.X*matrix[0][2] + vec.Y*matrix[1][2] + vec.Z*matrix[2][2] + vec.W*matrix[3][2],
		W: vec.X*matrix[0][3] + vec.Y*matrix[1][3] + vec.Z*matrix[2][3] + vec.W*matrix[3][3],
	}
}

// Equals returns true if all components of both Vectors are within tolerance of each other.
func (vec Vector) Equals(other Vector, tolerance float64) bool {
	return math.Abs(vec.X-other.X) <= tolerance &&
		math.Abs(vec.Y-other.Y) <= tolerance &&
		math.Abs(vec.Z-other.Z) <= tolerance &&
		math.Abs(vec.W-other.W) <= tolerance
}

// IsZero returns true if all components of the Vector are 0.
func (vec Vector) IsZero() bool {
	return vec.X == 0 && vec.Y == 0 && vec.Z == 0 && vec.W == 0
}

func (vec Vector) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f, %.2f}", vec.X, vec.Y, vec.Z, vec.W)
}
