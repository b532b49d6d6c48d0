package wire3d

import (
	"math"
)

// Camera represents a camera (where you look from) in wire3d. It looks from Position towards Target, with +Y as up,
// through a symmetric perspective frustum.
type Camera struct {
	Position Vector // The eye position of the Camera.
	Target   Vector // The point the Camera looks at.

	fieldOfView float64 // Vertical field of view in radians
	aspect      float64 // Width / height ratio of the view
	near, far   float64 // The near and far clipping planes, as supplied

	updateProjectionMatrix bool
	cachedProjectionMatrix Matrix4
}

// NewCamera creates a new Camera with the given vertical field of view (in radians), aspect ratio, and near and far
// clipping plane distances. near and far may be supplied in either order; the smaller is always used as the near plane.
// The Camera starts at +Z, looking at the origin.
func NewCamera(fovY, aspect, near, far float64) *Camera {
	return &Camera{
		Position:               VecZ,
		Target:                 VecZero,
		fieldOfView:            fovY,
		aspect:                 aspect,
		near:                   near,
		far:                    far,
		updateProjectionMatrix: true,
	}
}

// NewDefaultCamera creates a Camera with a 60 degree field of view, an aspect ratio of 1, and clipping planes at 0.1 and 1000.
func NewDefaultCamera() *Camera {
	return NewCamera(math.Pi/3, 1, 0.1, 1000)
}

// ViewMatrix returns the Camera's view (look-at) matrix.
func (camera *Camera) ViewMatrix() Matrix4 {
	return NewLookAtMatrix(camera.Position, camera.Target, VecY)
}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() Matrix4 {

	if !camera.updateProjectionMatrix {
		return camera.cachedProjectionMatrix
	}

	camera.updateProjectionMatrix = false
	camera.cachedProjectionMatrix = NewProjectionPerspective(camera.fieldOfView, camera.aspect, camera.Near(), camera.Far())

	return camera.cachedProjectionMatrix

}

// SetFieldOfView sets the vertical field of the view of the camera in radians.
func (camera *Camera) SetFieldOfView(fovY float64) {
	if camera.fieldOfView == fovY {
		return
	}
	camera.fieldOfView = fovY
	camera.updateProjectionMatrix = true
}

// FieldOfView returns the vertical field of view in radians.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// SetAspectRatio sets the width / height ratio of the camera's view.
func (camera *Camera) SetAspectRatio(aspect float64) {
	if camera.aspect == aspect {
		return
	}
	camera.aspect = aspect
	camera.updateProjectionMatrix = true
}

// AspectRatio returns the width / height ratio of the camera's view.
func (camera *Camera) AspectRatio() float64 {
	return camera.aspect
}

// Near returns the near plane of a camera; this is the smaller of the two supplied clipping distances.
func (camera *Camera) Near() float64 {
	return math.Min(camera.near, camera.far)
}

// SetNear sets the near plane of a camera.
func (camera *Camera) SetNear(near float64) {
	if camera.near == near {
		return
	}
	camera.near = near
	camera.updateProjectionMatrix = true
}

// Far returns the far plane of a camera; this is the larger of the two supplied clipping distances.
func (camera *Camera) Far() float64 {
	return math.Max(camera.near, camera.far)
}

// SetFar sets the far plane of the camera.
func (camera *Camera) SetFar(far float64) {
	if camera.far == far {
		return
	}
	camera.far = far
	camera.updateProjectionMatrix = true
}

// Forward returns the normalized direction the Camera is looking in.
func (camera *Camera) Forward() Vector {
	dir := camera.Target.Sub(camera.Position)
	dir.W = 0
	return dir.Unit()
}
