package wire3d

import (
	"math"
)

// Movement is a bitmask of the directions a FirstPersonController is currently moving in.
type Movement uint8

const (
	MoveForward Movement = 1 << iota // Move along the look direction
	MoveBack                         // Move against the look direction
	MoveLeft                         // Strafe left on the XZ plane
	MoveRight                        // Strafe right on the XZ plane
)

const (
	// DefaultLookSensitivity is how far (in radians) the view turns per pixel of pointer movement while dragging.
	DefaultLookSensitivity = 0.005
	// MaxPitch is the largest pitch (in radians, up or down) the controller allows, just short of straight up or down.
	MaxPitch = 1.57
)

// FirstPersonController is a fly-camera controller. It turns movement key state and pointer drags into Camera position
// and target updates. It does not depend on any input system; the host translates its own key and pointer events into
// calls on the controller.
type FirstPersonController struct {
	Camera          *Camera
	LookSensitivity float64 // Radians of rotation per pixel dragged; defaults to DefaultLookSensitivity.

	lookDir  Vector
	yaw      float64
	pitch    float64
	movement Movement
	lastX    int
	lastY    int
	dragging bool
}

// NewFirstPersonController creates a FirstPersonController for the Camera given, with its yaw and pitch derived from the
// Camera's current look direction.
func NewFirstPersonController(camera *Camera) *FirstPersonController {
	lookDir := camera.Forward()
	return &FirstPersonController{
		Camera:          camera,
		LookSensitivity: DefaultLookSensitivity,
		lookDir:         lookDir,
		yaw:             -math.Atan2(-lookDir.X, -lookDir.Z),
		pitch:           -math.Asin(lookDir.Y),
	}
}

// KeyDown starts movement in the given direction(s).
func (fpc *FirstPersonController) KeyDown(movement Movement) {
	fpc.movement |= movement
}

// KeyUp stops movement in the given direction(s).
func (fpc *FirstPersonController) KeyUp(movement Movement) {
	fpc.movement &^= movement
}

// SetMovement replaces the movement state outright; this is handy for hosts that poll key state once per frame.
func (fpc *FirstPersonController) SetMovement(movement Movement) {
	fpc.movement = movement
}

// Movement returns the current movement state.
func (fpc *FirstPersonController) Movement() Movement {
	return fpc.movement
}

// PointerDown begins a drag at the given pointer position.
func (fpc *FirstPersonController) PointerDown(x, y int) {
	fpc.dragging = true
	fpc.lastX = x
	fpc.lastY = y
}

// PointerMove updates the look direction from the pointer's movement if a drag is in progress. Pitch is clamped to
// ±MaxPitch so the view never flips over.
func (fpc *FirstPersonController) PointerMove(x, y int) {

	if fpc.dragging {
		fpc.yaw += fpc.LookSensitivity * float64(x-fpc.lastX)
		fpc.pitch += fpc.LookSensitivity * float64(y-fpc.lastY)
		fpc.pitch = clamp(fpc.pitch, -MaxPitch, MaxPitch)
		rotation := NewMatrix4Rotate(0, 1, 0, fpc.yaw).Mult(NewMatrix4Rotate(1, 0, 0, fpc.pitch))
		fpc.lookDir = rotation.MultVec(NewVector(0, 0, -1))
	}

	fpc.lastX = x
	fpc.lastY = y

}

// PointerUp ends a drag.
func (fpc *FirstPersonController) PointerUp(x, y int) {
	fpc.dragging = false
	fpc.lastX = x
	fpc.lastY = y
}

// Dragging returns whether a pointer drag is in progress.
func (fpc *FirstPersonController) Dragging() bool {
	return fpc.dragging
}

// Yaw returns the current yaw in radians.
func (fpc *FirstPersonController) Yaw() float64 {
	return fpc.yaw
}

// Pitch returns the current pitch in radians.
func (fpc *FirstPersonController) Pitch() float64 {
	return fpc.pitch
}

// Update moves the Camera according to the movement state, by speed units per second over the elapsed seconds given,
// and points the Camera along the current look direction. Forward takes priority over back, and left over right.
func (fpc *FirstPersonController) Update(seconds, speed float64) {

	pos := fpc.Camera.Position
	scaledSpeed := seconds * speed
	look := fpc.lookDir

	if fpc.movement&MoveForward == MoveForward {
		pos = pos.Add(look.Scale(scaledSpeed))
	} else if fpc.movement&MoveBack == MoveBack {
		pos = pos.Sub(look.Scale(scaledSpeed))
	}

	if fpc.movement&(MoveLeft|MoveRight) != 0 {
		scalar := scaledSpeed / math.Sqrt(look.Z*look.Z+look.X*look.X)
		strafe := NewVector(-look.Z*scalar, 0, look.X*scalar)
		if fpc.movement&MoveLeft == MoveLeft {
			pos = pos.Sub(strafe)
		} else {
			pos = pos.Add(strafe)
		}
	}

	fpc.Camera.Position = pos
	fpc.Camera.Target = pos.Add(look)

}
