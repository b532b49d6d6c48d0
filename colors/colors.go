// Package colors contains functions to quickly generate wire3d.Color values by name (i.e. "White()", "Cyan()", etc).
package colors

import "github.com/solarlune/wire3d"

// Transparent returns a fully transparent black wire3d.Color.
func Transparent() wire3d.Color {
	return wire3d.NewColor(0, 0, 0, 0)
}

// White returns an opaque white wire3d.Color.
func White() wire3d.Color {
	return wire3d.NewColor(1, 1, 1, 1)
}

// Black returns an opaque black wire3d.Color.
func Black() wire3d.Color {
	return wire3d.NewColor(0, 0, 0, 1)
}

// Gray returns an opaque gray wire3d.Color.
func Gray() wire3d.Color {
	return wire3d.NewColor(0.5, 0.5, 0.5, 1)
}

// LightGray returns an opaque light gray wire3d.Color.
func LightGray() wire3d.Color {
	return wire3d.NewColor(0.8, 0.8, 0.8, 1)
}

// DarkGray returns an opaque dark gray wire3d.Color.
func DarkGray() wire3d.Color {
	return wire3d.NewColor(0.2, 0.2, 0.2, 1)
}

// Red returns an opaque red wire3d.Color.
func Red() wire3d.Color {
	return wire3d.NewColor(1, 0, 0, 1)
}

// Orange returns an opaque orange wire3d.Color.
func Orange() wire3d.Color {
	return wire3d.NewColor(1, 0.5, 0, 1)
}

// Yellow returns an opaque yellow wire3d.Color.
func Yellow() wire3d.Color {
	return wire3d.NewColor(1, 1, 0, 1)
}

// Green returns an opaque green wire3d.Color.
func Green() wire3d.Color {
	return wire3d.NewColor(0, 1, 0, 1)
}

// Cyan returns an opaque cyan wire3d.Color.
func Cyan() wire3d.Color {
	return wire3d.NewColor(0, 1, 1, 1)
}

// Blue returns an opaque blue wire3d.Color.
func Blue() wire3d.Color {
	return wire3d.NewColor(0, 0, 1, 1)
}

// Magenta returns an opaque magenta wire3d.Color.
func Magenta() wire3d.Color {
	return wire3d.NewColor(1, 0, 1, 1)
}

// Slate returns the blue-gray the demo viewer clears to (0x5e676e).
func Slate() wire3d.Color {
	return wire3d.NewColorFromHex(0x5e676e)
}
