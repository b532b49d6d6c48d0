package wire3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcode(t *testing.T) {

	tests := []struct {
		name string
		v    vertex
		want uint8
	}{
		{"inside", vertex{0, 0, 0, 1}, 0},
		{"on the boundary", vertex{1, -1, 1, 1}, 0},
		{"+x", vertex{2, 0, 0, 1}, clipPosX},
		{"+y", vertex{0, 2, 0, 1}, clipPosY},
		{"+z", vertex{0, 0, 2, 1}, clipPosZ},
		{"-x", vertex{-2, 0, 0, 1}, clipNegX},
		{"-y", vertex{0, -2, 0, 1}, clipNegY},
		{"-z", vertex{0, 0, -2, 1}, clipNegZ},
		{"corner", vertex{2, -2, 2, 1}, clipPosX | clipNegY | clipPosZ},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, outcode(&tc.v))
		})
	}

	require.Equal(t, uint8(32), clipPosX)
	require.Equal(t, uint8(1), clipNegZ)

}

func TestClipSegment(t *testing.T) {

	t.Run("inside", func(t *testing.T) {
		a, b := vertex{-0.5, 0, 0, 1}, vertex{0.5, 0.5, 0, 1}
		visible, clipped := clipSegment(&a, &b)
		require.True(t, visible)
		require.False(t, clipped)
		require.Equal(t, vertex{-0.5, 0, 0, 1}, a)
		require.Equal(t, vertex{0.5, 0.5, 0, 1}, b)
	})

	t.Run("rejected", func(t *testing.T) {
		a, b := vertex{2, 0, 0, 1}, vertex{3, 0.5, 0, 1}
		visible, _ := clipSegment(&a, &b)
		require.False(t, visible)
	})

	t.Run("shortened", func(t *testing.T) {
		a, b := vertex{0, 0, 0, 1}, vertex{3, 0, 0, 1}
		visible, clipped := clipSegment(&a, &b)
		require.True(t, visible)
		require.True(t, clipped)
		require.Equal(t, vertex{0, 0, 0, 1}, a)
		require.InDelta(t, 1, b.x, 1e-12)
		require.InDelta(t, b.w, b.x, 1e-12)
	})

	t.Run("both ends", func(t *testing.T) {
		a, b := vertex{-3, 0.25, 0, 1}, vertex{3, 0.25, 0, 1}
		visible, clipped := clipSegment(&a, &b)
		require.True(t, visible)
		require.True(t, clipped)
		require.InDelta(t, -1, a.x, 1e-12)
		require.InDelta(t, 1, b.x, 1e-12)
		require.InDelta(t, 0.25, a.y, 1e-12)
	})

	t.Run("behind the eye", func(t *testing.T) {
		// One end in front of the near plane, one behind the viewer.
		a, b := vertex{0, 0, 0, 1}, vertex{0, 0, -3, -1}
		visible, _ := clipSegment(&a, &b)
		require.True(t, visible)
		require.Zero(t, outcode(&a))
		require.Zero(t, outcode(&b))
	})

	t.Run("not converged", func(t *testing.T) {
		// Five passes aren't enough to bring this segment inside; it is still reported visible.
		a := vertex{-0.7399077454309193, 9.353292810833299, 8.945185819735741, 0.015117944535638417}
		b := vertex{1.8281803994191304, -2.645452021179895, -1.1707248575279383, 2.181398836055944}
		visible, clipped := clipSegment(&a, &b)
		require.True(t, visible)
		require.True(t, clipped)
		require.NotZero(t, outcode(&a)|outcode(&b))
		require.True(t, isFinite(a.x, a.y, a.z, a.w, b.x, b.y, b.z, b.w))
	})

	t.Run("infinite endpoint", func(t *testing.T) {
		// Clipping towards an infinite endpoint produces NaN, which no plane test catches.
		a, b := vertex{0, 0, 0, 1}, vertex{math.Inf(1), 0, 0, 1}
		visible, _ := clipSegment(&a, &b)
		require.True(t, visible)
		require.Equal(t, vertex{0, 0, 0, 1}, a)
		require.True(t, math.IsNaN(b.x))
	})

}
