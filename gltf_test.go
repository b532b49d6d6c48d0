package wire3d

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// triangleBuffer holds three float32 positions, (0, 0, 0), (1, 0, 0), and (0, 1, 0), followed by three uint16 indices.
const triangleBuffer = "data:application/octet-stream;base64,AAAAAAAAAAAAAAAAAACAPwAAAAAAAAAAAAAAAAAAgD8AAAAAAAABAAIA"

const triangleGLTF = `{
	"asset": {"version": "2.0"},
	"buffers": [{"byteLength": 42, "uri": "` + triangleBuffer + `"}],
	"bufferViews": [
		{"buffer": 0, "byteOffset": 0, "byteLength": 36, "target": 34962},
		{"buffer": 0, "byteOffset": 36, "byteLength": 6, "target": 34963}
	],
	"accessors": [
		{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 0]},
		{"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
	],
	"meshes": [
		{"name": "Triangle", "primitives": [{"attributes": {"POSITION": 0}, "indices": 1}]},
		{"primitives": [{"attributes": {"POSITION": 0}}]}
	]
}`

func BenchmarkLoadGLTFData(b *testing.B) {
	data := []byte(triangleGLTF)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_, err := LoadGLTFData(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func TestLoadGLTFData(t *testing.T) {

	meshes, err := LoadGLTFData([]byte(triangleGLTF))
	require.NoError(t, err)
	require.Len(t, meshes, 2)

	tri := meshes[0]
	require.Equal(t, "Triangle", tri.Name)
	require.Equal(t, []Vector{NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(0, 1, 0)}, tri.Vertices)
	require.Equal(t, []int{0, 1, 2}, tri.Indices)
	require.Equal(t, 1, tri.TriangleCount())

	// Unnamed meshes without indices are numbered, and their vertices taken in order.
	require.Equal(t, "mesh1", meshes[1].Name)
	require.Equal(t, []int{0, 1, 2}, meshes[1].Indices)

}

func TestLoadGLTFFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "triangle.gltf")
	require.NoError(t, os.WriteFile(path, []byte(triangleGLTF), 0o644))

	meshes, err := LoadGLTFFile(path)
	require.NoError(t, err)
	require.Len(t, meshes, 2)

	_, err = LoadGLTFFile(filepath.Join(t.TempDir(), "missing.gltf"))
	require.ErrorIs(t, err, os.ErrNotExist)

}

func TestLoadGLTFErrors(t *testing.T) {

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"no meshes", `{"asset": {"version": "2.0"}}`, ErrNoMeshes},
		{"lines", strings.Replace(triangleGLTF, `"indices": 1}`, `"indices": 1, "mode": 1}`, 1), ErrUnsupportedPrimitive},
		{"no positions", strings.Replace(triangleGLTF, `"attributes": {"POSITION": 0}, "indices": 1`, `"attributes": {"NORMAL": 0}, "indices": 1`, 1), ErrUnsupportedPrimitive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadGLTFData([]byte(tc.data))
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err := LoadGLTFData([]byte("not a gltf document"))
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNoMeshes))

}

func TestDrawMesh(t *testing.T) {

	meshes, err := LoadGLTFData([]byte(triangleGLTF))
	require.NoError(t, err)

	r := triangleRenderer()
	r.Transform(NewMatrix4Scale(0.5, 0.5, 0.5))
	r.DrawMesh(meshes[0], NewColor(1, 0, 0, 1))

	require.Equal(t, 1, r.DebugInfo.Polygons)
	require.Equal(t, 3, r.DebugInfo.Lines)
	require.Equal(t, uint32(0xffff0000), r.ColorBuffer()[pixelIndex(r, 40, 32)])
	require.False(t, math.IsInf(r.DepthBuffer()[pixelIndex(r, 40, 32)], 1))

}

func TestMeshAddTriangles(t *testing.T) {

	mesh := NewMesh("quad")
	verts := []Vector{NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(1, 1, 0), NewVector(0, 1, 0)}

	require.NoError(t, mesh.AddTriangles(verts, 0, 1, 2, 0, 2, 3))
	require.NoError(t, mesh.AddTriangles(verts[:3], 0, 1, 2))

	require.Equal(t, 3, mesh.TriangleCount())
	require.Equal(t, []int{0, 1, 2, 0, 2, 3, 4, 5, 6}, mesh.Indices, "indices are offset past existing vertices")

	require.Error(t, mesh.AddTriangles(verts, 0, 1))
	require.Error(t, mesh.AddTriangles(verts, 0, 1, 4))
	require.Equal(t, 3, mesh.TriangleCount(), "failed additions leave the mesh untouched")

}
