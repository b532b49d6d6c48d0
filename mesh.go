package wire3d

import "fmt"

// Mesh is a triangle mesh, drawn by Renderer.DrawMesh as one polygon outline per triangle.
type Mesh struct {
	Name     string
	Vertices []Vector // Vertex positions in model space
	Indices  []int    // Every three indices into Vertices form a triangle
}

// NewMesh creates a new, empty Mesh with the name given.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddTriangles appends vertices to the Mesh, along with indices forming triangles out of them. The indices given are
// relative to the vertices given, not to the vertices the Mesh already holds.
func (mesh *Mesh) AddTriangles(vertices []Vector, indices ...int) error {

	if len(indices)%3 != 0 {
		return fmt.Errorf("wire3d: mesh %q: %d indices do not form whole triangles", mesh.Name, len(indices))
	}

	for _, index := range indices {
		if index < 0 || index >= len(vertices) {
			return fmt.Errorf("wire3d: mesh %q: index %d out of range of %d vertices", mesh.Name, index, len(vertices))
		}
	}

	start := len(mesh.Vertices)
	mesh.Vertices = append(mesh.Vertices, vertices...)
	for _, index := range indices {
		mesh.Indices = append(mesh.Indices, start+index)
	}

	return nil

}

// TriangleCount returns the number of triangles in the Mesh.
func (mesh *Mesh) TriangleCount() int {
	return len(mesh.Indices) / 3
}
