package wire3d

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var (
	// ErrNoMeshes is returned when a glTF document holds no triangle meshes.
	ErrNoMeshes = errors.New("wire3d: glTF document contains no meshes")
	// ErrUnsupportedPrimitive is returned when a glTF mesh primitive is not a triangle list, or has no positions.
	ErrUnsupportedPrimitive = errors.New("wire3d: unsupported glTF primitive")
)

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, returning each of its meshes in document order.
// External buffers are resolved relative to the file's directory.
func LoadGLTFFile(path string) ([]*Mesh, error) {

	doc, err := gltf.Open(path)

	if err != nil {
		return nil, fmt.Errorf("wire3d: opening glTF file: %w", err)
	}

	return loadMeshes(doc)

}

// LoadGLTFData loads a .gltf or .glb file from the byte data given, returning each of its meshes in document order.
// Only triangle list primitives are supported; all of a mesh's primitives are merged into a single Mesh.
// External buffers can't be resolved when loading from bytes, so buffers must be embedded (GLB or data URIs).
func LoadGLTFData(data []byte) ([]*Mesh, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("wire3d: decoding glTF data: %w", err)
	}

	return loadMeshes(doc)

}

func loadMeshes(doc *gltf.Document) ([]*Mesh, error) {

	meshes := make([]*Mesh, 0, len(doc.Meshes))

	for meshIndex, gltfMesh := range doc.Meshes {

		name := gltfMesh.Name
		if name == "" {
			name = fmt.Sprintf("mesh%d", meshIndex)
		}

		newMesh := NewMesh(name)

		for primIndex, v := range gltfMesh.Primitives {

			if v.Mode != gltf.PrimitiveTriangles {
				return nil, fmt.Errorf("%w: mesh %q primitive %d has mode %d", ErrUnsupportedPrimitive, name, primIndex, v.Mode)
			}

			posAccessor, ok := v.Attributes[gltf.POSITION]
			if !ok {
				return nil, fmt.Errorf("%w: mesh %q primitive %d has no positions", ErrUnsupportedPrimitive, name, primIndex)
			}

			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], [][3]float32{})
			if err != nil {
				return nil, fmt.Errorf("wire3d: reading positions of mesh %q: %w", name, err)
			}

			vertices := make([]Vector, len(vertPos))
			for i, p := range vertPos {
				vertices[i] = NewVector(float64(p[0]), float64(p[1]), float64(p[2]))
			}

			var indices []int

			if v.Indices != nil {

				gltfIndices, err := modeler.ReadIndices(doc, doc.Accessors[*v.Indices], []uint32{})
				if err != nil {
					return nil, fmt.Errorf("wire3d: reading indices of mesh %q: %w", name, err)
				}

				indices = make([]int, len(gltfIndices))
				for i, j := range gltfIndices {
					indices[i] = int(j)
				}

			} else {

				indices = make([]int, len(vertices)-len(vertices)%3)
				for i := range indices {
					indices[i] = i
				}

			}

			if err := newMesh.AddTriangles(vertices, indices...); err != nil {
				return nil, err
			}

		}

		Logger().Info("wire3d: mesh loaded", "name", name, "vertices", len(newMesh.Vertices), "triangles", newMesh.TriangleCount())

		meshes = append(meshes, newMesh)

	}

	if len(meshes) == 0 {
		return nil, ErrNoMeshes
	}

	return meshes, nil

}
