package solid

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// Mesh is a flat triangle mesh: three floats per vertex and normal, three
// indices per triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	// Name is the uid of the feature the mesh came from.
	Name string `json:"name"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) / 3 }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool { return len(m.Vertices) == 0 }

// ToMesh tessellates a solid with marching cubes. cells <= 0 selects the
// default resolution.
func ToMesh(s sdf.SDF3, cells int) *Mesh {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	m := &Mesh{
		Vertices: make([]float32, 0, len(triangles)*9),
		Normals:  make([]float32, 0, len(triangles)*9),
		Indices:  make([]uint32, 0, len(triangles)*3),
	}
	for i, tri := range triangles {
		n := tri.Normal()
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)
		for j := 0; j < 3; j++ {
			v := tri[j]
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, nx, ny, nz)
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}
	return m
}

// WriteSTL tessellates a solid and writes it as an STL file. cells <= 0
// selects the default resolution.
func WriteSTL(s sdf.SDF3, path string, cells int) {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	render.ToSTL(s, path, render.NewMarchingCubesUniform(cells))
}
