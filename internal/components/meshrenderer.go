package components

import (
	"unsafe"

	"forge3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
)

// MeshRenderer owns an object's triangle geometry and material. Geometry is
// kept CPU-side so physics, picking and persistence never need the GPU; the
// raylib model is a lazily built render cache.
//
// The Texture handle is owned by whoever loaded it. Duplicated objects share
// the handle, they do not copy the texture.
type MeshRenderer struct {
	engine.BaseComponent
	Geometry *engine.Geometry
	Color    rl.Color
	Texture    rl.Texture2D
	HasTexture bool

	// Source descriptor, used to rebuild the object deterministically on
	// scene load. Exactly one of ModelPath/Primitive is set; terrain uses
	// Primitive "terrain".
	ModelPath string
	Primitive string
	Dims      []float32

	model    rl.Model
	uploaded bool

	// Flat buffers referenced by the uploaded mesh; kept alive here so the
	// GPU upload never reads freed memory.
	flatVerts     []float32
	flatNormals   []float32
	flatTexcoords []float32
}

func NewMeshRenderer(geom *engine.Geometry, color rl.Color) *MeshRenderer {
	return &MeshRenderer{
		Geometry: geom,
		Color:    color,
	}
}

// CloneShared returns a renderer for a duplicated object: geometry and
// material are deep-copied, the texture handle and GPU cache are not. The
// clone uploads its own model on first draw.
func (m *MeshRenderer) CloneShared() (*MeshRenderer, error) {
	clone := &MeshRenderer{
		Color:      m.Color,
		Texture:    m.Texture,
		HasTexture: m.HasTexture,
		ModelPath:  m.ModelPath,
		Primitive:  m.Primitive,
	}
	if m.Geometry != nil {
		clone.Geometry = m.Geometry.Clone()
	}
	if err := copier.CopyWithOption(&clone.Dims, &m.Dims, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return clone, nil
}

// Transparent reports whether the material should render in the blended
// pass (alpha below 0.99).
func (m *MeshRenderer) Transparent() bool {
	return m.Color.A < 253
}

// Draw renders the mesh at the owning object's world transform, uploading
// the geometry on first use. Must run on the render thread with a window
// open.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || m.Geometry == nil {
		return
	}
	if !m.uploaded {
		m.upload()
		if !m.uploaded {
			return
		}
	}

	m.model.Transform = g.WorldMatrix()
	rl.DrawModel(m.model, rl.Vector3Zero(), 1.0, m.Color)
}

// upload flattens the indexed geometry into non-indexed triangle buffers
// and hands them to the GPU.
func (m *MeshRenderer) upload() {
	geom := m.Geometry
	if len(geom.Faces) == 0 || len(geom.Vertices) == 0 {
		return
	}

	vertexCount := len(geom.Faces) * 3
	m.flatVerts = make([]float32, 0, vertexCount*3)
	m.flatNormals = make([]float32, 0, vertexCount*3)
	m.flatTexcoords = make([]float32, 0, vertexCount*2)

	for _, face := range geom.Faces {
		a, b, c := faceVertex(geom, face[0]), faceVertex(geom, face[1]), faceVertex(geom, face[2])
		normal := faceNormal(a, b, c)

		for vi, v := range [3]rl.Vector3{a, b, c} {
			m.flatVerts = append(m.flatVerts, v.X, v.Y, v.Z)

			n := normal
			if int(face[vi]) < len(geom.Normals) {
				n = geom.Normals[face[vi]]
			}
			m.flatNormals = append(m.flatNormals, n.X, n.Y, n.Z)

			var tc rl.Vector2
			if int(face[vi]) < len(geom.Texcoords) {
				tc = geom.Texcoords[face[vi]]
			}
			m.flatTexcoords = append(m.flatTexcoords, tc.X, tc.Y)
		}
	}

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(len(geom.Faces)),
	}
	mesh.Vertices = &m.flatVerts[0]
	mesh.Normals = &m.flatNormals[0]
	mesh.Texcoords = &m.flatTexcoords[0]

	rl.UploadMesh(&mesh, false)
	m.model = rl.LoadModelFromMesh(mesh)
	if m.HasTexture {
		rl.SetMaterialTexture(m.model.Materials, rl.MapDiffuse, m.Texture)
	}
	m.uploaded = true
}

// InvalidateModel drops the GPU cache; the next Draw re-uploads. Call after
// mutating Geometry in place.
func (m *MeshRenderer) InvalidateModel() {
	if m.uploaded {
		m.releaseModel()
	}
}

func (m *MeshRenderer) Unload() {
	if m.uploaded {
		m.releaseModel()
	}
}

func (m *MeshRenderer) releaseModel() {
	// The mesh CPU buffers are Go memory; null them out so UnloadModel only
	// releases the GPU side.
	meshes := unsafe.Slice(m.model.Meshes, m.model.MeshCount)
	for i := range meshes {
		meshes[i].Vertices = nil
		meshes[i].Normals = nil
		meshes[i].Texcoords = nil
		meshes[i].Indices = nil
	}
	rl.UnloadModel(m.model)
	m.uploaded = false
	m.flatVerts = nil
	m.flatNormals = nil
	m.flatTexcoords = nil
}

func faceVertex(g *engine.Geometry, idx int32) rl.Vector3 {
	if int(idx) >= len(g.Vertices) {
		return rl.Vector3{}
	}
	return g.Vertices[idx]
}

func faceNormal(a, b, c rl.Vector3) rl.Vector3 {
	n := rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a))
	if rl.Vector3Length(n) < 1e-8 {
		return rl.Vector3{Y: 1}
	}
	return rl.Vector3Normalize(n)
}
