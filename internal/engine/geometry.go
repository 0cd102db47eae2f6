package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Geometry is triangle mesh data kept on the CPU side. Physics bounds,
// picking and persistence all work from this; the renderer uploads it to
// the GPU lazily and treats the resulting model as a cache.
type Geometry struct {
	Vertices  []rl.Vector3
	Faces     [][3]int32 // indices into Vertices, triangles only
	Normals   []rl.Vector3
	Texcoords []rl.Vector2
}

// Clone returns a deep copy of the geometry buffers.
func (g *Geometry) Clone() *Geometry {
	if g == nil {
		return nil
	}
	out := &Geometry{
		Vertices:  make([]rl.Vector3, len(g.Vertices)),
		Faces:     make([][3]int32, len(g.Faces)),
		Normals:   make([]rl.Vector3, len(g.Normals)),
		Texcoords: make([]rl.Vector2, len(g.Texcoords)),
	}
	copy(out.Vertices, g.Vertices)
	copy(out.Faces, g.Faces)
	copy(out.Normals, g.Normals)
	copy(out.Texcoords, g.Texcoords)
	return out
}

// LocalExtents returns the per-axis min/max of the untransformed vertices.
func (g *Geometry) LocalExtents() (min, max rl.Vector3) {
	if len(g.Vertices) == 0 {
		return rl.Vector3{}, rl.Vector3{}
	}
	min = g.Vertices[0]
	max = g.Vertices[0]
	for _, v := range g.Vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return min, max
}
