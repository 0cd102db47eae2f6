package world

import (
	"forge3d/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Primitive mesh generators. All meshes are centered on the origin with Y
// up; the editor scales and moves them through the transform, never by
// rebuilding vertices.
const (
	primitiveSections = 32
	primitiveRings    = 16
)

// CubeGeometry is a 2x2x2 box.
func CubeGeometry() *engine.Geometry {
	v := []rl.Vector3{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1},
		{X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	faces := [][3]int32{
		{0, 2, 1}, {0, 3, 2}, // back
		{4, 5, 6}, {4, 6, 7}, // front
		{0, 1, 5}, {0, 5, 4}, // bottom
		{3, 7, 6}, {3, 6, 2}, // top
		{0, 4, 7}, {0, 7, 3}, // left
		{1, 2, 6}, {1, 6, 5}, // right
	}
	g := &engine.Geometry{Vertices: v, Faces: faces}
	g.Normals = vertexNormals(g)
	g.Texcoords = boxTexcoords(v)
	return g
}

// SphereGeometry is a unit-radius UV sphere.
func SphereGeometry() *engine.Geometry {
	return uvSphere(1, primitiveSections, primitiveRings)
}

// ConeGeometry is radius 1, height 2, centered so the base sits at y=-1
// and the apex at y=1.
func ConeGeometry() *engine.Geometry {
	g := &engine.Geometry{}

	// Base ring
	for i := 0; i < primitiveSections; i++ {
		a := 2 * math32.Pi * float32(i) / primitiveSections
		g.Vertices = append(g.Vertices, rl.Vector3{X: math32.Cos(a), Y: -1, Z: math32.Sin(a)})
	}
	apex := int32(len(g.Vertices))
	g.Vertices = append(g.Vertices, rl.Vector3{Y: 1})
	baseCenter := int32(len(g.Vertices))
	g.Vertices = append(g.Vertices, rl.Vector3{Y: -1})

	for i := 0; i < primitiveSections; i++ {
		j := int32((i + 1) % primitiveSections)
		// Side, then base cap facing down.
		g.Faces = append(g.Faces,
			[3]int32{int32(i), apex, j},
			[3]int32{int32(i), j, baseCenter})
	}

	g.Normals = vertexNormals(g)
	g.Texcoords = make([]rl.Vector2, len(g.Vertices))
	return g
}

// CylinderGeometry is radius 1, height 2, centered on the origin.
func CylinderGeometry() *engine.Geometry {
	g := &engine.Geometry{}

	for i := 0; i < primitiveSections; i++ {
		a := 2 * math32.Pi * float32(i) / primitiveSections
		x, z := math32.Cos(a), math32.Sin(a)
		g.Vertices = append(g.Vertices,
			rl.Vector3{X: x, Y: -1, Z: z},
			rl.Vector3{X: x, Y: 1, Z: z})
	}
	bottomCenter := int32(len(g.Vertices))
	g.Vertices = append(g.Vertices, rl.Vector3{Y: -1})
	topCenter := int32(len(g.Vertices))
	g.Vertices = append(g.Vertices, rl.Vector3{Y: 1})

	for i := 0; i < primitiveSections; i++ {
		b0 := int32(i * 2)
		t0 := b0 + 1
		b1 := int32(((i + 1) % primitiveSections) * 2)
		t1 := b1 + 1
		g.Faces = append(g.Faces,
			[3]int32{b0, t0, t1},
			[3]int32{b0, t1, b1},
			[3]int32{b0, b1, bottomCenter},
			[3]int32{t0, topCenter, t1})
	}

	g.Normals = vertexNormals(g)
	g.Texcoords = make([]rl.Vector2, len(g.Vertices))
	return g
}

// CapsuleGeometry is radius 0.5 with a cylinder section 2 high, standing
// upright. Built as a stretched UV sphere: the upper hemisphere is lifted
// by half the cylinder height, the lower dropped.
func CapsuleGeometry() *engine.Geometry {
	const radius = 0.5
	const halfCyl = 1.0

	g := &engine.Geometry{}
	for ring := 0; ring <= primitiveRings; ring++ {
		phi := math32.Pi * float32(ring) / primitiveRings // 0 at the top pole
		y := radius * math32.Cos(phi)
		r := radius * math32.Sin(phi)
		offset := float32(halfCyl)
		if ring > primitiveRings/2 {
			offset = -halfCyl
		}
		for s := 0; s <= primitiveSections; s++ {
			theta := 2 * math32.Pi * float32(s) / primitiveSections
			g.Vertices = append(g.Vertices, rl.Vector3{
				X: r * math32.Cos(theta),
				Y: y + offset,
				Z: r * math32.Sin(theta),
			})
		}
	}
	stitchRings(g, primitiveSections, primitiveRings)

	g.Normals = vertexNormals(g)
	g.Texcoords = make([]rl.Vector2, len(g.Vertices))
	return g
}

// TerrainGeometry is a flat XZ plane of the given size in meters: four
// vertices, two upward-facing triangles.
func TerrainGeometry(sizeX, sizeZ float32) *engine.Geometry {
	hx, hz := sizeX/2, sizeZ/2
	return &engine.Geometry{
		Vertices: []rl.Vector3{
			{X: -hx, Z: -hz},
			{X: hx, Z: -hz},
			{X: hx, Z: hz},
			{X: -hx, Z: hz},
		},
		Faces: [][3]int32{{0, 2, 1}, {0, 3, 2}},
		Normals: []rl.Vector3{
			{Y: 1}, {Y: 1}, {Y: 1}, {Y: 1},
		},
		Texcoords: []rl.Vector2{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
	}
}

func uvSphere(radius float32, sections, rings int) *engine.Geometry {
	g := &engine.Geometry{}
	for ring := 0; ring <= rings; ring++ {
		phi := math32.Pi * float32(ring) / float32(rings)
		y := radius * math32.Cos(phi)
		r := radius * math32.Sin(phi)
		for s := 0; s <= sections; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(sections)
			g.Vertices = append(g.Vertices, rl.Vector3{
				X: r * math32.Cos(theta),
				Y: y,
				Z: r * math32.Sin(theta),
			})
		}
	}
	stitchRings(g, sections, rings)

	g.Normals = make([]rl.Vector3, len(g.Vertices))
	for i, v := range g.Vertices {
		g.Normals[i] = rl.Vector3Normalize(v)
	}
	g.Texcoords = make([]rl.Vector2, len(g.Vertices))
	for i := range g.Texcoords {
		ring := i / (sections + 1)
		s := i % (sections + 1)
		g.Texcoords[i] = rl.Vector2{
			X: float32(s) / float32(sections),
			Y: float32(ring) / float32(rings),
		}
	}
	return g
}

// stitchRings connects a (rings+1) x (sections+1) vertex grid into quads
// split to triangles.
func stitchRings(g *engine.Geometry, sections, rings int) {
	stride := int32(sections + 1)
	for ring := 0; ring < rings; ring++ {
		for s := 0; s < sections; s++ {
			a := int32(ring)*stride + int32(s)
			b := a + stride
			g.Faces = append(g.Faces,
				[3]int32{a, a + 1, b + 1},
				[3]int32{a, b + 1, b})
		}
	}
}

// vertexNormals accumulates area-weighted face normals per vertex. Good
// enough for flat-shaded editor primitives.
func vertexNormals(g *engine.Geometry) []rl.Vector3 {
	normals := make([]rl.Vector3, len(g.Vertices))
	for _, f := range g.Faces {
		v0, v1, v2 := g.Vertices[f[0]], g.Vertices[f[1]], g.Vertices[f[2]]
		n := rl.Vector3CrossProduct(
			rl.Vector3Subtract(v1, v0),
			rl.Vector3Subtract(v2, v0))
		for _, idx := range f {
			normals[idx] = rl.Vector3Add(normals[idx], n)
		}
	}
	for i, n := range normals {
		if rl.Vector3Length(n) > 1e-8 {
			normals[i] = rl.Vector3Normalize(n)
		} else {
			normals[i] = rl.Vector3{Y: 1}
		}
	}
	return normals
}

func boxTexcoords(v []rl.Vector3) []rl.Vector2 {
	uv := make([]rl.Vector2, len(v))
	for i, p := range v {
		uv[i] = rl.Vector2{X: (p.X + 1) / 2, Y: (p.Z + 1) / 2}
	}
	return uv
}
