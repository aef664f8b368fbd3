package scene

import "math"

// FloatsPerVertex is position xyz followed by normal xyz.
const FloatsPerVertex = 6

const (
	PlaneSize     = 5.0
	CubeSize      = 1.0
	SphereRadius  = 0.5
	SphereStacks  = 16
	SphereSectors = 32
)

// Mesh is an interleaved triangle list.
type Mesh struct {
	Vertices []float32
}

func (m Mesh) VertexCount() int { return len(m.Vertices) / FloatsPerVertex }

func (m *Mesh) push(px, py, pz, nx, ny, nz float32) {
	m.Vertices = append(m.Vertices, px, py, pz, nx, ny, nz)
}

// Build returns the mesh for a kind with the scene's fixed dimensions.
func Build(kind MeshKind) Mesh {
	switch kind {
	case MeshPlane:
		return Plane(PlaneSize)
	case MeshCube:
		return Cube(CubeSize)
	default:
		return Sphere(SphereRadius, SphereStacks, SphereSectors)
	}
}

// Plane is a size x size square in the XZ plane facing +Y.
func Plane(size float32) Mesh {
	h := size / 2
	var m Mesh
	m.push(-h, 0, -h, 0, 1, 0)
	m.push(-h, 0, h, 0, 1, 0)
	m.push(h, 0, h, 0, 1, 0)
	m.push(-h, 0, -h, 0, 1, 0)
	m.push(h, 0, h, 0, 1, 0)
	m.push(h, 0, -h, 0, 1, 0)
	return m
}

// Cube is an axis-aligned cube centred on the origin.
func Cube(size float32) Mesh {
	h := size / 2
	faces := []struct {
		n    [3]float32
		u, v [3]float32
	}{
		{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
		{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
		{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
		{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
		{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
		{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
	}
	var m Mesh
	corner := func(f int, su, sv float32) {
		face := faces[f]
		var p [3]float32
		for i := 0; i < 3; i++ {
			p[i] = (face.n[i] + face.u[i]*su + face.v[i]*sv) * h
		}
		m.push(p[0], p[1], p[2], face.n[0], face.n[1], face.n[2])
	}
	for f := range faces {
		corner(f, -1, -1)
		corner(f, 1, -1)
		corner(f, 1, 1)
		corner(f, -1, -1)
		corner(f, 1, 1)
		corner(f, -1, 1)
	}
	return m
}

// Sphere is a UV sphere centred on the origin.
func Sphere(radius float32, stacks, sectors int) Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if sectors < 3 {
		sectors = 3
	}
	point := func(i, j int) (x, y, z float32) {
		phi := math.Pi * float64(i) / float64(stacks)
		theta := 2 * math.Pi * float64(j) / float64(sectors)
		return float32(math.Sin(phi) * math.Cos(theta)),
			float32(math.Cos(phi)),
			float32(-math.Sin(phi) * math.Sin(theta))
	}
	var m Mesh
	vert := func(i, j int) {
		x, y, z := point(i, j)
		m.push(x*radius, y*radius, z*radius, x, y, z)
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			if i != 0 {
				vert(i, j)
				vert(i+1, j)
				vert(i, j+1)
			}
			if i != stacks-1 {
				vert(i, j+1)
				vert(i+1, j)
				vert(i+1, j+1)
			}
		}
	}
	return m
}
