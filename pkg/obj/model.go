package obj

import (
	"iter"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// Position is a geometric vertex declared with "v"
type Position struct {
	X, Y, Z, W float64
}

// Vector3 drops the homogeneous component
func (p Position) Vector3() geometry.Vector3 {
	return geometry.NewVector3(p.X, p.Y, p.Z)
}

// TexCoord is a texture coordinate declared with "vt"
type TexCoord struct {
	U, V, W float64
}

// Normal is a vertex normal declared with "vn"
type Normal struct {
	X, Y, Z float64
}

// Vector3 converts the normal to a geometry vector
func (n Normal) Vector3() geometry.Vector3 {
	return geometry.NewVector3(n.X, n.Y, n.Z)
}

// OptionalIndex is a zero-based attribute index that may be absent.
// Index is meaningless when Valid is false.
type OptionalIndex struct {
	Index int
	Valid bool
}

func someIndex(i int) OptionalIndex {
	return OptionalIndex{Index: i, Valid: true}
}

// VertexRef is one corner of a face. All indices are zero-based and were
// checked against the attribute arrays when the face was parsed.
type VertexRef struct {
	Position int
	TexCoord OptionalIndex
	Normal   OptionalIndex
}

type faceRange struct {
	start, end int
}

type groupData struct {
	name  string
	faces []faceRange
}

type objectData struct {
	name   string
	groups []*groupData
}

// Model is a parsed OBJ document. It is built once by Parse and never
// modified afterwards, so it is safe for concurrent readers.
type Model struct {
	positions []Position
	texcoords []TexCoord
	normals   []Normal

	// corners of every face, faces reference contiguous ranges
	refs    []VertexRef
	objects []*objectData

	faceCount     int
	triangleCount int
}

// Positions returns the position array. The slice must not be modified.
func (m *Model) Positions() []Position {
	return m.positions
}

// TexCoords returns the texture coordinate array. The slice must not be modified.
func (m *Model) TexCoords() []TexCoord {
	return m.texcoords
}

// Normals returns the normal array. The slice must not be modified.
func (m *Model) Normals() []Normal {
	return m.normals
}

// Position returns the position at zero-based index i
func (m *Model) Position(i int) Position {
	return m.positions[i]
}

// TexCoord returns the texture coordinate at zero-based index i
func (m *Model) TexCoord(i int) TexCoord {
	return m.texcoords[i]
}

// Normal returns the normal at zero-based index i
func (m *Model) Normal(i int) Normal {
	return m.normals[i]
}

func (m *Model) PositionCount() int { return len(m.positions) }
func (m *Model) TexCoordCount() int { return len(m.texcoords) }
func (m *Model) NormalCount() int   { return len(m.normals) }

// FaceCount returns the number of faces across all objects and groups
func (m *Model) FaceCount() int {
	return m.faceCount
}

// TriangleCount returns the number of triangles Triangles will yield
func (m *Model) TriangleCount() int {
	return m.triangleCount
}

// GroupCount returns the number of groups across all objects
func (m *Model) GroupCount() int {
	count := 0
	for _, o := range m.objects {
		count += len(o.groups)
	}
	return count
}

// Objects returns the objects in declaration order. Faces declared before
// any "o" directive belong to an object with an empty name.
func (m *Model) Objects() []Object {
	objects := make([]Object, len(m.objects))
	for i, data := range m.objects {
		objects[i] = Object{model: m, data: data}
	}
	return objects
}

// Object returns the first object with the given name
func (m *Model) Object(name string) (Object, bool) {
	for _, data := range m.objects {
		if data.name == name {
			return Object{model: m, data: data}, true
		}
	}
	return Object{}, false
}

// Groups iterates over the groups of every object
func (m *Model) Groups() iter.Seq[Group] {
	return func(yield func(Group) bool) {
		for _, o := range m.objects {
			for _, g := range o.groups {
				if !yield(Group{model: m, data: g}) {
					return
				}
			}
		}
	}
}

// Faces iterates over every face in object, group, declaration order
func (m *Model) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for g := range m.Groups() {
			for f := range g.faces() {
				if !yield(f) {
					return
				}
			}
		}
	}
}

// Triangles iterates over the fan triangulation of every face.
// Each call starts a fresh pass over the model.
func (m *Model) Triangles() iter.Seq[Triangle] {
	return trianglesOf(m.Faces())
}

func (m *Model) face(r faceRange) Face {
	return Face{model: m, refs: m.refs[r.start:r.end:r.end]}
}
