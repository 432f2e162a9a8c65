package obj

import (
	"fmt"
	"iter"
	"strings"
)

// Object is a read-only view of an "o" block
type Object struct {
	model *Model
	data  *objectData
}

// Name returns the object name, empty for the implicit default object
func (o Object) Name() string {
	return o.data.name
}

// Groups returns the groups of the object in declaration order
func (o Object) Groups() []Group {
	groups := make([]Group, len(o.data.groups))
	for i, data := range o.data.groups {
		groups[i] = Group{model: o.model, data: data}
	}
	return groups
}

// Group returns the group with the given name
func (o Object) Group(name string) (Group, bool) {
	for _, data := range o.data.groups {
		if data.name == name {
			return Group{model: o.model, data: data}, true
		}
	}
	return Group{}, false
}

// FaceCount returns the number of faces in all groups of the object
func (o Object) FaceCount() int {
	count := 0
	for _, g := range o.data.groups {
		count += len(g.faces)
	}
	return count
}

// Triangles iterates over the triangles of every face in the object
func (o Object) Triangles() iter.Seq[Triangle] {
	return trianglesOf(func(yield func(Face) bool) {
		for _, g := range o.Groups() {
			for f := range g.faces() {
				if !yield(f) {
					return
				}
			}
		}
	})
}

// Group is a read-only view of a "g" block
type Group struct {
	model *Model
	data  *groupData
}

// Name returns the group name, empty for the implicit default group
func (g Group) Name() string {
	return g.data.name
}

// Len returns the number of faces in the group
func (g Group) Len() int {
	return len(g.data.faces)
}

// Face returns the face at index i
func (g Group) Face(i int) (Face, bool) {
	if i < 0 || i >= len(g.data.faces) {
		return Face{}, false
	}
	return g.model.face(g.data.faces[i]), true
}

// Faces returns the faces of the group in declaration order
func (g Group) Faces() []Face {
	faces := make([]Face, len(g.data.faces))
	for i, r := range g.data.faces {
		faces[i] = g.model.face(r)
	}
	return faces
}

// Triangles iterates over the triangles of every face in the group
func (g Group) Triangles() iter.Seq[Triangle] {
	return trianglesOf(g.faces())
}

func (g Group) faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for _, r := range g.data.faces {
			if !yield(g.model.face(r)) {
				return
			}
		}
	}
}

// Face is a read-only view of a polygon declared with "f"
type Face struct {
	model *Model
	refs  []VertexRef
}

// Len returns the number of corners
func (f Face) Len() int {
	return len(f.refs)
}

// Refs returns the resolved index triples. The slice must not be modified.
func (f Face) Refs() []VertexRef {
	return f.refs
}

// Vertex returns the corner at index i
func (f Face) Vertex(i int) (Vertex, bool) {
	if i < 0 || i >= len(f.refs) {
		return Vertex{}, false
	}
	return Vertex{model: f.model, ref: f.refs[i]}, true
}

// Vertices iterates over the corners in winding order
func (f Face) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for _, ref := range f.refs {
			if !yield(Vertex{model: f.model, ref: ref}) {
				return
			}
		}
	}
}

func (f Face) String() string {
	var sb strings.Builder
	sb.WriteString("f")
	for _, ref := range f.refs {
		sb.WriteByte(' ')
		sb.WriteString(ref.String())
	}
	return sb.String()
}

// String formats the reference in OBJ face syntax with one-based indices
func (r VertexRef) String() string {
	s := fmt.Sprintf("%d", r.Position+1)
	switch {
	case r.TexCoord.Valid && r.Normal.Valid:
		s += fmt.Sprintf("/%d/%d", r.TexCoord.Index+1, r.Normal.Index+1)
	case r.TexCoord.Valid:
		s += fmt.Sprintf("/%d", r.TexCoord.Index+1)
	case r.Normal.Valid:
		s += fmt.Sprintf("//%d", r.Normal.Index+1)
	}
	return s
}

// Vertex resolves a VertexRef against the attribute arrays of its model.
// It is only valid while the model is alive and holds no attribute data
// itself.
type Vertex struct {
	model *Model
	ref   VertexRef
}

// Ref returns the underlying index triple
func (v Vertex) Ref() VertexRef {
	return v.ref
}

// PositionIndex returns the zero-based position index
func (v Vertex) PositionIndex() int {
	return v.ref.Position
}

// Position returns the vertex position
func (v Vertex) Position() Position {
	return v.model.positions[v.ref.Position]
}

// TexCoordIndex returns the zero-based texture coordinate index, if any
func (v Vertex) TexCoordIndex() (int, bool) {
	return v.ref.TexCoord.Index, v.ref.TexCoord.Valid
}

// TexCoord returns the texture coordinate. The second result is false when
// the face did not reference one.
func (v Vertex) TexCoord() (TexCoord, bool) {
	if !v.ref.TexCoord.Valid {
		return TexCoord{}, false
	}
	return v.model.texcoords[v.ref.TexCoord.Index], true
}

// NormalIndex returns the zero-based normal index, if any
func (v Vertex) NormalIndex() (int, bool) {
	return v.ref.Normal.Index, v.ref.Normal.Valid
}

// Normal returns the vertex normal. The second result is false when the
// face did not reference one.
func (v Vertex) Normal() (Normal, bool) {
	if !v.ref.Normal.Valid {
		return Normal{}, false
	}
	return v.model.normals[v.ref.Normal.Index], true
}
