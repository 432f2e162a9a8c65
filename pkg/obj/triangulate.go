package obj

import (
	"iter"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// Triangle is three corners of a face in winding order
type Triangle [3]Vertex

// Geometry converts the triangle to a geometry.Triangle. The facet normal is
// computed from the winding order, not taken from the vertex normals.
func (t Triangle) Geometry() geometry.Triangle {
	tri := geometry.Triangle{
		V1: t[0].Position().Vector3(),
		V2: t[1].Position().Vector3(),
		V3: t[2].Position().Vector3(),
	}
	tri.Normal = tri.CalculateNormal()
	return tri
}

// Triangles splits the face into a fan around its first corner, yielding
// (v0, vi, vi+1) for i = 1..n-2. The result is exact for convex faces; a
// concave face may produce triangles that cover area outside the polygon.
func (f Face) Triangles() iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		for i := 1; i+1 < len(f.refs); i++ {
			tri := Triangle{
				{model: f.model, ref: f.refs[0]},
				{model: f.model, ref: f.refs[i]},
				{model: f.model, ref: f.refs[i+1]},
			}
			if !yield(tri) {
				return
			}
		}
	}
}

// TriangleCount returns the number of triangles in the fan
func (f Face) TriangleCount() int {
	if len(f.refs) < 3 {
		return 0
	}
	return len(f.refs) - 2
}

func trianglesOf(faces iter.Seq[Face]) iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		for f := range faces {
			for tri := range f.Triangles() {
				if !yield(tri) {
					return
				}
			}
		}
	}
}
