package geometry

// Triangle is a planar facet. Normal may be zero when the source format
// does not supply facet normals.
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// CalculateNormal computes the unit normal implied by the winding order
// V1 -> V2 -> V3 (counter-clockwise is front facing)
func (t Triangle) CalculateNormal() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Length() / 2.0
}

// EdgeLengths returns |V1V2|, |V2V3| and |V3V1|
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the sum of the edge lengths
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid
func (t Triangle) Center() Vector3 {
	return t.V1.Add(t.V2).Add(t.V3).Scale(1.0 / 3.0)
}

// Degenerate reports whether the triangle has (near) zero area
func (t Triangle) Degenerate() bool {
	return t.Area() < 1e-12
}
