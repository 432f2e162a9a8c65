package geometry

import (
	"math"
	"testing"
)

// right triangle with sides 3, 4, 5 in the XY plane
func rightTriangle() Triangle {
	return NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)
}

func TestTriangleArea(t *testing.T) {
	area := rightTriangle().Area()
	expected := 6.0 // (3 * 4) / 2

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	lengths := rightTriangle().EdgeLengths()
	expected := [3]float64{3, 5, 4}

	for i := range lengths {
		if math.Abs(lengths[i]-expected[i]) > 1e-10 {
			t.Errorf("Edge %d length failed: expected %v, got %v", i, expected[i], lengths[i])
		}
	}
}

func TestTrianglePerimeter(t *testing.T) {
	perimeter := rightTriangle().Perimeter()

	if math.Abs(perimeter-12.0) > 1e-10 {
		t.Errorf("Perimeter failed: expected 12, got %v", perimeter)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center.Distance(expected) > 1e-10 {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	normal := rightTriangle().CalculateNormal()
	if normal.Distance(NewVector3(0, 0, 1)) > 1e-10 {
		t.Errorf("expected +Z normal for counter-clockwise winding, got %v", normal)
	}

	tri := rightTriangle()
	tri.V2, tri.V3 = tri.V3, tri.V2
	if normal := tri.CalculateNormal(); normal.Distance(NewVector3(0, 0, -1)) > 1e-10 {
		t.Errorf("expected -Z normal for clockwise winding, got %v", normal)
	}
}

func TestTriangleDegenerate(t *testing.T) {
	if rightTriangle().Degenerate() {
		t.Error("right triangle reported as degenerate")
	}

	line := NewTriangle(Vector3{}, NewVector3(0, 0, 0), NewVector3(1, 1, 1), NewVector3(2, 2, 2))
	if !line.Degenerate() {
		t.Error("collinear triangle not reported as degenerate")
	}
}
