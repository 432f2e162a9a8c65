package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/obj"
)

// EdgeInfo describes one unique edge of the triangulated mesh
type EdgeInfo struct {
	Start      geometry.Vector3
	End        geometry.Vector3
	StartIndex int // zero-based position index
	EndIndex   int
	Length     float64
	TriangleID int // first triangle that contains the edge
}

// MeasurementResult contains various measurements of an OBJ model
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	PositionCount int
	TexCoordCount int
	NormalCount   int
	ObjectCount   int
	GroupCount    int
	FaceCount     int
	TriangleCount int
	Degenerate    int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

type edgeKey struct {
	a, b int
}

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// AnalyzeModel measures a parsed model. Edges shared by several triangles,
// including the internal diagonals of triangulated faces, are counted once.
func AnalyzeModel(model *obj.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   BoundingBox(model),
		PositionCount: model.PositionCount(),
		TexCoordCount: model.TexCoordCount(),
		NormalCount:   model.NormalCount(),
		ObjectCount:   len(model.Objects()),
		GroupCount:    model.GroupCount(),
		FaceCount:     model.FaceCount(),
		TriangleCount: model.TriangleCount(),
		AllEdges:      make([]EdgeInfo, 0, model.TriangleCount()*3/2),
	}

	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	seen := make(map[edgeKey]struct{}, model.TriangleCount()*3/2)
	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	triangleID := 0
	for tri := range model.Triangles() {
		shape := tri.Geometry()
		area := shape.Area()
		result.SurfaceArea += area
		if shape.Degenerate() {
			result.Degenerate++
		}

		for i := range 3 {
			start, end := tri[i], tri[(i+1)%3]
			key := newEdgeKey(start.PositionIndex(), end.PositionIndex())
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			p1 := start.Position().Vector3()
			p2 := end.Position().Vector3()
			length := p1.Distance(p2)

			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:      p1,
				End:        p2,
				StartIndex: start.PositionIndex(),
				EndIndex:   end.PositionIndex(),
				Length:     length,
				TriangleID: triangleID,
			})

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
		triangleID++
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// BoundingBox computes the bounds of every declared position, including
// positions no face references
func BoundingBox(model *obj.Model) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, p := range model.Positions() {
		bbox.Extend(p.Vector3())
	}
	return bbox
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the model
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool {
		return a.Length > b.Length
	})
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool {
		return a.Length < b.Length
	})
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	if count < 0 {
		count = 0
	}
	return edges[:count]
}

// DistanceBetweenPoints calculates the distance between two arbitrary points
func DistanceBetweenPoints(p1, p2 geometry.Vector3) float64 {
	return p1.Distance(p2)
}

// FindNearestVertex finds the declared position nearest to point. The
// returned index is -1 when the model has no positions.
func FindNearestVertex(model *obj.Model, point geometry.Vector3) (geometry.Vector3, int, float64) {
	var nearest geometry.Vector3
	nearestIndex := -1
	minDistance := math.MaxFloat64

	for i, p := range model.Positions() {
		v := p.Vector3()
		if distance := point.Distance(v); distance < minDistance {
			minDistance = distance
			nearest = v
			nearestIndex = i
		}
	}

	return nearest, nearestIndex, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string, precision int) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.*f %s", precision, value, unit)
}

// FormatVector formats a 3D vector with the given number of decimals
func FormatVector(v geometry.Vector3, precision int) string {
	return fmt.Sprintf("(%.*f, %.*f, %.*f)", precision, v.X, precision, v.Y, precision, v.Z)
}
