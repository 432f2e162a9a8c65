package main

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/philipparndt/goobj/internal/config"
	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/spf13/cobra"
)

type triangleInfo struct {
	Index     int
	Object    string
	Group     string
	Area      float64
	Perimeter float64
	Vertices  string
}

type trianglesOptions struct {
	largest  bool
	smallest bool
	object   string
}

func newTrianglesCmd() *cobra.Command {
	opts := &trianglesOptions{}

	cmd := &cobra.Command{
		Use:   "triangles [file]",
		Short: "Analyze triangles in an OBJ file",
		Long:  "Display the triangulated faces with area, perimeter and vertex positions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(args[0])
			if err != nil {
				return err
			}
			return runTriangles(cmd.OutOrStdout(), model, opts)
		},
	}

	cmd.Flags().IntP("count", "n", config.Default().Report.Count, "Number of triangles to display (overrides config)")
	cmd.Flags().BoolVarP(&opts.largest, "largest", "l", false, "Show largest triangles by area")
	cmd.Flags().BoolVarP(&opts.smallest, "smallest", "s", false, "Show smallest triangles by area")
	cmd.Flags().StringVarP(&opts.object, "object", "o", "", "Only include triangles of this object")
	cmd.MarkFlagsMutuallyExclusive("largest", "smallest")

	return cmd
}

func collectTriangles(model *obj.Model, objectName string, precision int) ([]triangleInfo, error) {
	objects := model.Objects()
	if objectName != "" {
		object, ok := model.Object(objectName)
		if !ok {
			return nil, fmt.Errorf("object %q not found", objectName)
		}
		objects = []obj.Object{object}
	}

	triangles := make([]triangleInfo, 0, model.TriangleCount())
	index := 0
	for _, object := range objects {
		for _, group := range object.Groups() {
			for tri := range group.Triangles() {
				shape := tri.Geometry()
				triangles = append(triangles, triangleInfo{
					Index:     index,
					Object:    object.Name(),
					Group:     group.Name(),
					Area:      shape.Area(),
					Perimeter: shape.Perimeter(),
					Vertices: fmt.Sprintf("%s, %s, %s",
						analysis.FormatVector(shape.V1, precision),
						analysis.FormatVector(shape.V2, precision),
						analysis.FormatVector(shape.V3, precision)),
				})
				index++
			}
		}
	}
	return triangles, nil
}

func runTriangles(w io.Writer, model *obj.Model, opts *trianglesOptions) error {
	precision := cfg.Report.Precision
	triangles, err := collectTriangles(model, opts.object, precision)
	if err != nil {
		return err
	}

	totalArea := 0.0
	minArea := math.MaxFloat64
	maxArea := 0.0
	for _, tri := range triangles {
		totalArea += tri.Area
		minArea = math.Min(minArea, tri.Area)
		maxArea = math.Max(maxArea, tri.Area)
	}

	if opts.largest {
		sort.SliceStable(triangles, func(i, j int) bool {
			return triangles[i].Area > triangles[j].Area
		})
	} else if opts.smallest {
		sort.SliceStable(triangles, func(i, j int) bool {
			return triangles[i].Area < triangles[j].Area
		})
	}

	count := min(cfg.Report.Count, len(triangles))

	var title string
	if opts.largest {
		title = fmt.Sprintf("Top %d Largest Triangles", count)
	} else if opts.smallest {
		title = fmt.Sprintf("Top %d Smallest Triangles", count)
	} else {
		title = fmt.Sprintf("First %d Triangles", count)
	}

	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "Total triangles: %d\n", len(triangles))
	if len(triangles) == 0 {
		return nil
	}
	fmt.Fprintf(w, "Total surface area: %.*f square units\n", precision, totalArea)
	fmt.Fprintf(w, "Min triangle area: %.*f square units\n", precision, minArea)
	fmt.Fprintf(w, "Max triangle area: %.*f square units\n", precision, maxArea)
	fmt.Fprintf(w, "Avg triangle area: %.*f square units\n\n", precision, totalArea/float64(len(triangles)))

	for _, tri := range triangles[:count] {
		fmt.Fprintf(w, "Triangle #%d", tri.Index)
		if tri.Object != "" || tri.Group != "" {
			fmt.Fprintf(w, " [%s/%s]", tri.Object, tri.Group)
		}
		fmt.Fprintln(w, ":")
		fmt.Fprintf(w, "  Area: %.*f square units\n", precision, tri.Area)
		fmt.Fprintf(w, "  Perimeter: %.*f units\n", precision, tri.Perimeter)
		fmt.Fprintf(w, "  Vertices: %s\n\n", tri.Vertices)
	}
	return nil
}
