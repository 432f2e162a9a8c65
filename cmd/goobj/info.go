package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Display general information about an OBJ file",
		Long:  "Show attribute and face counts, dimensions, surface area and edge statistics.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(args[0])
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), args[0], analysis.AnalyzeModel(model), cfg.Report.Precision)
			return nil
		},
	}
}

func printInfo(w io.Writer, filename string, result *analysis.MeasurementResult, precision int) {
	fmt.Fprintln(w, "OBJ File Information")
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "File: %s\n\n", filename)

	fmt.Fprintln(w, "Model Statistics:")
	fmt.Fprintf(w, "  Positions: %d\n", result.PositionCount)
	fmt.Fprintf(w, "  Texture coordinates: %d\n", result.TexCoordCount)
	fmt.Fprintf(w, "  Normals: %d\n", result.NormalCount)
	fmt.Fprintf(w, "  Objects: %d\n", result.ObjectCount)
	fmt.Fprintf(w, "  Groups: %d\n", result.GroupCount)
	fmt.Fprintf(w, "  Faces: %d\n", result.FaceCount)
	fmt.Fprintf(w, "  Triangles: %d\n", result.TriangleCount)
	if result.Degenerate > 0 {
		fmt.Fprintf(w, "  Degenerate triangles: %d\n", result.Degenerate)
	}
	fmt.Fprintf(w, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(w, "  Surface Area: %s\n\n", analysis.FormatMeasurement(result.SurfaceArea, "square units", precision))

	if result.BoundingBox.Empty() {
		fmt.Fprintln(w, "Bounding Box: empty")
		return
	}

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min, precision))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max, precision))
	fmt.Fprintf(w, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center(), precision))

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  Width (X): %s\n", analysis.FormatMeasurement(result.Dimensions.X, "", precision))
	fmt.Fprintf(w, "  Depth (Y): %s\n", analysis.FormatMeasurement(result.Dimensions.Y, "", precision))
	fmt.Fprintf(w, "  Height (Z): %s\n", analysis.FormatMeasurement(result.Dimensions.Z, "", precision))
	fmt.Fprintf(w, "  Diagonal: %s\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), "", precision))
	fmt.Fprintf(w, "  Volume: %s\n\n", analysis.FormatMeasurement(result.Volume, "cubic units", precision))

	if result.EdgeCount == 0 {
		return
	}
	fmt.Fprintln(w, "Edge Lengths:")
	fmt.Fprintf(w, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, "", precision))
	fmt.Fprintf(w, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, "", precision))
	fmt.Fprintf(w, "  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, "", precision))
}
