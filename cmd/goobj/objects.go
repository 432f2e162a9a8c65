package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/spf13/cobra"
)

func newObjectsCmd() *cobra.Command {
	var faces bool

	cmd := &cobra.Command{
		Use:   "objects [file]",
		Short: "List the objects and groups of an OBJ file",
		Long:  "Print the object and group hierarchy with face and triangle counts per group.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(args[0])
			if err != nil {
				return err
			}
			printObjects(cmd.OutOrStdout(), model, faces)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&faces, "faces", "f", false, "Also print every face with its resolved indices")

	return cmd
}

func displayName(name string) string {
	if name == "" {
		return "(default)"
	}
	return name
}

func printObjects(w io.Writer, model *obj.Model, withFaces bool) {
	objects := model.Objects()
	fmt.Fprintf(w, "Objects: %d, Groups: %d, Faces: %d, Triangles: %d\n",
		len(objects), model.GroupCount(), model.FaceCount(), model.TriangleCount())

	for _, object := range objects {
		fmt.Fprintf(w, "o %s\n", displayName(object.Name()))
		for _, group := range object.Groups() {
			triangles := 0
			for _, face := range group.Faces() {
				triangles += face.TriangleCount()
			}
			fmt.Fprintf(w, "  g %s: %d faces, %d triangles\n", displayName(group.Name()), group.Len(), triangles)

			if !withFaces {
				continue
			}
			for _, face := range group.Faces() {
				fmt.Fprintf(w, "    %s\n", face)
			}
		}
	}
}
