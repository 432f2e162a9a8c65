package main

import (
	"fmt"

	"github.com/philipparndt/goobj/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check that OBJ files parse",
		Long:  "Parse each file and report the first malformed directive with its line number.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, filename := range args {
				model, err := loadModel(filename)
				if err != nil {
					failed++
					logger.Warn("validation failed", zap.String("file", filename), zap.Error(err))
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %v\n", err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "OK   %s (%d faces, %d triangles)\n",
					filename, model.FaceCount(), model.TriangleCount())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
			}
			return nil
		},
	}
}
