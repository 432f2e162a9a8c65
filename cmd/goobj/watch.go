package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/philipparndt/goobj/internal/logger"
	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-analyze an OBJ file whenever it changes",
		Long: `Print the info report for a file and print it again every time the file is
saved. Parse errors are reported without stopping the watch. Press Ctrl+C to exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if _, err := os.Stat(filename); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			log := logger.Named("watch")
			reload(out, log, filename)

			fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce, log)
			if err != nil {
				return err
			}
			defer fw.Close()

			if err := fw.Watch([]string{filename}, func(string) {
				reload(out, log, filename)
			}); err != nil {
				return err
			}
			fw.Start()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			log.Info("watching for changes", zap.String("file", filepath.Base(filename)))
			<-ctx.Done()
			return nil
		},
	}
}

// reload parses filename and prints its report. Failures are reported
// and do not end the watch.
func reload(w io.Writer, log *zap.Logger, filename string) bool {
	model, err := loadModel(filename)
	if err != nil {
		log.Error("reload failed", zap.Error(err))
		printError(w, err)
		fmt.Fprintln(w)
		return false
	}

	log.Debug("reloaded",
		zap.String("file", filename),
		zap.Int("faces", model.FaceCount()),
		zap.Int("triangles", model.TriangleCount()))
	printInfo(w, filename, analysis.AnalyzeModel(model), cfg.Report.Precision)
	fmt.Fprintln(w)
	return true
}
