// Package main provides the CLI entry point for mathplot-go.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/canvas"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/script"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	outputPath string
	format     string
	width      int
	height     int
	tablePath  string
	verbose    bool

	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mathplot [figure.yaml]",
		Short: "Render annotated function graphs from a figure script",
		Long: `mathplot-go renders function graphs with labels, tangents and shaded
integrals from a YAML figure script, and can export the plotted values
as an xlsx workbook.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Encoding = "console"
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output image path (default: the script's output)")
	rootCmd.Flags().StringVar(&format, "format", "", "Image format: "+strings.Join(canvas.Formats, ", ")+" (default: from the output extension)")
	rootCmd.Flags().IntVar(&width, "width", 0, "Image width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 0, "Image height in pixels")
	rootCmd.Flags().StringVar(&tablePath, "table", "", "Also export plotted values to this xlsx file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	fig, err := script.Load(inputPath)
	if err != nil {
		return err
	}

	res, err := script.Render(fig, script.Options{
		Output:    outputPath,
		Format:    format,
		Width:     width,
		Height:    height,
		TablePath: tablePath,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Image)
	if res.Table != "" {
		fmt.Fprintln(cmd.OutOrStdout(), res.Table)
	}
	return nil
}
