package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chainscope/chainscope/pkg/layout"
	"github.com/chainscope/chainscope/pkg/pipeline"
	"github.com/chainscope/chainscope/pkg/risk"
	"github.com/chainscope/chainscope/pkg/trace"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string
	formats []string
	width   float64
	height  float64
	scale   float64
}

// newRenderCmd creates the render command. It renders a graph from a
// previously saved trace file, without contacting the trace service.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a transaction graph from a saved trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runRenderFile(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, dot, dot.svg, dot.png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", pipeline.DefaultWidth, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", pipeline.DefaultHeight, "frame height")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "raster scale factor")

	return cmd
}

func runRenderFile(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	result, err := trace.ReadResultFile(input)
	if err != nil {
		return err
	}
	if err := result.Err(); err != nil {
		return err
	}
	logger.Infof("Loaded trace: %d transactions", len(result.Transactions))

	if len(result.Transactions) == 0 {
		printWarning("trace has no transactions; rendering the focal node only")
	}

	tier := risk.Classify(result.RiskScore)
	printKeyValue("Address", trace.ElideAddress(result.Address))
	printKeyValue("Risk", tierBadge(tier))

	popts := pipeline.Options{
		Chain:   result.Chain,
		Address: result.Address,
		Width:   opts.width,
		Height:  opts.height,
		Scale:   opts.scale,
		Formats: opts.formats,
		Logger:  logger,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	computed := layout.Compute(result.Address, result.Transactions, popts.Width, popts.Height)
	artifacts, err := pipeline.Render(ctx, &computed, popts)
	if err != nil {
		return err
	}

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}
	for _, format := range opts.formats {
		path := artifactPath(base, result.Address, format)
		if err := writeArtifact(path, artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}

	logger.Infof("Generated %d artifact(s)", len(opts.formats))
	return nil
}
