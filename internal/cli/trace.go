package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chainscope/chainscope/pkg/pipeline"
	"github.com/chainscope/chainscope/pkg/trace"
)

// traceOpts holds the command-line flags for the trace command.
type traceOpts struct {
	chain       string  // blockchain identifier (e.g. ethereum, bitcoin)
	output      string  // output file path (or base path for multiple formats)
	formats     []string
	width       float64 // frame width in logical pixels
	height      float64
	scale       float64 // device pixel ratio for raster output
	refresh     bool    // bypass the cache
	noCache     bool    // disable caching entirely
	saveTrace   string  // optionally save the raw trace JSON
	interactive bool    // browse transactions in a TUI after tracing
	backend     string  // override the configured backend URL
}

// newTraceCmd creates the trace command. It fetches a transaction trace for
// an address, classifies the risk score, and renders the graph in the
// requested formats.
func newTraceCmd() *cobra.Command {
	var formatsStr string
	opts := traceOpts{
		chain: "ethereum",
	}

	cmd := &cobra.Command{
		Use:   "trace [address]",
		Short: "Trace an address and render its transaction graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runTrace(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.chain, "chain", "c", opts.chain, "blockchain to trace on")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, dot, dot.svg, dot.png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "frame height")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "raster scale factor")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached trace data")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the response cache")
	cmd.Flags().StringVar(&opts.saveTrace, "save-trace", "", "also write the raw trace JSON to this path")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse transactions interactively after tracing")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "trace service URL (overrides config)")

	return cmd
}

func runTrace(ctx context.Context, address string, opts *traceOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.backend != "" {
		cfg.BackendURL = opts.backend
	}
	applyCanvasDefaults(&cfg.Canvas, opts)

	popts := pipeline.Options{
		Chain:   opts.chain,
		Address: address,
		Refresh: opts.refresh,
		Width:   opts.width,
		Height:  opts.height,
		Scale:   opts.scale,
		Formats: opts.formats,
		Logger:  logger,
	}

	runner, err := newRunner(cfg, opts.noCache, &popts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Tracing %s on %s...", trace.ElideAddress(address), opts.chain))
	spinner.Start()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Trace failed: %v", err))
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Traced %d transactions", len(result.Trace.Transactions)))

	printSuccess("Traced %s", trace.ElideAddress(result.Trace.Address))
	printKeyValue("Risk", tierBadge(result.Tier)+StyleDim.Render(fmt.Sprintf(" (score %.1f)", result.Trace.RiskScore)))
	if len(result.Trace.Flags) > 0 {
		printKeyValue("Flags", fmt.Sprintf("%v", result.Trace.Flags))
	}
	printStats(result.Stats.PeerCount, result.Stats.EdgeCount, len(result.Trace.Transactions))

	if opts.saveTrace != "" {
		if err := trace.WriteResultFile(*result.Trace, opts.saveTrace); err != nil {
			return fmt.Errorf("save trace: %w", err)
		}
		printFile(opts.saveTrace)
	}

	for _, format := range opts.formats {
		path := artifactPath(opts.output, address, format)
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}

	if opts.interactive {
		return browseTransactions(result.Trace)
	}
	return nil
}

// applyCanvasDefaults overlays config-file canvas settings onto unset flags.
func applyCanvasDefaults(canvas *CanvasConfig, opts *traceOpts) {
	if opts.width == 0 && canvas.Width > 0 {
		opts.width = canvas.Width
	}
	if opts.height == 0 && canvas.Height > 0 {
		opts.height = canvas.Height
	}
	if opts.scale == 0 && canvas.Scale > 0 {
		opts.scale = canvas.Scale
	}
}

// writeArtifact writes rendered bytes to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
