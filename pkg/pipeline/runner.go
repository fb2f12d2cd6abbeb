package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	cserrors "github.com/chainscope/chainscope/pkg/errors"
	"github.com/chainscope/chainscope/pkg/layout"
	"github.com/chainscope/chainscope/pkg/observability"
	"github.com/chainscope/chainscope/pkg/render"
	"github.com/chainscope/chainscope/pkg/render/dot"
	"github.com/chainscope/chainscope/pkg/render/raster"
	"github.com/chainscope/chainscope/pkg/render/svg"
	"github.com/chainscope/chainscope/pkg/risk"
	"github.com/chainscope/chainscope/pkg/trace"
)

// Fetcher retrieves trace results for an address. The tracer client
// implements this; tests substitute fakes.
type Fetcher interface {
	FetchTrace(ctx context.Context, chain, address string, refresh bool) (*trace.Result, error)
}

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the fetcher and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Fetcher Fetcher
	Logger  *log.Logger
}

// NewRunner creates a runner with the given fetcher.
// If logger is nil, the package default is used.
func NewRunner(f Fetcher, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Fetcher: f, Logger: logger}
}

// Result holds the output of a pipeline execution.
type Result struct {
	// Trace is the raw trace result from the collaborator service.
	Trace *trace.Result

	// Tier is the risk tier classified from the trace's score.
	Tier risk.Tier

	// Layout contains the computed graph geometry.
	Layout *layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PeerCount  int
	EdgeCount  int
	FetchTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Execute runs the complete fetch → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Fetch (the tracer client emits its own fetch hooks)
	fetchStart := time.Now()
	tr, err := r.Fetcher.FetchTrace(ctx, opts.Chain, opts.Address, opts.Refresh)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	result.Trace = tr
	result.Tier = risk.Classify(tr.RiskScore)
	result.Stats.FetchTime = time.Since(fetchStart)

	r.Logger.Info("fetched trace",
		"transactions", len(tr.Transactions),
		"risk", result.Tier.Label(),
		"duration", result.Stats.FetchTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Address, len(tr.Transactions))
	computed := layout.Compute(tr.Address, tr.Transactions, opts.Width, opts.Height)
	l := &computed
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.PeerCount = len(l.Nodes) - 1
	result.Stats.EdgeCount = len(l.Edges)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Address, len(l.Nodes), result.Stats.LayoutTime)

	r.Logger.Info("computed layout",
		"peers", result.Stats.PeerCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(ctx, l, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, l *layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatPNG:
			data, err = renderPNG(l, opts)
		case FormatSVG:
			data = renderSVG(l, opts)
		case FormatDOT:
			data = []byte(dot.ToDOT(l))
		case FormatDOTSVG:
			data, err = dot.RenderSVG(ctx, dot.ToDOT(l))
		case FormatDOTPNG:
			data, err = dot.RenderPNG(ctx, dot.ToDOT(l))
		case FormatJSON:
			data, err = json.MarshalIndent(l, "", "  ")
		default:
			return nil, cserrors.New(cserrors.ErrCodeUnsupported, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderPNG(l *layout.Layout, opts Options) ([]byte, error) {
	surface := raster.New(opts.Width, opts.Height, opts.Scale)
	render.Render(surface, l)
	return surface.PNG()
}

func renderSVG(l *layout.Layout, opts Options) []byte {
	surface := svg.New(opts.Width, opts.Height)
	render.Render(surface, l)
	return surface.Bytes()
}

// applyLogger propagates the runner's logger to options if unset.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
