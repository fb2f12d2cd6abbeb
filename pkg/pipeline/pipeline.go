// Package pipeline provides the core visualization pipeline for ChainScope.
//
// This package implements the complete fetch → classify → layout → render
// pipeline used by the CLI and the HTTP server. Centralizing it here keeps
// behavior consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Fetch: retrieve a trace result from the collaborator service
//     (or accept one supplied directly, e.g. from a local file)
//  2. Layout: compute node/edge geometry for the transaction graph
//  3. Render: produce artifacts in the requested formats (png, svg, dot, json)
//
// # Usage
//
// One-shot execution:
//
//	runner := pipeline.NewRunner(client, logger)
//	opts := pipeline.Options{Chain: "ethereum", Address: "0xabc", Formats: []string{"png"}}
//	result, err := runner.Execute(ctx, opts)
//
// Retained rendering (re-draw on every input change, last write wins):
//
//	view := pipeline.NewView()
//	view.Attach(surface)
//	view.SetTrace(addr, txs)   // full recompute + redraw
//	view.Resize(w, h)          // full recompute + redraw
package pipeline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/chainscope/chainscope/pkg/errors"
)

// Default frame dimensions in logical pixels.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0

	// DefaultScale is the device pixel ratio for raster output.
	DefaultScale = 2.0
)

// Output format identifiers. The dot.svg and dot.png formats run the DOT
// view through Graphviz instead of the ring renderer.
const (
	FormatPNG    = "png"
	FormatSVG    = "svg"
	FormatDOT    = "dot"
	FormatDOTSVG = "dot.svg"
	FormatDOTPNG = "dot.png"
	FormatJSON   = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:    true,
	FormatSVG:    true,
	FormatDOT:    true,
	FormatDOTSVG: true,
	FormatDOTPNG: true,
	FormatJSON:   true,
}

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for HTTP requests.
type Options struct {
	// Fetch options
	Chain   string `json:"chain"`
	Address string `json:"address"`
	Refresh bool   `json:"refresh,omitempty"`

	// Layout options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateChain(o.Chain); err != nil {
		return err
	}
	if err := errors.ValidateAddress(o.Address); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: png, svg, dot, dot.svg, dot.png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}
