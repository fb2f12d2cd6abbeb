package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/chainscope/chainscope/pkg/httputil"
	"github.com/chainscope/chainscope/pkg/integrations/tracer"
	"github.com/chainscope/chainscope/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "chainscope"

// =============================================================================
// Collaborator Wiring
// =============================================================================

// newTracerClient creates a tracer client wired to the configured backend.
// When noCache is true, responses bypass the local cache entirely.
func newTracerClient(cfg Config, noCache bool) (*tracer.Client, error) {
	var cache *httputil.Cache
	if !noCache {
		if dir, err := cacheDir(); err == nil {
			// A broken cache dir degrades to uncached operation.
			cache, _ = httputil.NewCache(dir, tracer.DefaultCacheTTL)
		}
	}
	return tracer.NewClient(cfg.BackendURL, cache)
}

// newRunner creates a pipeline runner for CLI use.
func newRunner(cfg Config, noCache bool, opts *pipeline.Options) (*pipeline.Runner, error) {
	client, err := newTracerClient(cfg, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(client, opts.Logger), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/chainscope/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatPNG}
	}
	return strings.Split(s, ",")
}

// artifactPath derives an output file path for a format.
// If out is empty, the address (elided to a safe length) names the file.
func artifactPath(out, address, format string) string {
	if out == "" {
		name := address
		if len(name) > 24 {
			name = name[:24]
		}
		return name + "." + format
	}
	ext := "." + format
	if strings.HasSuffix(out, ext) {
		return out
	}
	// Strip any existing format extension before appending ours, so
	// --format png,svg --output graph.png writes graph.png and graph.svg.
	// The longest match wins so graph.dot.svg loses ".dot.svg", not ".svg".
	longest := ""
	for f := range pipeline.ValidFormats {
		if suffix := "." + f; strings.HasSuffix(out, suffix) && len(suffix) > len(longest) {
			longest = suffix
		}
	}
	return strings.TrimSuffix(out, longest) + ext
}
