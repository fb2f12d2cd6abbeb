// Package tracer wraps the collaborator tracing service API.
//
// The service computes risk scores and samples an address's transaction
// neighborhood; ChainScope only consumes its output. Score computation,
// persistence, and backend logic live entirely on the service side.
package tracer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	cserrors "github.com/chainscope/chainscope/pkg/errors"
	"github.com/chainscope/chainscope/pkg/httputil"
	"github.com/chainscope/chainscope/pkg/integrations"
	"github.com/chainscope/chainscope/pkg/observability"
	"github.com/chainscope/chainscope/pkg/trace"
)

// DefaultCacheTTL is how long trace responses are cached. Neighborhood
// snapshots go stale quickly relative to registry metadata, so the TTL is
// deliberately short.
const DefaultCacheTTL = 15 * time.Minute

// Client provides access to the collaborator tracing service.
// It handles HTTP requests with caching and automatic retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a tracer client for the service at baseURL.
//
// Parameters:
//   - baseURL: service root, e.g. "https://trace.example.com"
//   - cache: response cache (nil disables caching)
//
// The returned Client is safe for concurrent use.
func NewClient(baseURL string, cache *httputil.Cache) (*Client, error) {
	if err := cserrors.ValidateURL(baseURL); err != nil {
		return nil, err
	}
	if cache != nil {
		cache = cache.Namespace("tracer:")
	}
	return &Client{
		Client:  integrations.NewClient(cache, nil),
		baseURL: baseURL,
	}, nil
}

// FetchTrace retrieves the transaction neighborhood and risk score for an
// address on the given chain.
//
// If refresh is true the cache is bypassed. A trace whose payload carries
// an error field is returned as a TRACE_FAILED error, not a Result.
func (c *Client) FetchTrace(ctx context.Context, chain, address string, refresh bool) (*trace.Result, error) {
	if err := cserrors.ValidateChain(chain); err != nil {
		return nil, err
	}
	if err := cserrors.ValidateAddress(address); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnFetchStart(ctx, chain, address)

	var res trace.Result
	key := chain + ":" + address
	err := c.Cached(ctx, key, refresh, &res, func() error {
		u := fmt.Sprintf("%s/v1/trace/%s/%s", c.baseURL, url.PathEscape(chain), url.PathEscape(address))
		return c.Get(ctx, u, &res)
	})

	observability.Pipeline().OnFetchComplete(ctx, chain, address, len(res.Transactions), time.Since(start), err)

	if err != nil {
		return nil, translateErr(err, chain, address)
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return &res, nil
}

// FetchReport retrieves the generated risk report for an address.
// Reports are never cached; the service stamps each one at generation time.
func (c *Client) FetchReport(ctx context.Context, chain, address string) (*trace.Report, error) {
	if err := cserrors.ValidateChain(chain); err != nil {
		return nil, err
	}
	if err := cserrors.ValidateAddress(address); err != nil {
		return nil, err
	}

	var rep trace.Report
	u := fmt.Sprintf("%s/v1/report/%s/%s", c.baseURL, url.PathEscape(chain), url.PathEscape(address))
	err := httputil.RetryWithBackoff(ctx, func() error {
		return c.Get(ctx, u, &rep)
	})
	if err != nil {
		return nil, translateErr(err, chain, address)
	}
	return &rep, nil
}

// translateErr maps transport sentinels onto structured error codes.
func translateErr(err error, chain, address string) error {
	var rl *cserrors.RateLimitedError
	switch {
	case errors.Is(err, integrations.ErrNotFound):
		return cserrors.Wrap(cserrors.ErrCodeTraceNotFound, err, "no trace for %s on %s", address, chain)
	case errors.As(err, &rl):
		return cserrors.Wrap(cserrors.ErrCodeRateLimited, err, "tracing service rate limited")
	case errors.Is(err, integrations.ErrNetwork):
		return cserrors.Wrap(cserrors.ErrCodeNetwork, err, "tracing service unreachable")
	default:
		return err
	}
}
