// Package httputil provides HTTP client support for the collaborator
// tracing service: response caching and retry with exponential backoff.
//
// # Caching
//
// [Cache] stores JSON-marshalable values as files keyed by SHA-256 of the
// cache key. Use [Cache.Namespace] to scope keys per data source:
//
//	cache, _ := httputil.NewCache("", time.Hour)
//	traces := cache.Namespace("trace:")
//	traces.Set("ethereum:0xabc", result)
//
// # Retry
//
// [Retry] re-runs an operation with doubling delay, but only for errors
// wrapped with [RetryableError]; permanent failures return immediately.
package httputil
