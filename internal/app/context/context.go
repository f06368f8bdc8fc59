// Package appctx provides batch-scoped context for orchestration services.
//
// BatchContext extends Go's context.Context with in-memory memoization so a
// domain that appears several times in one batch is looked up once:
//
//	bc := appctx.New(ctx)
//	result, err := appctx.GetOrFetch(bc, "stripe.com", lookupAndScore)
//
// A new BatchContext is created per batch and must not be shared between
// concurrent batches.
package appctx

import (
	"context"
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// BatchContext is a batch-scoped context wrapper providing in-memory
// memoization. It embeds context.Context and adds GetOrFetch.
//
// It is NOT safe for concurrent use from multiple goroutines.
type BatchContext struct {
	context.Context
	cache map[string]cacheEntry
	hits  int
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
// Both successful results and errors are cached so a failing domain yields
// the same unavailable row every time it repeats.
type cacheEntry struct {
	value any
	err   error
}

// New creates a BatchContext wrapping the given context.Context.
func New(ctx context.Context) *BatchContext {
	return &BatchContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Both successful results and errors are cached.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
func GetOrFetch[T any](bc *BatchContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := bc.cache[key]; ok {
		bc.hits++
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(bc.Context)
	bc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Hits returns how many GetOrFetch calls were served from the cache.
func (bc *BatchContext) Hits() int {
	return bc.hits
}

// Len returns the number of distinct keys fetched so far.
func (bc *BatchContext) Len() int {
	return len(bc.cache)
}
