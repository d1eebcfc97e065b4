package service

import (
	"context"

	"github.com/happify-app/backend/internal/logger"
)

// remoteFirst runs the remote fetch and, when it fails for any reason other
// than context cancellation, falls back to the local computation. This is the
// single fallback combinator every aggregation stage goes through, replacing
// ad hoc per-stage error handling.
func remoteFirst[T any](ctx context.Context, log logger.Logger, stage string, remote func(context.Context) (T, error), local func() T) (T, error) {
	result, err := remote(ctx)
	if err == nil {
		return result, nil
	}
	if ctx.Err() != nil {
		var zero T
		return zero, ctx.Err()
	}

	log.WithContext(ctx).Warn("remote analytics stage unavailable, computing locally",
		logger.String("stage", stage),
		logger.Err(err),
	)
	return local(), nil
}
