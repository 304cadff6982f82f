package impl

import (
	"context"

	"storefront/internal/domain/constants"
	"storefront/internal/errors"

	"golang.org/x/sync/singleflight"
)

// sharedRead coalesces concurrent reads under key. The shared call is detached
// from any single caller's cancellation and bounded by SharedReadTimeout;
// each caller stops waiting when its own ctx is done.
func sharedRead(
	ctx context.Context,
	group *singleflight.Group,
	key string,
	read func(ctx context.Context) ([]byte, error),
) ([]byte, error) {
	results := group.DoChan(key, func() (any, error) {
		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.SharedReadTimeout)
		defer cancel()

		return read(readCtx)
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		body, _ := res.Val.([]byte)

		return body, nil
	}
}
