package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateCarrierCache invalidates all caches touched by a carrier write,
// including the dashboard aggregates.
func InvalidateCarrierCache(ctx context.Context, cm *CacheManager, carrierID string) {
	SafeDelete(ctx, cm.Profile, fmt.Sprintf("carrier:%s", carrierID))
	SafeInvalidatePattern(ctx, cm.Stats, "*")
}

// InvalidateShipperCache invalidates all caches touched by a shipper write,
// including the dashboard aggregates.
func InvalidateShipperCache(ctx context.Context, cm *CacheManager, shipperID string) {
	SafeDelete(ctx, cm.Profile, fmt.Sprintf("shipper:%s", shipperID))
	SafeInvalidatePattern(ctx, cm.Stats, "*")
}
