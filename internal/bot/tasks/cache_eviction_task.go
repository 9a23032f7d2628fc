package tasks

import (
	"context"
	"fmt"
	"time"
)

// newCacheEvictionTask creates the scheduled task that purges expired rows
// from the lookup cache. Reads already filter by expiry, so this only keeps
// the table from growing without bound.
func newCacheEvictionTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "cache_eviction")

	return func(ctx context.Context) error {
		if !deps.Config.Cache.Enabled {
			log.DebugContext(ctx, "Lookup cache disabled, nothing to evict")
			return nil
		}

		start := time.Now()
		removed, err := deps.Store.DeleteExpired(ctx, time.Now().UTC())
		if err != nil {
			log.ErrorContext(ctx, "Cache eviction failed", "error", err)
			return fmt.Errorf("cache eviction failed: %w", err)
		}

		log.InfoContext(ctx, "Cache eviction completed",
			"removed", removed, "duration", time.Since(start))
		return nil
	}
}
