package jobs

import (
	"context"

	"mentorhub-backend/internal/logger"
)

// RebuildLeaderboard recomputes the full ranking from the activity tables
// and refreshes the cache. Read failures are logged and retried on the
// next scheduled tick; the leaderboard read path keeps serving the last
// cached board in the meantime.
func (jr *JobRunner) RebuildLeaderboard() {
	jr.runWithRecovery("RebuildLeaderboard", func() {
		ctx := context.Background()
		if err := jr.services.Leaderboard.RebuildLeaderboard(ctx); err != nil {
			logger.Error("Failed to rebuild leaderboard", "error", err)
		}
	})
}
