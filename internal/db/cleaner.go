package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// softDeleteTables lists the tables whose rows are soft-deleted by the
// admin DELETE endpoints and purged after the retention window.
var softDeleteTables = []string{
	"contacts",
	"internships",
	"service_requests",
	"blogs",
	"team_members",
	"equipment",
}

// StartSoftDeleteCleaner purges soft-deleted rows older than retention
// on the given interval until ctx is cancelled.
func StartSoftDeleteCleaner(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
	retention time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-retention)
				for _, table := range softDeleteTables {
					res, err := db.ExecContext(ctx, `
                        DELETE FROM `+table+`
                         WHERE deleted = true
                           AND deleted_at < $1
                    `, cutoff)
					if err != nil {
						log.Error("failed to purge soft-deleted rows",
							zap.String("table", table), zap.Error(err))
						continue
					}
					if rows, _ := res.RowsAffected(); rows > 0 {
						log.Info("purged soft-deleted rows",
							zap.String("table", table), zap.Int64("removed", rows))
					}
				}
			}
		}
	}()
}
