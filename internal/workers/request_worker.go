package workers

import (
	"context"
	"time"

	"yadtamar_backend/internal/logger"
	"yadtamar_backend/internal/models"

	"gorm.io/gorm"
)

// RequestWorker runs periodic maintenance over help requests.
type RequestWorker struct {
	db       *gorm.DB
	interval time.Duration
	now      func() time.Time
}

func NewRequestWorker(db *gorm.DB, interval time.Duration) *RequestWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &RequestWorker{db: db, interval: interval, now: time.Now}
}

// Run blocks until ctx is cancelled.
func (w *RequestWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.WorkerLog("requests", "stop", nil)
			return nil
		case <-ticker.C:
			if _, err := w.EscalateOverdue(ctx); err != nil {
				logger.WorkerLog("requests", "escalate_overdue", err)
			}
		}
	}
}

// EscalateOverdue flags open requests whose expected completion has passed
// as urgent so they sort to the top of coordinator lists.
func (w *RequestWorker) EscalateOverdue(ctx context.Context) (int64, error) {
	result := w.db.WithContext(ctx).Exec(`
		UPDATE requests
		SET is_urgent = TRUE
		WHERE is_urgent = FALSE
		AND expected_completion IS NOT NULL
		AND expected_completion < ?
		AND status_id IN (SELECT id FROM request_status WHERE status_name IN (?, ?))
	`, w.now(), string(models.RequestStatusPending), string(models.RequestStatusInProgress))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		logger.WorkerLog("requests", "escalate_overdue", nil, "escalated", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
