package tasks

import (
	"context"
	"fmt"
)

// NewDailyDigestTask returns a task that reports the day's activity counters
// to the operator and resets them. With no operator configured the send
// degrades to a no-op inside the notifier.
func NewDailyDigestTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "daily_digest")

	return func(ctx context.Context) error {
		quotes, bookings := deps.Stats.Snapshot()
		log.InfoContext(ctx, "Sending daily digest", "quotes", quotes, "bookings", bookings)

		text := fmt.Sprintf(
			"📊 Підсумок дня\n\n• Розрахунків вартості: %d\n• Нових бронювань: %d",
			quotes, bookings,
		)
		deps.Notifier.NotifyOperator(ctx, text)
		return nil
	}
}
