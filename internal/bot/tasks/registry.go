// Package tasks contains the scheduled background tasks and their registry.
package tasks

// RegisterAllTasks returns the map of task name to task function consumed by
// the scheduler.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	return map[string]ScheduledTaskFunc{
		"daily_digest": NewDailyDigestTask(deps),
	}
}
