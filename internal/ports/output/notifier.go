package output

import (
	"context"

	"pbadmin/internal/domain/entities"
)

// Notifier publishes a recorded log entry somewhere players can see it.
type Notifier interface {
	Announce(ctx context.Context, locale string, entry entities.LogEntry) error
}
