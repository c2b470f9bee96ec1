package output

import (
	"context"

	"pbadmin/internal/domain/entities"
)

type LogRepository interface {
	Create(ctx context.Context, entry *entities.LogEntry) error
	ListByGame(ctx context.Context, gameID string, filter entities.LogFilter, limit int) ([]entities.LogEntry, error)
}
