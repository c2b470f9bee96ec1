package input

import (
	"context"

	"pbadmin/internal/domain/entities"
)

type LogUseCase interface {
	Record(ctx context.Context, entry *entities.LogEntry) error
	History(ctx context.Context, locale, gameID string, filter entities.LogFilter, limit int) ([]entities.RenderedLogEntry, error)
}
