package database

import (
	"context"
	"fmt"
	"math"

	"pbadmin/internal/domain/entities"
	"pbadmin/internal/ports/output"
)

var _ output.LogRepository = (*LogRepository)(nil)

const defaultListLimit = 50

type LogRepository struct {
	q *Queries
}

func NewLogRepository(q *Queries) *LogRepository {
	return &LogRepository{q: q}
}

func (r *LogRepository) Create(ctx context.Context, entry *entities.LogEntry) error {
	args := entry.Args
	if args == nil {
		args = []string{}
	}
	row, err := r.q.createGameLog(ctx, createGameLogParams{
		GameID:     entry.GameID,
		Player:     entry.Player,
		MessageKey: entry.Key,
		Args:       args,
		CreatedAt:  timeToPgtypeTimestamptz(entry.CreatedAt),
	})
	if err != nil {
		return fmt.Errorf("create game log entry: %w", err)
	}
	entry.ID = uint(row.ID)
	entry.CreatedAt = pgtypeTimestamptzToTime(row.CreatedAt)
	return nil
}

// ListByGame returns the newest entries of a game first, restricted to the
// filter's keys and players when those are set.
func (r *LogRepository) ListByGame(ctx context.Context, gameID string, filter entities.LogFilter, limit int) ([]entities.LogEntry, error) {
	rows, err := r.q.listGameLogByGame(ctx, listGameLogByGameParams{
		GameID:      gameID,
		MessageKeys: filter.Keys,
		Players:     filter.Players,
		Limit:       listLimit(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list game log by game: %w", err)
	}
	out := make([]entities.LogEntry, len(rows))
	for i := range rows {
		out[i] = logEntryToDomain(rows[i])
	}
	return out, nil
}

func listLimit(limit int) int32 {
	if limit <= 0 {
		return defaultListLimit
	}
	return int32(min(limit, math.MaxInt32))
}
