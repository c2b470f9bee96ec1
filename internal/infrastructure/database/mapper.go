package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"pbadmin/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// timeToPgtypeTimestamptz maps the zero time to NULL.
func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func logEntryToDomain(r gameLogRow) entities.LogEntry {
	args := r.Args
	if args == nil {
		args = []string{}
	}
	return entities.LogEntry{
		ID:        uint(r.ID),
		GameID:    r.GameID,
		Player:    r.Player,
		Key:       r.MessageKey,
		Args:      args,
		CreatedAt: pgtypeTimestamptzToTime(r.CreatedAt),
	}
}
