package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries holds the SQL of the game_log table.
type Queries struct {
	db DBTX
}

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

type gameLogRow struct {
	ID         int64
	GameID     string
	Player     string
	MessageKey string
	Args       []string
	CreatedAt  pgtype.Timestamptz
}

type createGameLogParams struct {
	GameID     string
	Player     string
	MessageKey string
	Args       []string
	CreatedAt  pgtype.Timestamptz
}

const createGameLog = `
INSERT INTO game_log (game_id, player, message_key, args, created_at)
VALUES ($1, $2, $3, $4, COALESCE($5, now()))
RETURNING id, game_id, player, message_key, args, created_at`

func (q *Queries) createGameLog(ctx context.Context, arg createGameLogParams) (gameLogRow, error) {
	row := q.db.QueryRow(ctx, createGameLog,
		arg.GameID,
		arg.Player,
		arg.MessageKey,
		arg.Args,
		arg.CreatedAt,
	)
	var i gameLogRow
	err := row.Scan(&i.ID, &i.GameID, &i.Player, &i.MessageKey, &i.Args, &i.CreatedAt)
	return i, err
}

const listGameLogByGame = `
SELECT id, game_id, player, message_key, args, created_at
FROM game_log
WHERE game_id = $1
  AND (coalesce(cardinality($2::text[]), 0) = 0 OR message_key = ANY($2::text[]))
  AND (coalesce(cardinality($3::text[]), 0) = 0 OR player = ANY($3::text[]))
ORDER BY created_at DESC, id DESC
LIMIT $4`

type listGameLogByGameParams struct {
	GameID      string
	MessageKeys []string
	Players     []string
	Limit       int32
}

func (q *Queries) listGameLogByGame(ctx context.Context, arg listGameLogByGameParams) ([]gameLogRow, error) {
	rows, err := q.db.Query(ctx, listGameLogByGame,
		arg.GameID,
		arg.MessageKeys,
		arg.Players,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []gameLogRow
	for rows.Next() {
		var i gameLogRow
		if err := rows.Scan(&i.ID, &i.GameID, &i.Player, &i.MessageKey, &i.Args, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
