package entities

import "time"

// LogEntry is one event of a game's log, stored as a catalog key plus the
// values for its placeholders.
type LogEntry struct {
	ID        uint
	GameID    string
	Player    string // empty for game-wide events
	Key       string
	Args      []string
	CreatedAt time.Time
}

// LogFilter narrows a game's log. Empty fields match everything.
type LogFilter struct {
	Keys    []string
	Players []string
}

// RenderedLogEntry is a LogEntry resolved against a locale's table.
type RenderedLogEntry struct {
	LogEntry
	Text string
}
