package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"pbadmin/internal/domain"
	"pbadmin/internal/domain/entities"
	"pbadmin/internal/ports/input"
	"pbadmin/internal/ports/output"
)

var _ input.LogUseCase = (*LogService)(nil)

// defaultLocale selects the catalog's default table.
const defaultLocale = ""

type LogService struct {
	logRepo  output.LogRepository
	catalog  output.Catalog
	notifier output.Notifier
	locale   string
	now      func() time.Time
}

// NewLogService wires the game log. notifier may be nil; locale is the one
// entries are announced in. Keys are checked against the default table.
func NewLogService(
	logRepo output.LogRepository,
	catalog output.Catalog,
	notifier output.Notifier,
	locale string,
) *LogService {
	return &LogService{
		logRepo:  logRepo,
		catalog:  catalog,
		notifier: notifier,
		locale:   locale,
		now:      time.Now,
	}
}

// Record validates entry against the catalog, stores it and announces it.
// Announce failures are logged; the entry stays recorded.
func (s *LogService) Record(ctx context.Context, entry *entities.LogEntry) error {
	entry.GameID = strings.TrimSpace(entry.GameID)
	if entry.GameID == "" {
		return domain.ErrGameRequired
	}
	if err := s.checkLogKey(entry.Key); err != nil {
		return err
	}
	slots, err := s.catalog.Slots(defaultLocale, entry.Key)
	if err != nil {
		return err
	}
	if len(entry.Args) != slots {
		return &domain.FormatMismatchError{Key: entry.Key, Want: slots, Got: len(entry.Args)}
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("record log entry: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.Announce(ctx, s.locale, *entry); err != nil {
			log.Printf("⚠️ announce log entry %d (game=%s, key=%s): %v", entry.ID, entry.GameID, entry.Key, err)
		}
	}
	return nil
}

// History returns a game's newest entries first, rendered for locale.
// filter.Keys must name log messages.
func (s *LogService) History(ctx context.Context, locale, gameID string, filter entities.LogFilter, limit int) ([]entities.RenderedLogEntry, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, domain.ErrGameRequired
	}
	for _, key := range filter.Keys {
		if err := s.checkLogKey(key); err != nil {
			return nil, err
		}
	}
	entries, err := s.logRepo.ListByGame(ctx, gameID, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	out := make([]entities.RenderedLogEntry, len(entries))
	for i, e := range entries {
		out[i] = entities.RenderedLogEntry{
			LogEntry: e,
			Text:     RenderLogEntry(s.catalog, locale, e),
		}
	}
	return out, nil
}

// checkLogKey reports whether key is a log message of the default table.
func (s *LogService) checkLogKey(key string) error {
	section, err := s.catalog.Section(defaultLocale, key)
	if err != nil {
		return err
	}
	if section != domain.SectionLog {
		return fmt.Errorf("%q: %w", key, domain.ErrNotLogMessage)
	}
	return nil
}

// RenderLogEntry renders entry's message in locale.
func RenderLogEntry(tr output.T, locale string, entry entities.LogEntry) string {
	args := make([]any, len(entry.Args))
	for i, a := range entry.Args {
		args[i] = a
	}
	return tr.T(locale, entry.Key, args...)
}
