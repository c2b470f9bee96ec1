package application

import (
	"context"
	"errors"
	"slices"
	"testing"
	"testing/fstest"
	"time"

	"pbadmin/internal/domain"
	"pbadmin/internal/domain/entities"
	"pbadmin/internal/infrastructure/i18n"
	"pbadmin/internal/ports/output"
)

type fakeLogRepo struct {
	entries []entities.LogEntry
	err     error
}

func (r *fakeLogRepo) Create(_ context.Context, e *entities.LogEntry) error {
	if r.err != nil {
		return r.err
	}
	e.ID = uint(len(r.entries) + 1)
	r.entries = append(r.entries, *e)
	return nil
}

func (r *fakeLogRepo) ListByGame(_ context.Context, gameID string, filter entities.LogFilter, limit int) ([]entities.LogEntry, error) {
	var out []entities.LogEntry
	for _, e := range slices.Backward(r.entries) {
		if e.GameID != gameID || len(out) >= limit {
			continue
		}
		if len(filter.Keys) > 0 && !slices.Contains(filter.Keys, e.Key) {
			continue
		}
		if len(filter.Players) > 0 && !slices.Contains(filter.Players, e.Player) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type fakeNotifier struct {
	announced []entities.LogEntry
	err       error
}

func (n *fakeNotifier) Announce(_ context.Context, _ string, e entities.LogEntry) error {
	n.announced = append(n.announced, e)
	return n.err
}

func newService(t *testing.T, repo *fakeLogRepo, notifier output.Notifier) *LogService {
	t.Helper()
	tr, err := i18n.NewTranslator("en")
	if err != nil {
		t.Fatal(err)
	}
	svc := NewLogService(repo, tr, notifier, "en")
	svc.now = func() time.Time { return time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC) }
	return svc
}

func TestRecord_StoresAndAnnounces(t *testing.T) {
	repo := &fakeLogRepo{}
	notifier := &fakeNotifier{}
	svc := newService(t, repo, notifier)

	entry := &entities.LogEntry{GameID: " pb1 ", Player: "Gandhi", Key: "log_player_change_name", Args: []string{"Mahatma"}}
	if err := svc.Record(context.Background(), entry); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if entry.ID != 1 || entry.GameID != "pb1" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt should be stamped")
	}
	if len(notifier.announced) != 1 || notifier.announced[0].ID != 1 {
		t.Errorf("announced = %+v", notifier.announced)
	}
}

func TestRecord_AnnounceFailureIsNotFatal(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := newService(t, repo, &fakeNotifier{err: errors.New("discord down")})
	if err := svc.Record(context.Background(), &entities.LogEntry{GameID: "pb1", Key: "log_logged_in"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Errorf("entries = %d, want 1", len(repo.entries))
	}
}

func TestRecord_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		entry entities.LogEntry
		want  error
	}{
		{"no game", entities.LogEntry{Key: "log_logged_in"}, domain.ErrGameRequired},
		{"unknown key", entities.LogEntry{GameID: "pb1", Key: "log_nonexistent"}, domain.ErrMissingKey},
		{"ui key", entities.LogEntry{GameID: "pb1", Key: "game_save"}, domain.ErrNotLogMessage},
		{"missing arg", entities.LogEntry{GameID: "pb1", Key: "log_new_turn"}, domain.ErrFormatMismatch},
		{"extra arg", entities.LogEntry{GameID: "pb1", Key: "log_logged_in", Args: []string{"x"}}, domain.ErrFormatMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeLogRepo{}
			svc := newService(t, repo, nil)
			err := svc.Record(context.Background(), &tt.entry)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if len(repo.entries) != 0 {
				t.Error("rejected entry was stored")
			}
		})
	}
}

func TestRecord_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := newService(t, &fakeLogRepo{err: repoErr}, nil)
	err := svc.Record(context.Background(), &entities.LogEntry{GameID: "pb1", Key: "log_logged_out"})
	if !errors.Is(err, repoErr) {
		t.Fatalf("err = %v, want wrapped repository error", err)
	}
}

func TestHistory_RendersNewestFirst(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := newService(t, repo, nil)
	ctx := context.Background()
	for _, e := range []*entities.LogEntry{
		{GameID: "pb1", Key: "log_new_game", Args: []string{"4000 BC"}},
		{GameID: "pb2", Key: "log_logged_in"},
		{GameID: "pb1", Player: "Gandhi", Key: "log_player_finished_turn"},
	} {
		if err := svc.Record(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.History(ctx, "de", "pb1", entities.LogFilter{}, 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].Text != "Runde beendet." {
		t.Errorf("newest = %q", got[0].Text)
	}
	if got[1].Text != "Neues Spiel geladen. Es ist jetzt 4000 BC." {
		t.Errorf("oldest = %q", got[1].Text)
	}

	if _, err := svc.History(ctx, "en", "", entities.LogFilter{}, 10); !errors.Is(err, domain.ErrGameRequired) {
		t.Errorf("err = %v, want ErrGameRequired", err)
	}
}

func TestHistory_Filter(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := newService(t, repo, nil)
	ctx := context.Background()
	for _, e := range []*entities.LogEntry{
		{GameID: "pb1", Player: "Gandhi", Key: "log_logged_in"},
		{GameID: "pb1", Player: "Caesar", Key: "log_logged_in"},
		{GameID: "pb1", Player: "Gandhi", Key: "log_player_finished_turn"},
		{GameID: "pb1", Key: "log_new_turn", Args: []string{"1200 AD"}},
		{GameID: "pb1", Player: "Gandhi", Key: "log_logged_out"},
	} {
		if err := svc.Record(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name   string
		filter entities.LogFilter
		want   []uint
	}{
		{"none", entities.LogFilter{}, []uint{5, 4, 3, 2, 1}},
		{"keys", entities.LogFilter{Keys: []string{"log_logged_in", "log_logged_out"}}, []uint{5, 2, 1}},
		{"player", entities.LogFilter{Players: []string{"Gandhi"}}, []uint{5, 3, 1}},
		{"both", entities.LogFilter{Keys: []string{"log_logged_in"}, Players: []string{"Caesar"}}, []uint{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.History(ctx, "en", "pb1", tt.filter, 10)
			if err != nil {
				t.Fatalf("History: %v", err)
			}
			var ids []uint
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			if !slices.Equal(ids, tt.want) {
				t.Errorf("ids = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestHistory_FilterRejectsNonLogKeys(t *testing.T) {
	svc := newService(t, &fakeLogRepo{}, nil)
	tests := []struct {
		key  string
		want error
	}{
		{"game_save", domain.ErrNotLogMessage},
		{"log_nonexistent", domain.ErrMissingKey},
	}
	for _, tt := range tests {
		_, err := svc.History(context.Background(), "en", "pb1", entities.LogFilter{Keys: []string{tt.key}}, 10)
		if !errors.Is(err, tt.want) {
			t.Errorf("History(--type %s) err = %v, want %v", tt.key, err, tt.want)
		}
	}
}

func TestRecord_ValidatesAgainstDefaultTable(t *testing.T) {
	fsys := fstest.MapFS{
		"active.en.toml": {Data: []byte("locale = \"en\"\n\n[[message]]\nsection = \"log\"\nid = \"log_new_turn\"\ntext = \"New turn: %s.\"\n")},
		"active.de.toml": {Data: []byte("locale = \"de\"\n\n[[message]]\nid = \"log_new_turn\"\ntext = \"Neue Runde.\"\n")},
	}
	tr, err := i18n.NewTranslatorFS(fsys, "en")
	if err != nil {
		t.Fatal(err)
	}
	repo := &fakeLogRepo{}
	svc := NewLogService(repo, tr, nil, "de")
	entry := &entities.LogEntry{GameID: "pb1", Key: "log_new_turn", Args: []string{"1200 AD"}}
	if err := svc.Record(context.Background(), entry); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(repo.entries) != 1 {
		t.Errorf("entries = %d, want 1", len(repo.entries))
	}
}
