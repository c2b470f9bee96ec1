package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"pbadmin/internal/domain"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"PBADMIN_LOCALE", "PBADMIN_LOCALES_DIR", "DATABASE_URL", "DISCORD_TOKEN", "DISCORD_CHANNEL_ID", "PBADMIN_TZ"} {
		t.Setenv(name, "")
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolateEnv(t)
	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestGetCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"get", "game_save"}, "Save Game\n"},
		{[]string{"get", "game_admin_back"}, "Back to 'Administrate'.\n"},
		{[]string{"get", "-l", "de", "game_save"}, "Spiel speichern\n"},
		{[]string{"get", "game_set_timer_successful"}, "Set turn timer on %s.\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestGetCommand_MissingKey(t *testing.T) {
	_, err := run(t, "get", "nonexistent_key")
	if !errors.Is(err, domain.ErrMissingKey) {
		t.Fatalf("err = %v, want ErrMissingKey", err)
	}
}

func TestKeysCommand(t *testing.T) {
	out, err := run(t, "keys", "--section", "log")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12:\n%s", len(lines), out)
	}
	if lines[0] != "log_player_change_name\t1" {
		t.Errorf("first line = %q", lines[0])
	}

	all, err := run(t, "keys")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(all, "hours\t0\nmessage\t0\n") {
		t.Errorf("keys output starts with %q", all[:40])
	}

	if _, err := run(t, "keys", "--section", "nope"); err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestRenderCommand(t *testing.T) {
	out, err := run(t, "render", "game_set_timer_successful", "24")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Set turn timer on 24.\n" {
		t.Errorf("output = %q", out)
	}

	_, err = run(t, "render", "game_set_timer_successful")
	if !errors.Is(err, domain.ErrFormatMismatch) {
		t.Fatalf("err = %v, want ErrFormatMismatch", err)
	}
}

func TestTypedArgs(t *testing.T) {
	got := typedArgs("%d of %s", []string{"3", "7"})
	if _, ok := got[0].(int); !ok {
		t.Errorf("first arg = %T, want int", got[0])
	}
	if _, ok := got[1].(string); !ok {
		t.Errorf("second arg = %T, want string", got[1])
	}
}

func TestLocalesDirFlag(t *testing.T) {
	dir := t.TempDir()
	def := "locale = \"en\"\n\n[[message]]\nid = \"game_save\"\ntext = \"Save it\"\n"
	if err := os.WriteFile(filepath.Join(dir, "active.en.toml"), []byte(def), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "--locales-dir", dir, "get", "game_save")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Save it\n" {
		t.Errorf("output = %q", out)
	}
}

func TestLogCommands_RequireDatabase(t *testing.T) {
	for _, args := range [][]string{
		{"log", "record", "--game", "pb1", "log_logged_in"},
		{"log", "show", "--game", "pb1"},
		{"migrate"},
	} {
		_, err := run(t, args...)
		if err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
			t.Errorf("%v: err = %v, want DATABASE_URL error", args, err)
		}
	}
}

func TestCompleteLogKeys(t *testing.T) {
	isolateEnv(t)
	keys, directive := completeLogKeys(NewRootCommand(), nil, "")
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v", directive)
	}
	if len(keys) != 12 || keys[0] != "log_player_change_name" {
		t.Errorf("keys = %v", keys)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "pbadmin "+Version+"\n" {
		t.Errorf("output = %q", out)
	}
}
