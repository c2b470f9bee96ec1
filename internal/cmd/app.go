package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"pbadmin/internal/adapters/discord"
	"pbadmin/internal/application"
	"pbadmin/internal/config"
	"pbadmin/internal/infrastructure/database"
	"pbadmin/internal/infrastructure/i18n"
	"pbadmin/internal/ports/output"
	"pbadmin/pkg/tz"
)

// app holds what every command needs: configuration and the translator.
type app struct {
	cfg        *config.Config
	translator *i18n.Translator
	locale     string
}

func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("locales-dir"); dir != "" {
		cfg.LocalesDir = dir
	}

	var tr *i18n.Translator
	if cfg.LocalesDir != "" {
		tr, err = i18n.NewTranslatorFS(os.DirFS(cfg.LocalesDir), cfg.DefaultLocale)
	} else {
		tr, err = i18n.NewTranslator(cfg.DefaultLocale)
	}
	if err != nil {
		return nil, err
	}

	locale, _ := cmd.Flags().GetString("locale")
	if locale == "" {
		locale = cfg.DefaultLocale
	}
	return &app{cfg: cfg, translator: tr, locale: locale}, nil
}

// logService opens the database and wires the game log. announce adds the
// Discord announcer when it is configured. The returned pool must be closed.
func (a *app) logService(ctx context.Context, announce bool) (*application.LogService, *pgxpool.Pool, error) {
	if err := a.cfg.RequireDatabase(); err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPool(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("database: %w", err)
	}

	var notifier output.Notifier
	if announce && a.cfg.DiscordEnabled() {
		loc, err := tz.Load(a.cfg.TimeZone)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		ann, err := discord.NewAnnouncer(a.cfg.DiscordToken, a.cfg.DiscordChannelID, a.translator, loc)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		notifier = ann
	}

	repo := database.NewLogRepository(database.NewQueries(pool))
	return application.NewLogService(repo, a.translator, notifier, a.locale), pool, nil
}
