package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pbadmin/internal/domain"
	"pbadmin/internal/domain/entities"
	pkgdiscord "pbadmin/pkg/discord"
	"pbadmin/pkg/tz"
)

func newLogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record and show game log entries",
	}
	cmd.AddCommand(newLogRecordCommand(), newLogShowCommand())
	return cmd
}

func newLogRecordCommand() *cobra.Command {
	var gameID, player string
	var noAnnounce bool
	cmd := &cobra.Command{
		Use:   "record KEY [ARG...]",
		Short: "Record a log event for a game",
		Example: `  pbadmin log record --game pb1 log_new_turn "1200 AD"
  pbadmin log record --game pb1 --player Gandhi log_logged_in`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			svc, pool, err := a.logService(cmd.Context(), !noAnnounce)
			if err != nil {
				return err
			}
			defer pool.Close()

			entry := &entities.LogEntry{
				GameID: gameID,
				Player: player,
				Key:    args[0],
				Args:   args[1:],
			}
			if err := svc.Record(cmd.Context(), entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded #%d\n", entry.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&gameID, "game", "", "Game id (required)")
	cmd.Flags().StringVar(&player, "player", "", "Player the event is about")
	cmd.Flags().BoolVar(&noAnnounce, "no-announce", false, "Do not post the entry to Discord")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}

func newLogShowCommand() *cobra.Command {
	var gameID string
	var limit int
	var filter entities.LogFilter
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a game's newest log entries",
		Example: `  pbadmin log show --game pb1
  pbadmin log show --game pb1 --type log_logged_in,log_logged_out --player Gandhi`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			loc, err := tz.Load(a.cfg.TimeZone)
			if err != nil {
				return err
			}
			svc, pool, err := a.logService(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer pool.Close()

			entries, err := svc.History(cmd.Context(), a.locale, gameID, filter, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				who := e.Player
				if who == "" {
					who = "-"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", pkgdiscord.FormatLogTime(e.CreatedAt, loc), who, e.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&gameID, "game", "", "Game id (required)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries")
	cmd.Flags().StringSliceVar(&filter.Keys, "type", nil, "Only entries of these log message keys")
	cmd.Flags().StringSliceVar(&filter.Players, "player", nil, "Only entries about these players")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.RegisterFlagCompletionFunc("type", completeLogKeys)
	return cmd
}

// completeLogKeys offers the log section of the selected locale's table.
func completeLogKeys(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	a, err := loadApp(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return a.translator.TableFor(a.locale).Section(domain.SectionLog), cobra.ShellCompDirectiveNoFileComp
}
