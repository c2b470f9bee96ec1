package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pbadmin/internal/infrastructure/i18n"
)

func newRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render KEY [ARG...]",
		Short: "Render a message with its placeholder values",
		Example: `  pbadmin render game_set_timer_successful 24
  pbadmin render -l de log_new_turn "1200 AD"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			key := args[0]
			tmpl, err := a.translator.Get(a.locale, key)
			if err != nil {
				return err
			}
			msg, err := a.translator.Format(a.locale, key, typedArgs(tmpl, args[1:])...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

// typedArgs converts command line values to integers where the template
// has an integer verb, so %d receives a number.
func typedArgs(tmpl string, raw []string) []any {
	verbs := i18n.Placeholders(tmpl)
	out := make([]any, len(raw))
	for i, v := range raw {
		out[i] = v
		if i < len(verbs) && strings.HasSuffix(verbs[i], "d") {
			if n, err := strconv.Atoi(v); err == nil {
				out[i] = n
			}
		}
	}
	return out
}
