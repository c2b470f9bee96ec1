package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pbadmin/internal/domain"
)

func newKeysCommand() *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List message keys and their placeholder counts",
		Long:  "List the keys of the selected locale's table in definition order, one \"key<TAB>slots\" line each.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			table := a.translator.TableFor(a.locale)
			keys := table.Keys()
			if section != "" {
				if section != domain.SectionUI && section != domain.SectionLog {
					return fmt.Errorf("unknown section %q (want %s or %s)", section, domain.SectionUI, domain.SectionLog)
				}
				keys = table.Section(section)
			}
			out := cmd.OutOrStdout()
			for _, k := range keys {
				n, _ := table.Slots(k)
				fmt.Fprintf(out, "%s\t%d\n", k, n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "Only list one section: ui or log")
	return cmd
}
