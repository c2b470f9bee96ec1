package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewRootCommand creates the root cobra command for pbadmin.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pbadmin",
		Short:   "Pitboss administration message catalog",
		Long:    "pbadmin looks up and renders the admin panel's messages and keeps the game log.",
		Version: Version,
		// Silence usage on RunE errors (cobra prints usage by default on error)
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("locale", "l", "", "Message locale (default: PBADMIN_LOCALE or en)")
	rootCmd.PersistentFlags().String("locales-dir", "", "Directory of active.<locale>.toml files replacing the embedded ones")

	rootCmd.AddCommand(
		newGetCommand(),
		newKeysCommand(),
		newRenderCommand(),
		newMigrateCommand(),
		newLogCommand(),
		newVersionCommand(),
	)

	return rootCmd
}
