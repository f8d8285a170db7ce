// Package cli defines the satchel command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/five82/satchel/internal/app"
)

var (
	flagConfig string
	flagAPI    string
	flagLimit  int
	flagPrefs  string
	flagQuery  string
)

// NewRootCmd creates the root cobra command. Without a subcommand it runs
// the TUI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "satchel",
		Short:        "Browse study materials from a storefront in the terminal",
		Long:         "satchel lists textbooks, workbooks and handouts from a storefront API in an interactive terminal UI.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), appOptions())
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.config/satchel/config.toml)")
	root.PersistentFlags().StringVar(&flagAPI, "api", "", "Storefront API base, host:port or URL (or SATCHEL_API_BASE)")
	root.PersistentFlags().IntVar(&flagLimit, "limit", 0, "Products per page (default from config)")
	root.Flags().StringVar(&flagPrefs, "prefs", "", "Preferences file (default ~/.config/satchel/prefs.toml)")
	root.Flags().StringVarP(&flagQuery, "query", "q", "", "Initial title search keyword")

	root.AddCommand(
		newListCmd(),
		newDemoCmd(),
	)

	return root
}

func appOptions() app.Options {
	return app.Options{
		ConfigPath: flagConfig,
		PrefsPath:  flagPrefs,
		APIBase:    flagAPI,
		PageLimit:  flagLimit,
		Keyword:    flagQuery,
	}
}
