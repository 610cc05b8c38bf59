package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	backend   string
	logLevel  string
	seed      bool
}

var flags rootFlags

// resolved holds the settings computed by the root PersistentPreRunE.
var resolved settings

// newRootCmd creates the top-level "stockroom" command with global flags and
// all subcommands registered. Running it without a subcommand starts the
// interactive session.
func newRootCmd() *cobra.Command {
	flags = rootFlags{}

	root := &cobra.Command{
		Use:   "stockroom",
		Short: "A console inventory manager for a small store",
		Long: "Stockroom keeps a product catalog (ID, name, quantity, price) and lets you\n" +
			"view, add, update, remove and search products from a numbered menu.\n" +
			"The inventory is loaded at startup and saved on exit.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: prepare,
		RunE:              runInteractive,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $(CWD)/"+paths.DefaultConfigDirName+")")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "storage backend: csv, jsonl or sqlite (default from config, then csv)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")
	root.Flags().BoolVar(&flags.seed, "seed", false, "add the demo catalog when the loaded inventory is empty")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newSummaryCmd())

	return root
}

// prepare loads config.yaml and resolves the settings every command uses.
func prepare(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return err
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	resolved, err = resolveSettings(v, configDir)
	return err
}
