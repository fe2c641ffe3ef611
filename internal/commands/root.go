// Package commands wires the CLI surface: bank, account, and account-type
// management plus transaction listing and bulk import.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/buildinfo"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/storage"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Personal finance ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newBankCommand())
	rootCmd.AddCommand(newAccountCommand())
	rootCmd.AddCommand(newAccountTypeCommand())
	rootCmd.AddCommand(newTransactionCommand())

	return rootCmd
}

// openStore loads configuration from the working directory and opens the
// ledger store, applying migrations. Callers own the returned store.
func openStore() (*storage.Store, *config.Config, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// printJSON writes one JSON line per value, mirroring list output of the
// other subcommands.
func printJSON[T any](w io.Writer, values []T) error {
	enc := json.NewEncoder(w)
	for _, v := range values {
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
	}
	return nil
}
