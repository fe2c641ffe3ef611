package commands

import (
	"github.com/spf13/cobra"
)

func newBankCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Manage banks",
	}
	cmd.AddCommand(newBankListCommand())
	cmd.AddCommand(newBankCreateCommand())
	return cmd
}

func newBankListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List banks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			banks, err := store.ListBanks(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), banks)
		},
	}
}

func newBankCreateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			bank, err := store.CreateBank(cmd.Context(), name)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), []any{bank})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "bank name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
