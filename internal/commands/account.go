package commands

import (
	"github.com/spf13/cobra"
)

func newAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}
	cmd.AddCommand(newAccountListCommand())
	cmd.AddCommand(newAccountCreateCommand())
	return cmd
}

func newAccountListCommand() *cobra.Command {
	var bankID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			var filter *string
			if bankID != "" {
				filter = &bankID
			}
			accounts, err := store.ListAccounts(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), accounts)
		},
	}

	cmd.Flags().StringVar(&bankID, "bank-id", "", "only list accounts at this bank")

	return cmd
}

func newAccountCreateCommand() *cobra.Command {
	var name, bankID, typeID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			account, err := store.CreateAccount(cmd.Context(), name, bankID, typeID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), []any{account})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	cmd.Flags().StringVar(&bankID, "bank-id", "", "bank the account belongs to (required)")
	cmd.Flags().StringVar(&typeID, "type-id", "", "account type (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("bank-id")
	_ = cmd.MarkFlagRequired("type-id")

	return cmd
}
