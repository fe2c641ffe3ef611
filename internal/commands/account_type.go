package commands

import (
	"github.com/spf13/cobra"
)

func newAccountTypeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account-type",
		Short: "Manage account types",
	}
	cmd.AddCommand(newAccountTypeListCommand())
	cmd.AddCommand(newAccountTypeCreateCommand())
	return cmd
}

func newAccountTypeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List account types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			types, err := store.ListAccountTypes(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), types)
		},
	}
}

func newAccountTypeCreateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			at, err := store.CreateAccountType(cmd.Context(), name)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), []any{at})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account type name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
