package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/importer"
	"github.com/tally-dev/tally/internal/logging"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/money"
)

func newTransactionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction",
		Short: "List and bulk-import transactions",
	}
	cmd.AddCommand(newTransactionListCommand())
	cmd.AddCommand(newTransactionLoadCommand())
	return cmd
}

// transactionOutput is the JSON line shape for transaction listings.
type transactionOutput struct {
	ID              string `json:"id"`
	AccountName     string `json:"account_name"`
	TransactionDate string `json:"transaction_date"`
	Description     string `json:"description"`
	Amount          string `json:"amount"`
	AmountCents     int64  `json:"amount_cents"`
	Status          string `json:"status"`
}

func toOutput(txn *model.Transaction, dateFormat string) transactionOutput {
	return transactionOutput{
		ID:              txn.ID,
		AccountName:     txn.AccountName,
		TransactionDate: txn.TransactionDate.Format(dateFormat),
		Description:     txn.Description,
		Amount:          money.FormatCents(txn.AmountCents),
		AmountCents:     txn.AmountCents,
		Status:          txn.Status,
	}
}

func newTransactionListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			txns, err := store.ListTransactions(cmd.Context())
			if err != nil {
				return err
			}

			out := make([]transactionOutput, len(txns))
			for i, txn := range txns {
				out[i] = toOutput(txn, cfg.Import.DateFormat)
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newTransactionLoadCommand() *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Bulk-import transactions from a bank CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			svc := importer.NewService(store, layoutFromConfig(cfg), logging.Setup())
			count, err := svc.LoadFromFile(cmd.Context(), accountID, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d transactions from %s to account %s\n",
				count, args[0], accountID)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account-id", "", "account to import into (required)")
	_ = cmd.MarkFlagRequired("account-id")

	return cmd
}

func layoutFromConfig(cfg *config.Config) importer.Layout {
	return importer.Layout{
		DateColumn:        cfg.Import.DateColumn,
		DescriptionColumn: cfg.Import.DescriptionColumn,
		AmountColumn:      cfg.Import.AmountColumn,
		StatusColumn:      cfg.Import.StatusColumn,
		DateFormat:        cfg.Import.DateFormat,
	}
}
