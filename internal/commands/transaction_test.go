package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupLedger points the CLI at a fresh temp database and seeds one
// account, returning its id.
func setupLedger(t *testing.T) string {
	t.Helper()
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "tally.db"))

	store, _, err := openStore()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	bank, err := store.CreateBank(ctx, "First National")
	require.NoError(t, err)
	at, err := store.CreateAccountType(ctx, "checking")
	require.NoError(t, err)
	account, err := store.CreateAccount(ctx, "Everyday Checking", bank.ID, at.ID)
	require.NoError(t, err)
	return account.ID
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTransactionLoad(t *testing.T) {
	accountID := setupLedger(t)
	csvPath := writeCSV(t, `2025-01-03,ref1,GITHUB SUBSCRIPTION,x,-4.00,cleared
2025-01-05,ref2,"COFFEE, BEANS",x,12.01,pending
2025-01-07,ref3,PAYCHECK,x,3500,cleared
`)

	out, err := run(t, "transaction", "load", csvPath, "--account-id", accountID)
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 3 transactions")

	store, _, err := openStore()
	require.NoError(t, err)
	defer store.Close()

	txns, err := store.ListTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, txns, 3)
	for _, txn := range txns {
		assert.Equal(t, "Everyday Checking", txn.AccountName)
		assert.NotEmpty(t, txn.ID)
	}
}

func TestTransactionLoad_BadDateAbortsAfterPartialCommit(t *testing.T) {
	accountID := setupLedger(t)
	csvPath := writeCSV(t, `2025-01-03,ref1,FIRST,x,-4.00,cleared
NOTADATE,ref2,SECOND,x,12.01,pending
2025-01-07,ref3,THIRD,x,3500,cleared
`)

	_, err := run(t, "transaction", "load", csvPath, "--account-id", accountID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")

	// Non-transactional: the first row stays, nothing after the failure.
	store, _, err := openStore()
	require.NoError(t, err)
	defer store.Close()

	txns, err := store.ListTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "FIRST", txns[0].Description)
}

func TestTransactionLoad_UnknownAccount(t *testing.T) {
	setupLedger(t)
	csvPath := writeCSV(t, "2025-01-03,ref1,FIRST,x,-4.00,cleared\n")

	_, err := run(t, "transaction", "load", csvPath, "--account-id", "no-such-account")
	require.Error(t, err)

	store, _, err := openStore()
	require.NoError(t, err)
	defer store.Close()

	txns, err := store.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestTransactionList(t *testing.T) {
	accountID := setupLedger(t)
	csvPath := writeCSV(t, "2025-01-03,ref1,GITHUB SUBSCRIPTION,x,-4.00,cleared\n")

	_, err := run(t, "transaction", "load", csvPath, "--account-id", accountID)
	require.NoError(t, err)

	out, err := run(t, "transaction", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)

	var got transactionOutput
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, "Everyday Checking", got.AccountName)
	assert.Equal(t, "2025-01-03", got.TransactionDate)
	assert.Equal(t, "-4.00", got.Amount)
	assert.Equal(t, int64(-400), got.AmountCents)
	assert.Equal(t, "cleared", got.Status)
}

func TestBankAndAccountCommands(t *testing.T) {
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "tally.db"))

	out, err := run(t, "bank", "create", "--name", "Credit Union")
	require.NoError(t, err)
	assert.Contains(t, out, "Credit Union")

	var bank struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &bank))

	out, err = run(t, "account-type", "create", "--name", "savings")
	require.NoError(t, err)
	var at struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &at))

	out, err = run(t, "account", "create", "--name", "Rainy Day",
		"--bank-id", bank.ID, "--type-id", at.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Rainy Day")

	out, err = run(t, "account", "list", "--bank-id", bank.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Rainy Day")

	out, err = run(t, "bank", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Credit Union")
}

func TestTransactionLoad_MissingFile(t *testing.T) {
	accountID := setupLedger(t)

	_, err := run(t, "transaction", "load", "no-such-file.csv", "--account-id", accountID)
	require.Error(t, err)
}
