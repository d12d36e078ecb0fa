package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/themuzzleflare/provenance/internal/models"
	"github.com/themuzzleflare/provenance/internal/pipeline"
	"github.com/themuzzleflare/provenance/internal/types"
	"github.com/themuzzleflare/provenance/internal/upclient"
)

var (
	transactionsSearch      string
	transactionsMatch       string
	transactionsCategory    string
	transactionsTag         string
	transactionsStatus      string
	transactionsSince       string
	transactionsUntil       string
	transactionsSettledOnly bool
	transactionsAccount     string
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "List transactions grouped by day",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := transactionFilter()
		if err != nil {
			return err
		}

		source := func(ctx context.Context) ([]models.Transaction, error) {
			if transactionsAccount != "" {
				return client.AccountTransactions(ctx, transactionsAccount)
			}
			return client.Transactions(ctx, filter)
		}

		p := newTransactionPipeline(source)
		defer p.Close()

		p.SetPredicate(pipeline.All(
			pipeline.TransactionSearch(transactionsSearch),
			pipeline.TransactionMatch(transactionsMatch),
			pipeline.TransactionCategory(transactionsCategory),
			pipeline.TransactionSettledOnly(transactionsSettledOnly),
		))

		update, _ := p.Refresh(cmd.Context())
		if renderState(cmd.OutOrStdout(), update.State) {
			renderTransactionSections(cmd.OutOrStdout(), update.Snapshot, store.Get().DateStyle)
		}
		return nil
	},
}

var transactionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		transaction, err := client.Transaction(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		renderTransactionDetail(cmd.OutOrStdout(), transaction)
		return nil
	},
}

func transactionFilter() (upclient.TransactionFilter, error) {
	filter := upclient.TransactionFilter{
		Status:   models.TransactionStatus(transactionsStatus),
		Category: transactionsCategory,
		Tag:      transactionsTag,
	}

	var err error
	if transactionsSince != "" {
		filter.Since, err = parseTimeArg(transactionsSince)
		if err != nil {
			return upclient.TransactionFilter{}, err
		}
	}
	if transactionsUntil != "" {
		filter.Until, err = parseTimeArg(transactionsUntil)
		if err != nil {
			return upclient.TransactionFilter{}, err
		}
	}

	return filter, nil
}

// parseTimeArg accepts RFC3339 timestamps and plain dates.
func parseTimeArg(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func newTransactionPipeline(source pipeline.Source[models.Transaction]) *pipeline.Pipeline[types.Day, models.Transaction] {
	return pipeline.New(pipeline.Config[types.Day, models.Transaction]{
		Source:      source,
		GroupKey:    pipeline.TransactionDay,
		CompareKeys: pipeline.DaysDescending,
		ID:          func(t models.Transaction) string { return t.ID },
		Equal:       transactionsEqual,
		Settings:    store,
	})
}

// transactionsEqual reports whether the fields a list row renders are
// unchanged between two fetches of the same transaction.
func transactionsEqual(a, b models.Transaction) bool {
	if a.Description != b.Description || a.Status != b.Status ||
		!a.Amount.Equal(b.Amount) || a.CategoryID != b.CategoryID {
		return false
	}
	if len(a.TagIDs) != len(b.TagIDs) {
		return false
	}
	for i := range a.TagIDs {
		if a.TagIDs[i] != b.TagIDs[i] {
			return false
		}
	}
	return true
}

func init() {
	transactionsCmd.Flags().StringVar(&transactionsSearch, "search", "", "free-text search over description, raw text and message")
	transactionsCmd.Flags().StringVar(&transactionsMatch, "match", "", "glob pattern over the description, e.g. 'UBER*'")
	transactionsCmd.Flags().StringVar(&transactionsCategory, "category", "", "only transactions in this category")
	transactionsCmd.Flags().StringVar(&transactionsTag, "tag", "", "only transactions carrying this tag")
	transactionsCmd.Flags().StringVar(&transactionsStatus, "status", "", "only transactions with this status (HELD or SETTLED)")
	transactionsCmd.Flags().StringVar(&transactionsSince, "since", "", "only transactions at or after this time")
	transactionsCmd.Flags().StringVar(&transactionsUntil, "until", "", "only transactions before this time")
	transactionsCmd.Flags().BoolVar(&transactionsSettledOnly, "settled-only", false, "hide held transactions")
	transactionsCmd.Flags().StringVar(&transactionsAccount, "account", "", "only transactions on this account")

	transactionsCmd.AddCommand(transactionsShowCmd)
	rootCmd.AddCommand(transactionsCmd)
}
