package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/themuzzleflare/provenance/internal/models"
	"github.com/themuzzleflare/provenance/internal/pipeline"
	"github.com/themuzzleflare/provenance/internal/tagwizard"
)

var (
	tagsSearch string
	tagsYes    bool
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags grouped by first letter",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := pipeline.New(pipeline.Config[string, models.Tag]{
			Source:      client.Tags,
			GroupKey:    pipeline.TagLetter,
			CompareKeys: pipeline.LettersAscending,
			ID:          func(t models.Tag) string { return t.ID },
			Settings:    store,
		})
		defer p.Close()

		p.SetPredicate(pipeline.TagSearch(tagsSearch))

		update, _ := p.Refresh(cmd.Context())
		if renderState(cmd.OutOrStdout(), update.State) {
			renderTagSections(cmd.OutOrStdout(), update.Snapshot)
		}
		return nil
	},
}

var tagsAddCmd = &cobra.Command{
	Use:   "add <transaction-id> <tag>...",
	Short: "Add tags to a transaction",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTagWizard(cmd, tagwizard.ModeAdd, args[0], args[1:])
	},
}

var tagsRemoveCmd = &cobra.Command{
	Use:   "remove <transaction-id> <tag>...",
	Short: "Remove tags from a transaction",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTagWizard(cmd, tagwizard.ModeRemove, args[0], args[1:])
	},
}

// runTagWizard drives the selection, confirmation and submission steps
// of the tag workflow from command arguments, then re-fetches the
// transaction so the new tag state is visible.
func runTagWizard(cmd *cobra.Command, mode tagwizard.Mode, transactionID string, tags []string) error {
	transaction, err := client.Transaction(cmd.Context(), transactionID)
	if err != nil {
		return err
	}

	wizard := tagwizard.New(client, mode)
	if err := wizard.SelectTransaction(transaction); err != nil {
		return err
	}
	for _, tag := range tags {
		if err := wizard.SelectTag(tag); err != nil {
			return err
		}
	}

	mutation, err := wizard.Confirm()
	if err != nil {
		return err
	}

	verb := "Add"
	if mode == tagwizard.ModeRemove {
		verb = "Remove"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s tags [%s] on %q (%s)\n",
		verb, strings.Join(mutation.TagIDs, ", "), transaction.Description, mutation.TransactionID)

	if !tagsYes {
		fmt.Fprint(cmd.OutOrStdout(), "Proceed? [y/N] ")
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			wizard.Cancel()
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	if err := wizard.Submit(cmd.Context()); err != nil {
		return err
	}

	updated, err := client.Transaction(cmd.Context(), transactionID)
	if err != nil {
		return err
	}
	renderTransactionDetail(cmd.OutOrStdout(), updated)
	return nil
}

func init() {
	tagsCmd.Flags().StringVar(&tagsSearch, "search", "", "only tags containing this text")
	tagsAddCmd.Flags().BoolVarP(&tagsYes, "yes", "y", false, "skip the confirmation prompt")
	tagsRemoveCmd.Flags().BoolVarP(&tagsYes, "yes", "y", false, "skip the confirmation prompt")

	tagsCmd.AddCommand(tagsAddCmd, tagsRemoveCmd)
	rootCmd.AddCommand(tagsCmd)
}
