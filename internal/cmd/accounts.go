package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/themuzzleflare/provenance/internal/models"
	"github.com/themuzzleflare/provenance/internal/pipeline"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List accounts grouped by type",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := pipeline.New(pipeline.Config[models.AccountType, models.Account]{
			Source:      client.Accounts,
			GroupKey:    func(a models.Account) models.AccountType { return a.AccountType },
			CompareKeys: func(a, b models.AccountType) int { return strings.Compare(string(a), string(b)) },
			ID:          func(a models.Account) string { return a.ID },
			Equal: func(a, b models.Account) bool {
				return a.DisplayName == b.DisplayName && a.Balance.Equal(b.Balance)
			},
			Settings: store,
		})
		defer p.Close()

		update, _ := p.Refresh(cmd.Context())
		if renderState(cmd.OutOrStdout(), update.State) {
			renderAccountSections(cmd.OutOrStdout(), update.Snapshot)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}
