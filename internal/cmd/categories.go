package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories as a parent and child tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := client.Categories(cmd.Context())
		if err != nil {
			return err
		}

		byID := make(map[string]string, len(categories))
		for _, category := range categories {
			byID[category.ID] = category.Name
		}

		out := cmd.OutOrStdout()
		for _, category := range categories {
			if !category.IsParent() {
				continue
			}

			fmt.Fprintf(out, "%s\n", category.Name)
			childIDs := slices.Clone(category.ChildIDs)
			slices.SortFunc(childIDs, func(a, b string) int {
				if byID[a] < byID[b] {
					return -1
				}
				if byID[a] > byID[b] {
					return 1
				}
				return 0
			})
			for _, childID := range childIDs {
				fmt.Fprintf(out, "  %s\n", byID[childID])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
