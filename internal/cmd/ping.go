package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/themuzzleflare/provenance/internal/upclient"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Validate the configured API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := client.Ping(cmd.Context())
		if err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "The token is valid")
			return nil
		}

		if errors.Is(err, upclient.ErrUnauthenticated) {
			return errors.New("no token is configured, run 'provenance configure --token <token>'")
		}
		return fmt.Errorf("the token was rejected: %w", err)
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
