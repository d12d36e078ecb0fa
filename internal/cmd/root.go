// Package cmd implements the provenance command line interface. It is
// the render layer for the pipeline: it runs one pipeline per command
// and renders the resulting snapshot and state.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/themuzzleflare/provenance/internal/config"
	"github.com/themuzzleflare/provenance/internal/upclient"
)

var (
	configPath string

	store  *config.Store
	client *upclient.Client
)

var rootCmd = &cobra.Command{
	Use:           "provenance",
	Short:         "Browse accounts, transactions, tags and categories from your bank",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		store, err = config.Load(configPath)
		if err != nil {
			return err
		}

		client = upclient.New(store)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "provenance", "config.toml")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to the configuration file")
}
