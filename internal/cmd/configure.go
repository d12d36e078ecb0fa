package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/themuzzleflare/provenance/internal/config"
)

var (
	configureToken     string
	configureDateStyle string
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store the API token and display preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configureToken == "" && configureDateStyle == "" {
			return cmd.Help()
		}

		if configureDateStyle != "" {
			style := config.DateStyle(configureDateStyle)
			if style != config.DateStyleAbsolute && style != config.DateStyleRelative {
				return fmt.Errorf("date style must be %q or %q", config.DateStyleAbsolute, config.DateStyleRelative)
			}
			store.SetDateStyle(style)
		}
		if configureToken != "" {
			store.SetToken(configureToken)
		}

		return writeSettings(store.Get())
	},
}

// writeSettings persists the settings to the configuration file.
func writeSettings(settings config.Settings) error {
	if configPath == "" {
		return fmt.Errorf("no configuration file path available")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.Set("token", settings.Token)
	v.Set("base_url", settings.BaseURL)
	v.Set("date_style", string(settings.DateStyle))
	return v.WriteConfig()
}

func init() {
	configureCmd.Flags().StringVar(&configureToken, "token", "", "personal access token for the API")
	configureCmd.Flags().StringVar(&configureDateStyle, "date-style", "", "date display style (absolute or relative)")
	rootCmd.AddCommand(configureCmd)
}
