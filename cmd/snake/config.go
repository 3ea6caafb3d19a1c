package main

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after the config
file search and command line overrides.

Config search order:
  --config <path>
  ~/.snake/config.yaml
  ./configs/snake.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addPlayFlags(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
