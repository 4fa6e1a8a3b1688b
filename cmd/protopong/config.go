package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/proto-pong/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file, the difficulty preset
and the global flags are applied. The first line names where the file was
found.

Search order:
  --config <path>
  ~/.protopong/config.yaml
  ./configs/protopong.yaml
  built-in defaults

Examples:
  protopong config
  protopong config --difficulty hard
  protopong config --defaults > ~/.protopong/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the default config file instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	data, err := config.Marshal(s.config)
	if err != nil {
		return err
	}

	fmt.Printf("# source: %s\n", s.source)
	fmt.Print(string(data))
	return nil
}
