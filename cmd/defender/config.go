package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/type-defender/internal/config"
)

var flagConfigDifficulty string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML.

The output can be saved to ~/.defender/configs/defender.yaml and edited.

Examples:
  defender config
  defender config --difficulty hard
  defender config --config ./my-defender.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigDifficulty, "difficulty", "", "Apply a difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	s, err := loadSetup(flagConfigDifficulty, "", newLogger(os.Stderr))
	if err != nil {
		return err
	}

	data, err := config.Marshal(s.cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", s.cfgSource)
	if flagConfigDifficulty != "" {
		fmt.Fprintf(out, "# difficulty: %s\n", flagConfigDifficulty)
	}
	_, err = out.Write(data)
	return err
}
