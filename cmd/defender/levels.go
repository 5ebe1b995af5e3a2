package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagCheck bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level catalog",
	Long: `Lists every level with its keys, speed and word pool.

With --check, also reports words that use letters outside their level's
keys. Those words can never be typed out and always reach their target.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagCheck, "check", false, "Report untypeable words")
}

func runLevels(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	logger := newLogger(os.Stderr)

	s, err := loadSetup("", "", logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Levels (%s):\n\n", s.lvlSource)
	fmt.Fprintf(out, "  %-3s  %-18s  %-5s  %-6s  %-4s  %s\n", "#", "Keys", "Speed", "Spawn", "Goal", "Description")
	fmt.Fprintf(out, "  %-3s  %-18s  %-5s  %-6s  %-4s  %s\n", "-", "----", "-----", "-----", "----", "-----------")

	for _, lvl := range s.catalog.All() {
		keys := make([]string, len(lvl.Keys))
		for i, k := range lvl.Keys {
			keys[i] = strings.ToUpper(string(k))
		}
		fmt.Fprintf(out, "  %-3d  %-18s  %-5.1f  %-6s  %-4d  %s\n",
			lvl.Number, strings.Join(keys, " "), lvl.Speed,
			fmt.Sprintf("%.1fs", lvl.SpawnMS/1000), lvl.WordsToComplete, lvl.Description)
		fmt.Fprintf(out, "       words: %s\n", strings.Join(lvl.Words, ", "))
	}

	if !flagCheck {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'defender play --level <n>' to play a level.")
		return nil
	}

	fmt.Fprintln(out)
	warnings := s.catalog.Untypeable()
	if len(warnings) == 0 {
		fmt.Fprintln(out, "All words can be typed with their level's keys.")
		return nil
	}
	fmt.Fprintf(out, "Untypeable words (%d):\n", len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(out, "  %s\n", w)
	}
	return nil
}
