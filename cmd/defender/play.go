package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/type-defender/internal/config"
	"github.com/vovakirdan/type-defender/internal/core"
	"github.com/vovakirdan/type-defender/internal/games/defender"
	"github.com/vovakirdan/type-defender/internal/games/defender/levels"
	"github.com/vovakirdan/type-defender/internal/platform/tui"
)

var (
	flagLevel       int
	flagDifficulty  string
	flagProgression string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Typing Defender",
	Long: `Start the game. Without --level a level picker is shown first.

Controls:
  Letters    - Type the falling words
  Esc        - Pause/resume
  R          - Restart at the starting level (after game over)
  Q          - Quit (while paused or after game over)
  Ctrl+C     - Quit
  Ctrl+S     - Save a screenshot to ~/.defender/screenshots

Difficulty options:
  easy   - Sturdier buildings, slower words, gentle speed ramp
  normal - Default buildings, speed ramps from 30%
  hard   - Fragile buildings, faster words, speed ramps from 70%
  fixed  - No speed ramp

Progression options:
  fixed  - Stay on the chosen level
  quota  - Advance after completing the level's word quota

Examples:
  defender play
  defender play --level 2
  defender play --level 1 --progression quota
  defender play --difficulty hard --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (0 = pick interactively)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagProgression, "progression", "", "Level progression: fixed or quota (default from config)")
}

// setup is everything a command needs before it can run the game.
type setup struct {
	cfg       config.DefenderConfig
	cfgSource string
	catalog   *levels.Catalog
	lvlSource string
}

// loadSetup resolves config and catalog from the global flags.
func loadSetup(difficulty, progression string, logger *log.Logger) (setup, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return setup{}, err
	}

	cfg, cfgSource, err := config.LoadDefender(flagConfig)
	if err != nil {
		return setup{}, err
	}
	config.ApplyDefenderPreset(&cfg, preset)
	if progression != "" {
		cfg.Gameplay.Progression = progression
	}
	if err := cfg.Validate(); err != nil {
		return setup{}, err
	}

	catalog, lvlSource, err := levels.Load(flagLevels)
	if err != nil {
		return setup{}, err
	}
	for _, w := range catalog.Untypeable() {
		logger.Warn("word cannot be typed with its level's keys", "level", w.Level, "word", w.Word, "missing", string(w.Missing))
	}

	logger.Debug("configuration loaded", "config", cfgSource, "levels", lvlSource, "difficulty", preset)
	return setup{cfg: cfg, cfgSource: cfgSource, catalog: catalog, lvlSource: lvlSource}, nil
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile)

	s, err := loadSetup(flagDifficulty, flagProgression, logger)
	if err != nil {
		logger.Error("setup failed", "err", err)
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	level := flagLevel
	if level == 0 {
		level, err = tui.RunPicker(s.catalog, width, height)
		if err != nil {
			return err
		}
		// User quit the picker
		if level == 0 {
			return nil
		}
	}

	game, err := defender.New(defender.Options{
		Config:     s.cfg,
		Catalog:    s.catalog,
		StartLevel: level,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game loop failed", "err", err)
		return err
	}

	st := game.State()
	fmt.Fprintf(cmd.OutOrStdout(), "Score: %d  Level: %d\n", st.Score, st.Level)
	return nil
}
