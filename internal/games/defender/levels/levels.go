// Package levels loads the Typing Defender level catalog.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/type-defender/internal/games/defender/sim"
	"gopkg.in/yaml.v3"
)

// YAMLCatalog represents the YAML structure of a catalog file.
type YAMLCatalog struct {
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level in YAML format.
type YAMLLevel struct {
	Level           int      `yaml:"level,omitempty"`
	Keys            []string `yaml:"keys"`
	Words           []string `yaml:"words"`
	Speed           float64  `yaml:"speed"`
	SpawnMS         float64  `yaml:"spawn_ms"`
	WordsToComplete int      `yaml:"words_to_complete"`
	Description     string   `yaml:"description"`
}

// Catalog is an ordered, validated list of levels numbered from 1.
type Catalog struct {
	levels []sim.Level
}

// NewCatalog validates levels and wraps them. Levels must be numbered
// 1..n in order.
func NewCatalog(levels []sim.Level) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, errors.New("levels: catalog is empty")
	}
	for i, lvl := range levels {
		if lvl.Number != i+1 {
			return nil, fmt.Errorf("levels: entry %d is numbered %d, expected %d", i, lvl.Number, i+1)
		}
		if err := Validate(lvl); err != nil {
			return nil, err
		}
	}
	return &Catalog{levels: levels}, nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// All returns the levels in order.
func (c *Catalog) All() []sim.Level {
	return c.levels
}

// Lookup returns level n. Values below 1 give the first level and values
// past the end give the last.
func (c *Catalog) Lookup(n int) sim.Level {
	if n < 1 {
		n = 1
	}
	if n > len(c.levels) {
		n = len(c.levels)
	}
	return c.levels[n-1]
}

// Validate fails fast on a level the simulation cannot play.
func Validate(lvl sim.Level) error {
	switch {
	case len(lvl.Words) == 0:
		return fmt.Errorf("levels: level %d has an empty word pool", lvl.Number)
	case len(lvl.Keys) == 0:
		return fmt.Errorf("levels: level %d has an empty key alphabet", lvl.Number)
	case lvl.Speed <= 0:
		return fmt.Errorf("levels: level %d speed must be positive, got %v", lvl.Number, lvl.Speed)
	case lvl.SpawnMS <= 0:
		return fmt.Errorf("levels: level %d spawn_ms must be positive, got %v", lvl.Number, lvl.SpawnMS)
	case lvl.WordsToComplete < 0:
		return fmt.Errorf("levels: level %d words_to_complete must not be negative", lvl.Number)
	}
	for _, w := range lvl.Words {
		if w == "" {
			return fmt.Errorf("levels: level %d contains an empty word", lvl.Number)
		}
	}
	return nil
}

// Warning flags a word that cannot be finished with its level's keys.
type Warning struct {
	Level   int
	Word    string
	Missing []rune
}

func (w Warning) String() string {
	return fmt.Sprintf("level %d: %q needs %q", w.Level, w.Word, string(w.Missing))
}

// Untypeable lists words containing letters outside their level's
// alphabet. Such words can only be stopped by losing health, so they are
// reported rather than rejected.
func (c *Catalog) Untypeable() []Warning {
	var out []Warning
	for _, lvl := range c.levels {
		for _, word := range lvl.Words {
			var missing []rune
			for _, r := range word {
				if !lvl.Allows(r) && !containsRune(missing, r) {
					missing = append(missing, r)
				}
			}
			if len(missing) > 0 {
				out = append(out, Warning{Level: lvl.Number, Word: word, Missing: missing})
			}
		}
	}
	return out
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

// ParseYAML parses a catalog file into levels. Keys and words are
// lower-cased; each key must be a single character.
func ParseYAML(data []byte) ([]sim.Level, error) {
	var yc YAMLCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	out := make([]sim.Level, 0, len(yc.Levels))
	for i, yl := range yc.Levels {
		number := yl.Level
		if number == 0 {
			number = i + 1
		}

		keys := make([]rune, 0, len(yl.Keys))
		for _, k := range yl.Keys {
			k = strings.ToLower(strings.TrimSpace(k))
			if utf8.RuneCountInString(k) != 1 {
				return nil, fmt.Errorf("level %d: key %q must be a single character", number, k)
			}
			r, _ := utf8.DecodeRuneInString(k)
			keys = append(keys, r)
		}

		words := make([]string, 0, len(yl.Words))
		for _, w := range yl.Words {
			words = append(words, strings.ToLower(strings.TrimSpace(w)))
		}

		out = append(out, sim.Level{
			Number:          number,
			Keys:            keys,
			Words:           words,
			Speed:           yl.Speed,
			SpawnMS:         yl.SpawnMS,
			WordsToComplete: yl.WordsToComplete,
			Description:     yl.Description,
		})
	}
	return out, nil
}
