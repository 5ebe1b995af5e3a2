package levels

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/type-defender/internal/games/defender/sim"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if c.Len() != 5 {
		t.Fatalf("expected 5 levels, got %d", c.Len())
	}

	tests := []struct {
		n       int
		keys    string
		speed   float64
		spawnMS float64
		quota   int
	}{
		{1, "asdf", 1.0, 3000, 8},
		{2, "asdf", 1.2, 2800, 10},
		{3, "jkl;", 1.0, 3000, 8},
		{4, "asdfjkl;", 1.3, 2500, 12},
		{5, "qwertasdf", 1.4, 2300, 15},
	}
	for _, tc := range tests {
		lvl := c.Lookup(tc.n)
		if lvl.Number != tc.n || string(lvl.Keys) != tc.keys {
			t.Errorf("level %d: number=%d keys=%q", tc.n, lvl.Number, string(lvl.Keys))
		}
		if lvl.Speed != tc.speed || lvl.SpawnMS != tc.spawnMS || lvl.WordsToComplete != tc.quota {
			t.Errorf("level %d: speed=%v spawn=%v quota=%d", tc.n, lvl.Speed, lvl.SpawnMS, lvl.WordsToComplete)
		}
		if lvl.Description == "" || len(lvl.Words) == 0 {
			t.Errorf("level %d should have a description and words", tc.n)
		}
	}
}

func TestLookupClamps(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		n, expected int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{5, 5},
		{6, 5},
		{99, 5},
	}
	for _, tc := range tests {
		if got := c.Lookup(tc.n).Number; got != tc.expected {
			t.Errorf("Lookup(%d) = level %d, expected %d", tc.n, got, tc.expected)
		}
	}
}

func TestUntypeableDefaults(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	found := map[string]bool{}
	for _, w := range c.Untypeable() {
		found[w.Word] = true
	}
	for _, word := range []string{"fast", "skull", "jail"} {
		if !found[word] {
			t.Errorf("expected %q to be reported as untypeable", word)
		}
	}
	if found["sass"] || found["flask"] {
		t.Error("typeable words should not be reported")
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Level: 4, Word: "skull", Missing: []rune("u")}
	if got := w.String(); got != `level 4: "skull" needs "u"` {
		t.Errorf("String() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	good := sim.Level{Number: 1, Keys: []rune("as"), Words: []string{"as"}, Speed: 1, SpawnMS: 1000}

	tests := []struct {
		name   string
		mutate func(*sim.Level)
		want   string
	}{
		{"empty pool", func(l *sim.Level) { l.Words = nil }, "empty word pool"},
		{"empty alphabet", func(l *sim.Level) { l.Keys = nil }, "empty key alphabet"},
		{"zero speed", func(l *sim.Level) { l.Speed = 0 }, "speed"},
		{"negative interval", func(l *sim.Level) { l.SpawnMS = -1 }, "spawn_ms"},
		{"empty word", func(l *sim.Level) { l.Words = []string{"as", ""} }, "empty word"},
	}

	if err := Validate(good); err != nil {
		t.Fatalf("valid level rejected: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := good
			tc.mutate(&lvl)
			err := Validate(lvl)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.want)
			}
		})
	}
}

func TestNewCatalogNumbering(t *testing.T) {
	lvl := sim.Level{Number: 2, Keys: []rune("a"), Words: []string{"a"}, Speed: 1, SpawnMS: 1}
	if _, err := NewCatalog([]sim.Level{lvl}); err == nil {
		t.Error("catalog must start at level 1")
	}
	if _, err := NewCatalog(nil); err == nil {
		t.Error("empty catalog should be rejected")
	}
}

func TestParseYAMLNormalizes(t *testing.T) {
	data := []byte(`
levels:
  - keys: [" A", S]
    words: [Sass, " as "]
    speed: 2
    spawn_ms: 500
`)
	lvls, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if len(lvls) != 1 {
		t.Fatalf("expected 1 level, got %d", len(lvls))
	}
	lvl := lvls[0]
	if lvl.Number != 1 {
		t.Errorf("omitted level number should default to position, got %d", lvl.Number)
	}
	if string(lvl.Keys) != "as" || lvl.Words[0] != "sass" || lvl.Words[1] != "as" {
		t.Errorf("keys=%q words=%q", string(lvl.Keys), lvl.Words)
	}
}

func TestParseYAMLRejectsMultiCharKey(t *testing.T) {
	data := []byte("levels:\n  - keys: [ab]\n    words: [ab]\n    speed: 1\n    spawn_ms: 1\n")
	if _, err := ParseYAML(data); err == nil {
		t.Error("multi-character key should be rejected")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	data := "levels:\n  - keys: [j, k]\n    words: [jk]\n    speed: 1\n    spawn_ms: 1000\n    description: custom\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src != path || c.Len() != 1 || c.Lookup(1).Description != "custom" {
		t.Errorf("unexpected catalog from %s: %+v", src, c.All())
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("levels:\n  - keys: [j]\n    speed: 1\n    spawn_ms: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(broken); err == nil || !strings.Contains(err.Error(), "empty word pool") {
		t.Errorf("invalid catalog should fail fast, got %v", err)
	}

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom catalog should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, src, err := Load("")
	if err != nil || src != SourceEmbedded {
		t.Fatalf("expected embedded catalog, got %q (%v)", src, err)
	}

	dir := filepath.Join(home, ".defender", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "levels.yaml")
	data := "levels:\n  - keys: [a]\n    words: [a]\n    speed: 1\n    spawn_ms: 1\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, src, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src != path || c.Len() != 1 {
		t.Errorf("user catalog should win over embedded, got %q with %d levels", src, c.Len())
	}
}
