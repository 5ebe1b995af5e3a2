package levels

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// SourceEmbedded names the built-in catalog in load results.
const SourceEmbedded = "embedded"

// Default returns the built-in five-level catalog.
func Default() (*Catalog, error) {
	return parse(defaultLevelsYAML, SourceEmbedded)
}

// Load finds and parses the level catalog, reporting where it came from.
// Search order: customPath -> ~/.defender/configs/levels.yaml -> ./configs/levels.yaml -> embedded default.
// A catalog that is found but invalid is an error, never a fallback.
func Load(customPath string) (*Catalog, string, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".defender", "configs", "levels.yaml")
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	local := filepath.Join("configs", "levels.yaml")
	if _, err := os.Stat(local); err == nil {
		return LoadFile(local)
	}

	c, err := Default()
	return c, SourceEmbedded, err
}

// LoadFile parses a single catalog file.
func LoadFile(path string) (*Catalog, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("levels: reading file %s: %w", path, err)
	}
	c, err := parse(data, path)
	if err != nil {
		return nil, "", err
	}
	return c, path, nil
}

func parse(data []byte, source string) (*Catalog, error) {
	parsed, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing %s: %w", source, err)
	}
	c, err := NewCatalog(parsed)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, source)
	}
	return c, nil
}
