package level

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog resolves levels per variant. It is read-only after construction.
type Catalog struct {
	byVariant map[Variant][]Level
}

// DefaultCatalog returns the built-in level set.
func DefaultCatalog() *Catalog {
	return newCatalog(defaultLevels)
}

// LoadCatalog reads a level catalog from a JSON file. On any read, parse
// or validation problem it falls back to the built-in defaults; a missing
// or broken catalog is a recoverable configuration state, not an error.
func LoadCatalog(path string) *Catalog {
	if path == "" {
		return DefaultCatalog()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return DefaultCatalog()
	}
	var levels []Level
	if err := json.Unmarshal(raw, &levels); err != nil {
		return DefaultCatalog()
	}
	for _, l := range levels {
		if err := validate(l); err != nil {
			return DefaultCatalog()
		}
	}
	c := newCatalog(levels)
	// Every variant must remain playable.
	for _, v := range Variants {
		if len(c.byVariant[v]) == 0 {
			return DefaultCatalog()
		}
	}
	return c
}

func newCatalog(levels []Level) *Catalog {
	m := make(map[Variant][]Level)
	for _, l := range levels {
		m[l.Variant] = append(m[l.Variant], l)
	}
	return &Catalog{byVariant: m}
}

func validate(l Level) error {
	if l.ID == "" {
		return fmt.Errorf("level missing id")
	}
	if _, err := ParseVariant(string(l.Variant)); err != nil {
		return err
	}
	if l.Speed <= 0 {
		return fmt.Errorf("level %s: speed must be positive", l.ID)
	}
	if l.ObstacleCount < 0 {
		return fmt.Errorf("level %s: obstacle count must not be negative", l.ID)
	}
	if l.TimeLimitSecs <= 0 {
		return fmt.Errorf("level %s: time limit must be positive", l.ID)
	}
	return nil
}

// Levels returns the ordered level list for a variant.
func (c *Catalog) Levels(v Variant) []Level {
	return c.byVariant[v]
}

// Get returns the level with the given id for a variant.
func (c *Catalog) Get(v Variant, id string) (Level, error) {
	for _, l := range c.byVariant[v] {
		if l.ID == id {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("level %s/%s not found", v, id)
}

// ByDifficulty returns the variant's level at the given difficulty,
// falling back to the first level when none matches.
func (c *Catalog) ByDifficulty(v Variant, d Difficulty) (Level, error) {
	levels := c.byVariant[v]
	if len(levels) == 0 {
		return Level{}, fmt.Errorf("no levels for variant %s", v)
	}
	for _, l := range levels {
		if l.Difficulty == d {
			return l, nil
		}
	}
	return levels[0], nil
}
