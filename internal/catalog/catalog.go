// Package catalog resolves the embedded theme vocabulary into an immutable
// lookup structure shared by all generators.
//
// The catalog is built once at startup and never mutated afterwards, so any
// number of concurrent generation calls can read it without locking. Unknown
// theme, size and attribute keys are mapped to documented defaults at the
// lookup boundary; lookups never fail.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/pixelsaga/data"
	"github.com/samdwyer/pixelsaga/internal/seed"
)

const (
	// DefaultTheme is the fallback for unknown theme keys.
	DefaultTheme = "fantasy"
	// DefaultSize is the fallback for unknown size keys.
	DefaultSize = "small"
)

// QuestDifficulties is the ordered label set quests draw from.
var QuestDifficulties = []string{"Easy", "Medium", "Hard", "Epic"}

// SizeSpec describes one supported grid/narrative size.
type SizeSpec struct {
	ID                string
	Rows              int
	Columns           int
	QuestSteps        int   // Total steps including the climax
	DifficultyWeights []int // Draw weights over QuestDifficulties
}

// sizes is the fixed size table (100, 225 and 400 cells); larger maps
// weight quest difficulty harder.
var sizes = map[string]SizeSpec{
	"small":  {ID: "small", Rows: 10, Columns: 10, QuestSteps: 3, DifficultyWeights: []int{45, 35, 15, 5}},
	"medium": {ID: "medium", Rows: 15, Columns: 15, QuestSteps: 4, DifficultyWeights: []int{25, 40, 25, 10}},
	"large":  {ID: "large", Rows: 20, Columns: 20, QuestSteps: 5, DifficultyWeights: []int{10, 30, 40, 20}},
}

// Catalog holds the resolved theme tables.
type Catalog struct {
	themes        map[string]*data.ThemeDef
	tileWeights   map[string][]int
	rarities      []data.RarityDef
	rarityWeights []int
	rarityByID    map[string]*data.RarityDef
	assetTypes    []data.AssetTypeDef
	typeByID      map[string]*data.AssetTypeDef
	enhancements  []data.EnhancementDef
	enhByID       map[string]*data.EnhancementDef
	nameTemplates []string
}

// New builds a catalog from a loaded themes file, validating the invariants
// the generators rely on.
func New(file *data.ThemesFile) (*Catalog, error) {
	if len(file.Themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	if len(file.Rarities) == 0 || len(file.AssetTypes) == 0 || len(file.Enhancements) == 0 {
		return nil, errors.New("themes.json is missing forge tables")
	}

	c := &Catalog{
		themes:        make(map[string]*data.ThemeDef, len(file.Themes)),
		tileWeights:   make(map[string][]int, len(file.Themes)),
		rarities:      file.Rarities,
		rarityByID:    make(map[string]*data.RarityDef, len(file.Rarities)),
		assetTypes:    file.AssetTypes,
		typeByID:      make(map[string]*data.AssetTypeDef, len(file.AssetTypes)),
		enhancements:  file.Enhancements,
		enhByID:       make(map[string]*data.EnhancementDef, len(file.Enhancements)),
		nameTemplates: file.NameTemplates,
	}

	for i := range file.Themes {
		theme := &file.Themes[i]
		if len(theme.Tiles) == 0 {
			return nil, fmt.Errorf("theme %q has no tiles", theme.ID)
		}
		if len(theme.Materials) == 0 {
			return nil, fmt.Errorf("theme %q has no materials", theme.ID)
		}
		weights := make([]int, len(theme.Tiles))
		for j, tile := range theme.Tiles {
			if tile.Weight <= 0 {
				return nil, fmt.Errorf("theme %q tile %q has non-positive weight", theme.ID, tile.ID)
			}
			if len(tile.Symbol) != 1 {
				return nil, fmt.Errorf("theme %q tile %q symbol must be a single character", theme.ID, tile.ID)
			}
			if tile.DifficultyMin > tile.DifficultyMax {
				return nil, fmt.Errorf("theme %q tile %q has an inverted difficulty range", theme.ID, tile.ID)
			}
			if len(tile.Flavors) == 0 {
				return nil, fmt.Errorf("theme %q tile %q has no flavor text", theme.ID, tile.ID)
			}
			weights[j] = tile.Weight
		}
		c.themes[theme.ID] = theme
		c.tileWeights[theme.ID] = weights
	}
	if _, ok := c.themes[DefaultTheme]; !ok {
		return nil, fmt.Errorf("default theme %q not present", DefaultTheme)
	}

	c.rarityWeights = make([]int, len(file.Rarities))
	for i := range file.Rarities {
		c.rarityByID[file.Rarities[i].ID] = &file.Rarities[i]
		c.rarityWeights[i] = file.Rarities[i].Weight
	}
	for i := range file.AssetTypes {
		c.typeByID[file.AssetTypes[i].ID] = &file.AssetTypes[i]
	}
	for i := range file.Enhancements {
		c.enhByID[file.Enhancements[i].ID] = &file.Enhancements[i]
	}
	if _, ok := c.enhByID["none"]; !ok {
		return nil, errors.New(`enhancement "none" not present`)
	}
	if len(c.nameTemplates) == 0 {
		return nil, errors.New("no name templates loaded")
	}

	return c, nil
}

// Load builds a catalog from the embedded themes.json.
func Load() (*Catalog, error) {
	file, err := data.LoadThemes()
	if err != nil {
		return nil, err
	}
	return New(file)
}

// MustLoad builds the catalog, panicking on error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// normalizeKey lowercases and trims an enum key from caller input.
func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Theme resolves a theme key, falling back to the default theme.
func (c *Catalog) Theme(key string) *data.ThemeDef {
	if theme, ok := c.themes[normalizeKey(key)]; ok {
		return theme
	}
	return c.themes[DefaultTheme]
}

// Size resolves a size key, falling back to the default size.
func (c *Catalog) Size(key string) SizeSpec {
	if spec, ok := sizes[normalizeKey(key)]; ok {
		return spec
	}
	return sizes[DefaultSize]
}

// PickTile selects a tile definition by weighted draw over the theme's palette.
func (c *Catalog) PickTile(theme *data.ThemeDef, stream *seed.Stream) *data.TileDef {
	idx := stream.WeightedIndex(c.tileWeights[theme.ID])
	return &theme.Tiles[idx]
}

// PickRarity selects a rarity tier by weighted draw, skewed toward common.
func (c *Catalog) PickRarity(stream *seed.Stream) *data.RarityDef {
	return &c.rarities[stream.WeightedIndex(c.rarityWeights)]
}

// Rarity resolves a rarity key, falling back to the first (common) tier.
func (c *Catalog) Rarity(key string) *data.RarityDef {
	if r, ok := c.rarityByID[normalizeKey(key)]; ok {
		return r
	}
	return &c.rarities[0]
}

// AssetType resolves an asset type key, falling back to the first entry.
func (c *Catalog) AssetType(key string) *data.AssetTypeDef {
	if t, ok := c.typeByID[normalizeKey(key)]; ok {
		return t
	}
	return &c.assetTypes[0]
}

// Enhancement resolves an enhancement key, falling back to "none".
func (c *Catalog) Enhancement(key string) *data.EnhancementDef {
	if e, ok := c.enhByID[normalizeKey(key)]; ok {
		return e
	}
	return c.enhByID["none"]
}

// Material resolves a material name within a theme, case-insensitively,
// falling back to the theme's first material.
func (c *Catalog) Material(theme *data.ThemeDef, name string) string {
	want := normalizeKey(name)
	for _, m := range theme.Materials {
		if strings.ToLower(m) == want {
			return m
		}
	}
	return theme.Materials[0]
}

// AssetTypes returns all asset type definitions in table order.
func (c *Catalog) AssetTypes() []data.AssetTypeDef {
	return c.assetTypes
}

// Enhancements returns all enhancement definitions in table order.
func (c *Catalog) Enhancements() []data.EnhancementDef {
	return c.enhancements
}

// NameTemplates returns the forge name templates in table order.
func (c *Catalog) NameTemplates() []string {
	return c.nameTemplates
}
