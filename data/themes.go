package data

import "github.com/gdamore/tcell/v2"

// TileDef defines one tile type in a theme's palette, loaded from JSON.
type TileDef struct {
	ID            string   `json:"id"`            // Unique identifier within the theme (e.g., "grass")
	Name          string   `json:"name"`          // Display name (e.g., "Grass")
	Symbol        string   `json:"symbol"`        // Single character for rendering (e.g., "G")
	Class         string   `json:"class"`         // Style hook for callers (e.g., "fantasy-grass")
	Color         string   `json:"color"`         // Hex color code (e.g., "#3CB043")
	Weight        int      `json:"weight"`        // Relative selection frequency (higher = more common)
	DifficultyMin int      `json:"difficultyMin"` // Lowest difficulty this tile can roll
	DifficultyMax int      `json:"difficultyMax"` // Highest difficulty this tile can roll
	Resources     []string `json:"resources"`     // Pool of resource tags drawn per tile
	Flavors       []string `json:"flavors"`       // Flavor text variants, one drawn per tile
}

// SymbolRune returns the symbol as a rune for rendering.
func (t *TileDef) SymbolRune() rune {
	if len(t.Symbol) == 0 {
		return '?'
	}
	return rune(t.Symbol[0])
}

// TCellColor returns the color as a tcell.Color.
func (t *TileDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// QuestVocab holds the narrative tables for one theme.
type QuestVocab struct {
	Titles    []string `json:"titles"`    // Quest title stems
	Modifiers []string `json:"modifiers"` // Optional title fragments
	Locations []string `json:"locations"` // Quest locations
	Actions   []string `json:"actions"`   // Intermediate step templates
	Climaxes  []string `json:"climaxes"`  // Final step templates (resolution beats)
}

// ThemeDef defines a complete theme: tile palette, quest vocabulary and
// forge materials.
type ThemeDef struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Tiles     []TileDef  `json:"tiles"`
	Quest     QuestVocab `json:"quest"`
	Materials []string   `json:"materials"` // Forge materials, first entry is the default
}

// RarityDef defines an asset rarity tier.
type RarityDef struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Weight     int     `json:"weight"`     // Draw weight, skewed toward common
	Multiplier float64 `json:"multiplier"` // Value multiplier for this tier
}

// AssetTypeDef defines a forgeable asset category.
type AssetTypeDef struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BaseValue float64 `json:"baseValue"` // Base value before multipliers
}

// EnhancementDef defines an asset enhancement and its derived text.
type EnhancementDef struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`       // Adjective used in generated names (e.g., "Blazing")
	Epithet    string            `json:"epithet"`    // Name suffix (e.g., "of Flames")
	Flavor     string            `json:"flavor"`     // Flavor flourish appended to descriptions
	Multiplier float64           `json:"multiplier"` // Value multiplier
	Bonus      map[string]string `json:"bonus"`      // Bonus text keyed by asset type ID
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes        []ThemeDef       `json:"themes"`
	Rarities      []RarityDef      `json:"rarities"`
	AssetTypes    []AssetTypeDef   `json:"assetTypes"`
	Enhancements  []EnhancementDef `json:"enhancements"`
	NameTemplates []string         `json:"nameTemplates"`
}

// LoadThemes loads the theme catalog from the embedded themes.json file.
func LoadThemes() (*ThemesFile, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// MustLoadThemes loads the theme catalog, panicking on error.
func MustLoadThemes() *ThemesFile {
	themes, err := LoadThemes()
	if err != nil {
		panic(err)
	}
	return themes
}
