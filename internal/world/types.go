// Package world provides the deterministic map, quest and asset generators.
//
// Every generator is a pure function of (theme, size, seed): it resolves its
// vocabulary from the immutable catalog, expands the seed into a private
// random stream, and consumes draws in a fixed documented order. Two calls
// with the same inputs always return field-for-field identical records.
package world

// Tile is one map grid cell.
type Tile struct {
	Name       string   `json:"name"`
	Symbol     string   `json:"symbol"`
	Class      string   `json:"class"`
	Difficulty int      `json:"difficulty"`
	Resources  []string `json:"resources"`
	Flavor     string   `json:"flavor"`
}

// MapResult is a generated map grid in row-major order.
type MapResult struct {
	Theme       string `json:"theme"`
	Size        string `json:"size"`
	Seed        int64  `json:"seed"`
	GridColumns int    `json:"grid_columns"`
	Rows        int    `json:"rows"`
	Tiles       []Tile `json:"tiles"`
}

// QuestStep is one ordered narrative beat.
type QuestStep struct {
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Position int    `json:"position"`
}

// QuestResult is a generated quest outline.
type QuestResult struct {
	Title      string      `json:"title"`
	Location   string      `json:"location"`
	Difficulty string      `json:"difficulty"`
	Theme      string      `json:"theme"`
	Size       string      `json:"size"`
	Seed       int64       `json:"seed"`
	Steps      []QuestStep `json:"steps"`
}

// AssetOptions carries caller-chosen overrides for the asset forge. Zero
// values mean "unset": empty strings are drawn from the theme tables, a zero
// Power is drawn, and a zero ValueMod defaults to 1.
type AssetOptions struct {
	Type        string
	Material    string
	Enhancement string
	Rarity      string
	Power       int
	ValueMod    float64
}

// AssetResult is one forged item record.
type AssetResult struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Material    string  `json:"material"`
	Enhancement string  `json:"enhancement"`
	Rarity      string  `json:"rarity"`
	Bonus       string  `json:"bonus"`
	Value       float64 `json:"value"`
	Power       int     `json:"power"`
	Flavor      string  `json:"flavor"`
	Theme       string  `json:"theme"`
	Seed        int64   `json:"seed"`
}
