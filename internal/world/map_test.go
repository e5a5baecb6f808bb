package world

import (
	"context"
	"reflect"
	"testing"

	"github.com/samdwyer/pixelsaga/internal/catalog"
)

func TestGenerateMapReproducibility(t *testing.T) {
	cat := catalog.MustLoad()
	ctx := context.Background()

	m1 := GenerateMap(ctx, cat, "fantasy", "small", 12345)
	m2 := GenerateMap(ctx, cat, "fantasy", "small", 12345)

	if !reflect.DeepEqual(m1, m2) {
		t.Fatal("Same (theme, size, seed) produced different maps")
	}
	if m1.Tiles[0].Name == "" {
		t.Error("First tile has no name")
	}
}

func TestGenerateMapDifferentSeeds(t *testing.T) {
	cat := catalog.MustLoad()
	ctx := context.Background()

	m1 := GenerateMap(ctx, cat, "fantasy", "small", 12345)
	m2 := GenerateMap(ctx, cat, "fantasy", "small", 54321)

	// With 100 cells, two seeds producing identical grids is effectively
	// impossible.
	if reflect.DeepEqual(m1.Tiles, m2.Tiles) {
		t.Error("Maps with different seeds should not be identical")
	}
}

func TestGenerateMapGridInvariant(t *testing.T) {
	cat := catalog.MustLoad()
	ctx := context.Background()

	tests := []struct {
		size string
		rows int
		cols int
	}{
		{"small", 10, 10},
		{"medium", 15, 15},
		{"large", 20, 20},
		{"unknown-size", 10, 10}, // falls back to small
	}

	for _, tt := range tests {
		m := GenerateMap(ctx, cat, "fantasy", tt.size, 7)
		if m.GridColumns != tt.cols || m.Rows != tt.rows {
			t.Errorf("Size %q: grid %d×%d, want %d×%d", tt.size, m.Rows, m.GridColumns, tt.rows, tt.cols)
		}
		if len(m.Tiles) != tt.rows*tt.cols {
			t.Errorf("Size %q: %d tiles, want %d", tt.size, len(m.Tiles), tt.rows*tt.cols)
		}
	}
}

func TestGenerateMapThemeFallback(t *testing.T) {
	cat := catalog.MustLoad()
	ctx := context.Background()

	unknown := GenerateMap(ctx, cat, "not-a-real-theme", "small", 42)
	fallback := GenerateMap(ctx, cat, catalog.DefaultTheme, "small", 42)

	if !reflect.DeepEqual(unknown, fallback) {
		t.Error("Unknown theme should replay identically to the default theme")
	}
	if unknown.Theme != catalog.DefaultTheme {
		t.Errorf("Returned theme should be the resolved default, got %q", unknown.Theme)
	}
}

func TestGenerateMapTileInvariants(t *testing.T) {
	cat := catalog.MustLoad()
	ctx := context.Background()

	for _, theme := range []string{"fantasy", "sci-fi", "post-apoc", "cyberpunk"} {
		m := GenerateMap(ctx, cat, theme, "medium", 99)

		for i, tile := range m.Tiles {
			if len(tile.Symbol) != 1 {
				t.Errorf("%s tile %d: symbol %q is not a single character", theme, i, tile.Symbol)
			}
			if tile.Difficulty < 1 || tile.Difficulty > 5 {
				t.Errorf("%s tile %d: difficulty %d out of range", theme, i, tile.Difficulty)
			}
			if len(tile.Resources) > maxResourceTags {
				t.Errorf("%s tile %d: %d resource tags, max is %d", theme, i, len(tile.Resources), maxResourceTags)
			}
			seen := map[string]bool{}
			for _, r := range tile.Resources {
				if seen[r] {
					t.Errorf("%s tile %d: duplicate resource %q", theme, i, r)
				}
				seen[r] = true
			}
			if tile.Flavor == "" {
				t.Errorf("%s tile %d: empty flavor", theme, i)
			}
		}
	}
}

func TestGenerateMapFixtureScenario(t *testing.T) {
	// The (12345, fantasy, small) pair is the regression anchor: it must
	// replay identically on every run, and its first tile must come from
	// the fantasy palette.
	cat := catalog.MustLoad()
	ctx := context.Background()

	m1 := GenerateMap(ctx, cat, "fantasy", "small", 12345)
	m2 := GenerateMap(ctx, cat, "fantasy", "small", 12345)

	if m1.Tiles[0].Name != m2.Tiles[0].Name {
		t.Errorf("First tile name not stable: %q != %q", m1.Tiles[0].Name, m2.Tiles[0].Name)
	}

	names := map[string]bool{}
	for _, def := range cat.Theme("fantasy").Tiles {
		names[def.Name] = true
	}
	if !names[m1.Tiles[0].Name] {
		t.Errorf("First tile %q is not in the fantasy palette", m1.Tiles[0].Name)
	}
}
