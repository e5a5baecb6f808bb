package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pixelsaga/internal/catalog"
	"github.com/samdwyer/pixelsaga/internal/seed"
	"github.com/samdwyer/pixelsaga/internal/telemetry"
)

// maxResourceTags bounds how many resource tags a single tile can roll.
const maxResourceTags = 2

// GenerateMap builds a deterministic tile grid for the given theme and size.
//
// Unknown theme and size keys fall back to the catalog defaults before any
// draw is consumed, so an unknown theme replays identically to the default
// theme. Per cell the draw order is fixed: tile type, difficulty, resource
// count, resource picks, flavor. Changing this order changes every replay,
// so it must not be reordered.
func GenerateMap(ctx context.Context, cat *catalog.Catalog, theme, size string, seedVal int64) MapResult {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	themeDef := cat.Theme(theme)
	spec := cat.Size(size)
	stream := seed.NewStream(seed.Derive(seedVal, "map|"+themeDef.ID+"|"+spec.ID))

	tiles := make([]Tile, 0, spec.Rows*spec.Columns)
	for i := 0; i < spec.Rows*spec.Columns; i++ {
		def := cat.PickTile(themeDef, stream)

		difficulty := stream.IntBetween(def.DifficultyMin, def.DifficultyMax)

		resources := make([]string, 0, maxResourceTags)
		count := stream.IntN(maxResourceTags + 1)
		for j := 0; j < count; j++ {
			tag := def.Resources[stream.IntN(len(def.Resources))]
			if !contains(resources, tag) {
				resources = append(resources, tag)
			}
		}

		flavor := def.Flavors[stream.IntN(len(def.Flavors))]

		tiles = append(tiles, Tile{
			Name:       def.Name,
			Symbol:     def.Symbol,
			Class:      def.Class,
			Difficulty: difficulty,
			Resources:  resources,
			Flavor:     flavor,
		})
	}

	span.SetAttributes(
		attribute.String("map.theme", themeDef.ID),
		attribute.String("map.size", spec.ID),
		attribute.Int64("map.seed", seedVal),
		attribute.Int("map.tile_count", len(tiles)),
	)

	return MapResult{
		Theme:       themeDef.ID,
		Size:        spec.ID,
		Seed:        seedVal,
		GridColumns: spec.Columns,
		Rows:        spec.Rows,
		Tiles:       tiles,
	}
}

// contains reports whether s is already in list. Resource pools hold at most
// a handful of entries, so a linear scan is fine.
func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
