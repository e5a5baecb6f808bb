package world

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pixelsaga/data"
	"github.com/samdwyer/pixelsaga/internal/catalog"
	"github.com/samdwyer/pixelsaga/internal/seed"
	"github.com/samdwyer/pixelsaga/internal/telemetry"
)

// Power and value modifier bounds for the asset forge. Out-of-range caller
// values are clamped, never rejected.
const (
	MinPower    = 1
	MaxPower    = 10
	MinValueMod = 1.0
	MaxValueMod = 10.0
)

// GenerateAsset forges one item record for the given theme and seed.
//
// The forge is a hybrid: caller-chosen attributes in opts take precedence,
// and only attributes left unset are drawn from the stream. Draws happen in
// a fixed order — type, material, enhancement, rarity, power, then exactly
// one name-template tie-break — so explicit attributes never shift the
// draws of the remaining ones relative to a replay with the same gaps.
//
// Value is computed, never drawn: identical explicit attributes yield an
// identical value regardless of seed.
func GenerateAsset(ctx context.Context, cat *catalog.Catalog, theme, size string, seedVal int64, opts AssetOptions) AssetResult {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "asset.generate")
	defer span.End()

	themeDef := cat.Theme(theme)
	spec := cat.Size(size)
	stream := seed.NewStream(seed.Derive(seedVal, "asset|"+themeDef.ID+"|"+spec.ID))

	var typeDef *data.AssetTypeDef
	if opts.Type != "" {
		typeDef = cat.AssetType(opts.Type)
	} else {
		types := cat.AssetTypes()
		typeDef = &types[stream.IntN(len(types))]
	}

	var material string
	if opts.Material != "" {
		material = cat.Material(themeDef, opts.Material)
	} else {
		material = themeDef.Materials[stream.IntN(len(themeDef.Materials))]
	}

	var enh *data.EnhancementDef
	if opts.Enhancement != "" {
		enh = cat.Enhancement(opts.Enhancement)
	} else {
		enhancements := cat.Enhancements()
		enh = &enhancements[stream.IntN(len(enhancements))]
	}

	var rarity *data.RarityDef
	if opts.Rarity != "" {
		rarity = cat.Rarity(opts.Rarity)
	} else {
		rarity = cat.PickRarity(stream)
	}

	power := opts.Power
	if power == 0 {
		power = stream.IntBetween(MinPower, MaxPower)
	} else {
		power = clampInt(power, MinPower, MaxPower)
	}

	valueMod := opts.ValueMod
	if valueMod == 0 {
		valueMod = 1.0
	} else {
		valueMod = clampFloat(valueMod, MinValueMod, MaxValueMod)
	}

	name := forgeName(cat, typeDef, material, enh, rarity, stream)

	bonus := enh.Bonus[typeDef.ID]

	value := typeDef.BaseValue * rarity.Multiplier * enh.Multiplier * (1 + float64(power)/10) * valueMod
	value = math.Round(value*100) / 100

	flavor := fmt.Sprintf("A %s %s crafted from %s. %s",
		strings.ToLower(rarity.Name), strings.ToLower(typeDef.Name), strings.ToLower(material), enh.Flavor)

	span.SetAttributes(
		attribute.String("asset.theme", themeDef.ID),
		attribute.Int64("asset.seed", seedVal),
		attribute.String("asset.type", typeDef.ID),
		attribute.String("asset.rarity", rarity.ID),
		attribute.Float64("asset.value", value),
	)

	return AssetResult{
		Name:        name,
		Type:        typeDef.Name,
		Material:    material,
		Enhancement: enh.ID,
		Rarity:      rarity.Name,
		Bonus:       bonus,
		Value:       value,
		Power:       power,
		Flavor:      flavor,
		Theme:       themeDef.ID,
		Seed:        seedVal,
	}
}

// forgeName assembles the item name from a template. Templates referencing
// enhancement text only apply when an enhancement is present; one tie-break
// draw is always consumed so the template family depends on the draw alone.
func forgeName(cat *catalog.Catalog, typeDef *data.AssetTypeDef, material string, enh *data.EnhancementDef, rarity *data.RarityDef, stream *seed.Stream) string {
	applicable := make([]string, 0, len(cat.NameTemplates()))
	for _, tmpl := range cat.NameTemplates() {
		if enh.ID == "none" && (strings.Contains(tmpl, "{epithet}") || strings.Contains(tmpl, "{enhancement}")) {
			continue
		}
		applicable = append(applicable, tmpl)
	}

	tmpl := applicable[stream.IntN(len(applicable))]

	r := strings.NewReplacer(
		"{rarity}", rarity.Name,
		"{material}", material,
		"{type}", typeDef.Name,
		"{epithet}", enh.Epithet,
		"{enhancement}", enh.Name,
	)
	return strings.TrimSpace(r.Replace(tmpl))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
