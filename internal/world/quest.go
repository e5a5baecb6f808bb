package world

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pixelsaga/internal/catalog"
	"github.com/samdwyer/pixelsaga/internal/seed"
	"github.com/samdwyer/pixelsaga/internal/telemetry"
)

// modifierChance is the probability a quest title gains a modifier fragment.
const modifierChance = 0.4

// stepIcons is the fixed rotation for intermediate quest steps. The final
// step always gets climaxIcon. Icons are assigned by position, not drawn.
var stepIcons = []string{"🧭", "🎯", "📦", "🗺️", "⚔️"}

const climaxIcon = "🏁"

// GenerateQuest builds a deterministic quest outline for the given theme
// and size.
//
// Draw order on the quest stream is fixed: title, modifier presence,
// modifier (when present), location, difficulty, one action per intermediate
// step, climax. Intermediate actions are drawn without replacement so a
// quest never repeats a beat.
func GenerateQuest(ctx context.Context, cat *catalog.Catalog, theme, size string, seedVal int64) QuestResult {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "quest.generate")
	defer span.End()

	themeDef := cat.Theme(theme)
	spec := cat.Size(size)
	vocab := themeDef.Quest
	stream := seed.NewStream(seed.Derive(seedVal, "quest|"+themeDef.ID+"|"+spec.ID))

	title := vocab.Titles[stream.IntN(len(vocab.Titles))]
	if stream.Chance(modifierChance) {
		title += " " + vocab.Modifiers[stream.IntN(len(vocab.Modifiers))]
	}

	location := vocab.Locations[stream.IntN(len(vocab.Locations))]
	difficulty := catalog.QuestDifficulties[stream.WeightedIndex(spec.DifficultyWeights)]

	steps := make([]QuestStep, 0, spec.QuestSteps)
	pool := append([]string(nil), vocab.Actions...)
	for i := 0; i < spec.QuestSteps-1; i++ {
		idx := stream.IntN(len(pool))
		label := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		steps = append(steps, QuestStep{
			Label:    expandLocation(label, location),
			Icon:     stepIcons[i%len(stepIcons)],
			Position: i,
		})
	}

	climax := vocab.Climaxes[stream.IntN(len(vocab.Climaxes))]
	steps = append(steps, QuestStep{
		Label:    expandLocation(climax, location),
		Icon:     climaxIcon,
		Position: spec.QuestSteps - 1,
	})

	span.SetAttributes(
		attribute.String("quest.theme", themeDef.ID),
		attribute.String("quest.size", spec.ID),
		attribute.Int64("quest.seed", seedVal),
		attribute.String("quest.difficulty", difficulty),
		attribute.Int("quest.steps", len(steps)),
	)

	return QuestResult{
		Title:      title,
		Location:   location,
		Difficulty: difficulty,
		Theme:      themeDef.ID,
		Size:       spec.ID,
		Seed:       seedVal,
		Steps:      steps,
	}
}

// expandLocation substitutes the quest location into a step template.
func expandLocation(template, location string) string {
	return strings.ReplaceAll(template, "{location}", location)
}
