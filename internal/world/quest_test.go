package world

import (
	"context"
	"reflect"
	"testing"

	"github.com/samdwyer/pixelsaga/internal/catalog"
)

func TestGenerateQuestReproducibility(t *testing.T) {
	cat := catalog.MustLoad()
	ctx := context.Background()

	q1 := GenerateQuest(ctx, cat, "fantasy", "small", 12345)
	q2 := GenerateQuest(ctx, cat, "fantasy", "small", 12345)

	if !reflect.DeepEqual(q1, q2) {
		t.Fatal("Same (theme, size, seed) produced different quests")
	}
	if q1.Title == "" || q1.Location == "" {
		t.Error("Quest is missing a title or location")
	}
}

func TestGenerateQuestStepCount(t *testing.T) {
	cat := catalog.MustLoad()
	ctx := context.Background()

	tests := []struct {
		size  string
		steps int
	}{
		{"small", 3},
		{"medium", 4},
		{"large", 5},
		{"bogus", 3}, // falls back to small
	}

	for _, tt := range tests {
		q := GenerateQuest(ctx, cat, "sci-fi", tt.size, 7)
		if len(q.Steps) != tt.steps {
			t.Errorf("Size %q: %d steps, want %d", tt.size, len(q.Steps), tt.steps)
		}
	}
}

func TestGenerateQuestStepOrdering(t *testing.T) {
	cat := catalog.MustLoad()
	ctx := context.Background()

	q := GenerateQuest(ctx, cat, "cyberpunk", "large", 321)

	for i, step := range q.Steps {
		if step.Position != i {
			t.Errorf("Step %d has position %d", i, step.Position)
		}
		if step.Label == "" || step.Icon == "" {
			t.Errorf("Step %d is missing a label or icon", i)
		}
	}

	// Intermediate beats are drawn without replacement.
	seen := map[string]bool{}
	for _, step := range q.Steps[:len(q.Steps)-1] {
		if seen[step.Label] {
			t.Errorf("Duplicate intermediate step %q", step.Label)
		}
		seen[step.Label] = true
	}
}

func TestGenerateQuestEndsOnClimax(t *testing.T) {
	cat := catalog.MustLoad()
	ctx := context.Background()

	for _, theme := range []string{"fantasy", "sci-fi", "post-apoc", "cyberpunk"} {
		themeDef := cat.Theme(theme)
		for s := int64(1); s <= 20; s++ {
			q := GenerateQuest(ctx, cat, theme, "medium", s)

			last := q.Steps[len(q.Steps)-1]
			if last.Icon != climaxIcon {
				t.Errorf("%s seed %d: final step icon %q, want %q", theme, s, last.Icon, climaxIcon)
			}

			found := false
			for _, climax := range themeDef.Quest.Climaxes {
				if expandLocation(climax, q.Location) == last.Label {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s seed %d: final step %q is not from the climax table", theme, s, last.Label)
			}
		}
	}
}

func TestGenerateQuestDifficultyLabel(t *testing.T) {
	cat := catalog.MustLoad()
	ctx := context.Background()

	valid := map[string]bool{}
	for _, d := range catalog.QuestDifficulties {
		valid[d] = true
	}

	for s := int64(1); s <= 50; s++ {
		q := GenerateQuest(ctx, cat, "post-apoc", "large", s)
		if !valid[q.Difficulty] {
			t.Errorf("Seed %d: difficulty %q not in the label set", s, q.Difficulty)
		}
	}
}

func TestGenerateQuestThemeFallback(t *testing.T) {
	cat := catalog.MustLoad()
	ctx := context.Background()

	unknown := GenerateQuest(ctx, cat, "not-a-real-theme", "small", 42)
	fallback := GenerateQuest(ctx, cat, catalog.DefaultTheme, "small", 42)

	if !reflect.DeepEqual(unknown, fallback) {
		t.Error("Unknown theme should replay identically to the default theme")
	}
}

func TestGenerateQuestFixtureScenario(t *testing.T) {
	// Companion anchor to the map fixture: (12345, fantasy, small) always
	// yields the same title.
	cat := catalog.MustLoad()
	ctx := context.Background()

	q1 := GenerateQuest(ctx, cat, "fantasy", "small", 12345)
	q2 := GenerateQuest(ctx, cat, "fantasy", "small", 12345)

	if q1.Title != q2.Title {
		t.Errorf("Quest title not stable: %q != %q", q1.Title, q2.Title)
	}
}
