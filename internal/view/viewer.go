package view

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pixelsaga/internal/catalog"
	"github.com/samdwyer/pixelsaga/internal/seed"
	"github.com/samdwyer/pixelsaga/internal/world"
)

// Viewer renders a generated map grid and lets the user inspect tiles with a
// movable cursor. Pressing 'r' regenerates the grid under a fresh seed.
type Viewer struct {
	screen  *Screen
	catalog *catalog.Catalog

	theme   string
	size    string
	seedVal int64

	result  world.MapResult
	colors  map[string]tcell.Color
	cursorX int
	cursorY int
	running bool
}

// New creates a viewer for the given theme, size and seed.
func New(cat *catalog.Catalog, theme, size string, seedVal int64) (*Viewer, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}

	return &Viewer{
		screen:  screen,
		catalog: cat,
		theme:   theme,
		size:    size,
		seedVal: seedVal,
		running: true,
	}, nil
}

// Run executes the preview loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	v.regenerate(ctx, v.seedVal)

	for v.running {
		v.render()
		v.handleInput(ctx)
	}

	v.screen.Close()
	return nil
}

// Close cleans up the terminal state.
func (v *Viewer) Close() {
	if v.screen != nil {
		v.screen.Close()
	}
}

// regenerate produces the grid for the given seed and rebuilds the symbol
// color table from the resolved theme's palette.
func (v *Viewer) regenerate(ctx context.Context, seedVal int64) {
	v.seedVal = seedVal
	v.result = world.GenerateMap(ctx, v.catalog, v.theme, v.size, seedVal)

	themeDef := v.catalog.Theme(v.result.Theme)
	v.colors = make(map[string]tcell.Color, len(themeDef.Tiles))
	for i := range themeDef.Tiles {
		v.colors[themeDef.Tiles[i].Symbol] = themeDef.Tiles[i].TCellColor()
	}

	v.cursorX = 0
	v.cursorY = 0
}

// render draws the grid, the cursor and the status lines.
func (v *Viewer) render() {
	v.screen.Clear()

	for y := 0; y < v.result.Rows; y++ {
		for x := 0; x < v.result.GridColumns; x++ {
			tile := v.tileAt(x, y)
			style := tcell.StyleDefault.Foreground(v.colors[tile.Symbol])
			if x == v.cursorX && y == v.cursorY {
				style = style.Reverse(true).Bold(true)
			}
			v.screen.SetContent(x, y, symbolRune(tile.Symbol), style)
		}
	}

	header := fmt.Sprintf("%s / %s · seed %d", v.result.Theme, v.result.Size, v.result.Seed)
	v.renderMessage(header, v.result.Rows+1)

	tile := v.tileAt(v.cursorX, v.cursorY)
	detail := fmt.Sprintf("%s (difficulty %d) — %s", tile.Name, tile.Difficulty, tile.Flavor)
	v.renderMessage(detail, v.result.Rows+2)

	v.renderMessage("arrows: move · r: reroll · q: quit", v.result.Rows+4)

	v.screen.Show()
}

// renderMessage displays a message at the given row.
func (v *Viewer) renderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	i := 0
	for _, ch := range msg {
		v.screen.SetContent(i, y, ch, style)
		i++
	}
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.moveCursor(0, -1)
	case tcell.KeyDown:
		v.moveCursor(0, 1)
	case tcell.KeyLeft:
		v.moveCursor(-1, 0)
	case tcell.KeyRight:
		v.moveCursor(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'r', 'R':
			v.regenerate(ctx, seed.New())
		}
	}
}

// moveCursor shifts the cursor by the given delta, clamped to the grid.
func (v *Viewer) moveCursor(dx, dy int) {
	x := v.cursorX + dx
	y := v.cursorY + dy
	if x < 0 || x >= v.result.GridColumns || y < 0 || y >= v.result.Rows {
		return
	}
	v.cursorX = x
	v.cursorY = y
}

// tileAt returns the tile at the given grid position (row-major layout).
func (v *Viewer) tileAt(x, y int) *world.Tile {
	return &v.result.Tiles[y*v.result.GridColumns+x]
}

func symbolRune(symbol string) rune {
	for _, r := range symbol {
		return r
	}
	return ' '
}
