// Package main is the terminal map previewer for PixelSaga.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/samdwyer/pixelsaga/internal/catalog"
	"github.com/samdwyer/pixelsaga/internal/seed"
	"github.com/samdwyer/pixelsaga/internal/view"
)

func main() {
	theme := flag.String("theme", catalog.DefaultTheme, "theme to preview")
	size := flag.String("size", catalog.DefaultSize, "grid size (small, medium, large)")
	seedFlag := flag.String("seed", "", "seed text; empty draws a fresh seed")
	flag.Parse()

	cat := catalog.MustLoad()
	seedVal := seed.Normalize(*seedFlag)

	v, err := view.New(cat, *theme, *size, seedVal)
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	if err := v.Run(context.Background()); err != nil {
		v.Close()
		log.Fatalf("Viewer error: %v", err)
	}
}
