package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/driftwall/assets/icon"
	"github.com/depeter/driftwall/internal/app"
	"github.com/depeter/driftwall/internal/cache"
	"github.com/depeter/driftwall/internal/config"
	"github.com/depeter/driftwall/internal/content"
	"github.com/depeter/driftwall/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	cacheDir := filepath.Join(os.TempDir(), "driftwall", "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cacheDir)
	if err != nil {
		log.Fatalf("Failed to init image cache: %v", err)
	}

	items, err := content.Load(cfg.Feed.Path, cfg.Feed.URL)
	if err != nil {
		log.Fatalf("Failed to load feed: %v", err)
	}
	if len(items) == 0 {
		log.Printf("Feed is empty; the wall will be blank")
	}

	game, err := app.NewGame(cfg, items, imgCache)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("driftwall")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.UI.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
