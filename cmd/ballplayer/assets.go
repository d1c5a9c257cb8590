package main

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"log"
	"os"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ballplayer/config"
)

//go:embed assets/sprites/*.png
var assetsFS embed.FS

// loadSprites resolves the sprite names in cfg, first against the embedded assets and
// then against the file system. Sprites that cannot be loaded are left out; the
// renderer draws a plain circle for them instead.
func loadSprites(cfg *config.Config) map[string]*ebiten.Image {
	sprites := make(map[string]*ebiten.Image)
	for _, name := range []string{cfg.Sprites.Player, cfg.Sprites.Enemy} {
		if name == "" {
			continue
		}
		if _, ok := sprites[name]; ok {
			continue
		}

		img, err := loadImage(name)
		if err != nil {
			log.Printf("sprite %s: %v", name, err)
			continue
		}
		sprites[name] = img
	}
	return sprites
}

func loadImage(name string) (*ebiten.Image, error) {
	b, err := assetsFS.ReadFile(path.Join("assets", name))
	if err != nil {
		b, err = os.ReadFile(name)
		if err != nil {
			return nil, err
		}
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}
