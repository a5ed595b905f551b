// Command raycastdemo plays a single .raylevel file through an Ebitengine
// window, rendering with raycaster and letting WASD + arrow keys move and
// turn the camera.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ovk-raycaster-go/raygo/internal/assetload"
)

func main() {
	var (
		levelPath = flag.String("level", "", "path to a .raylevel JSON file")
		width     = flag.Int("width", 960, "window width")
		height    = flag.Int("height", 540, "window height")
		fov       = flag.Float64("fov", 1.0, "camera aspect ratio (the camera plane length is half of it)")
		showHUD   = flag.Bool("hud", true, "draw the position/FPS debug overlay")
	)
	flag.Parse()

	if *levelPath == "" {
		log.Fatal("raycastdemo: -level is required")
	}

	lvl, err := assetload.LoadLevel(*levelPath)
	if err != nil {
		log.Fatalf("raycastdemo: load level: %v", err)
	}

	game, err := NewGame(lvl, *width, *height, *fov, *showHUD)
	if err != nil {
		log.Fatalf("raycastdemo: init game: %v", err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("raycastdemo — " + *levelPath)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
