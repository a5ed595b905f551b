package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	etext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ovk-raycaster-go/raygo/internal/assetload"
	"github.com/ovk-raycaster-go/raygo/raycaster"
)

const (
	moveSpeed   = 3.0 // world units per second
	rotateSpeed = 2.2 // radians per second
)

// Game implements ebiten.Game around a single loaded level, driving the
// raycaster every frame and presenting its frame buffer through an
// ebiten.Image.
type Game struct {
	level  *assetload.Level
	camera *raycaster.Camera
	rc     *raycaster.Raycaster
	fb     *raycaster.FrameBuffer
	screen *ebiten.Image

	hud     bool
	hudFace *etext.GoTextFace

	lastUpdate time.Time
	frameCount int
	fps        float64
}

// NewGame builds a Game sized to width x height, starting the camera at the
// level's first empty cell.
func NewGame(lvl *assetload.Level, width, height int, fov float64, hud bool) (*Game, error) {
	startX, startY := findOpenCell(lvl.Tilemap)

	g := &Game{
		level:      lvl,
		camera:     raycaster.NewCamera(startX, startY, 0, fov),
		fb:         raycaster.NewFrameBuffer(width, height),
		screen:     ebiten.NewImage(width, height),
		hud:        hud,
		lastUpdate: time.Now(),
	}
	g.rc = raycaster.NewRaycaster(g.fb)

	if hud {
		src, err := etext.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("raycastdemo: load HUD font: %w", err)
		}
		g.hudFace = &etext.GoTextFace{Source: src, Size: 14}
	}

	return g, nil
}

func findOpenCell(m *raycaster.Tilemap) (x, y float64) {
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if !m.IsWall(col, row) {
				return float64(col) + 0.5, float64(row) + 0.5
			}
		}
	}
	return 1.5, 1.5
}

// Update advances the camera from keyboard input. The core raycaster never
// sees input state directly; Game is the boundary that translates it into
// plain camera moves.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	var dx, dy, drot float64
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= moveSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += moveSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= moveSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += moveSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		drot -= rotateSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		drot += rotateSpeed * dt
	}

	if dx != 0 || dy != 0 {
		g.camera.MoveLocal(dx, dy)
	}
	if drot != 0 {
		g.camera.Rotate(drot)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}

	g.frameCount++
	if now := time.Now(); now.Sub(g.lastUpdate) >= time.Second {
		g.fps = float64(g.frameCount) / now.Sub(g.lastUpdate).Seconds()
		g.frameCount = 0
		g.lastUpdate = now
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	lvl := g.level
	g.rc.RenderLevels(raycaster.RenderParams{
		Tilemap:        lvl.Tilemap,
		WallTextures:   lvl.WallTextures,
		Billboards:     lvl.Billboards,
		FloorTexture:   lvl.FloorTexture,
		CeilingTexture: lvl.CeilingTexture,
		Light:          lvl.Light,
		Fog:            lvl.Fog,
		Camera:         g.camera,
	}, lvl.ExtraLevels)

	g.screen.WritePixels(g.fb.Data)
	screen.DrawImage(g.screen, nil)

	if g.hud && g.hudFace != nil {
		pos := g.camera.Position
		msg := fmt.Sprintf("pos (%.2f, %.2f)  heading %.2f rad  %.0f fps", pos.X, pos.Y, g.camera.Angle(), g.fps)
		op := &etext.DrawOptions{}
		op.GeoM.Translate(8, 8)
		etext.Draw(screen, msg, g.hudFace, op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}
