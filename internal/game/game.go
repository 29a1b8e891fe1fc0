package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/steverpalmer/first-person-maze/internal/maze"
	"github.com/steverpalmer/first-person-maze/internal/player"
	"github.com/steverpalmer/first-person-maze/internal/view"
)

const (
	updatesPerSecond  = 60
	buildStepsPerTick = 3 // carve speed of the opening animation
)

// Game owns one maze session and drives it through ebiten's update/draw
// loop. The maze is carved on screen first; the player then appears at a
// random pose and navigates until it finds the exit.
type Game struct {
	cfg      Config
	renderer *Renderer
	audio    *AudioManager

	seed    int64
	m       *maze.Maze
	builder *maze.Builder

	state   player.State
	steps   int
	escaped bool

	mode  view.Mode
	scene *view.Scene
	glide *view.Glide

	scale      float64
	fullscreen bool
	quit       bool
}

func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:      cfg,
		renderer: NewRenderer(cfg.AssetsDir),
		audio:    NewAudioManager(cfg.Audio, cfg.AssetsDir),
	}
	if err := g.startMaze(seed); err != nil {
		return nil, err
	}

	// Fit the window inside a fraction of the display.
	nativeW := cfg.MazeWidth * tileSize
	nativeH := cfg.MazeHeight * tileSize
	sw, sh := ebiten.ScreenSizeInFullscreen()
	maxW := float64(sw) * cfg.WindowFit
	maxH := float64(sh) * cfg.WindowFit
	g.scale = math.Min(maxW/float64(nativeW), maxH/float64(nativeH))
	if g.scale <= 0 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1.0
	}
	return g, nil
}

// startMaze begins a fresh session: new maze, carve animation from the
// top, player state reset.
func (g *Game) startMaze(seed int64) error {
	m, err := maze.New(g.cfg.MazeWidth, g.cfg.MazeHeight, seed)
	if err != nil {
		return err
	}
	g.seed = seed
	g.m = m
	g.builder = m.Builder()
	g.scene = nil
	g.state = player.State{}
	g.glide = nil
	g.steps = 0
	g.escaped = false
	return nil
}

// building reports whether the carve animation is still running.
func (g *Game) building() bool { return g.builder != nil }

// finishBuild places the player and prepares the shaded scene.
func (g *Game) finishBuild() {
	g.builder = nil
	g.state = player.Start(g.m)
	g.glide = view.NewGlide(g.state)
	g.scene = view.BuildScene(g.m)
}

func (g *Game) ScreenWidth() int {
	return int(float64(g.cfg.MazeWidth*tileSize) * g.scale)
}

func (g *Game) ScreenHeight() int {
	return int(float64(g.cfg.MazeHeight*tileSize) * g.scale)
}

func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}
	if g.building() {
		for i := 0; i < buildStepsPerTick && g.builder.Step(); i++ {
		}
		if g.builder.Done() {
			g.finishBuild()
		}
		return nil
	}
	g.glide.Advance(1.0 / updatesPerSecond)
	return nil
}

// apply runs one navigation command through the pure transition function
// and reacts to what changed.
func (g *Game) apply(cmd player.Command) {
	if g.building() || g.escaped {
		return
	}
	prev := g.state
	g.state = player.Apply(g.m, g.state, cmd)
	if cmd == player.Forward || cmd == player.Backward {
		// Attempts count, not just successful moves.
		g.steps++
		if g.state == prev {
			g.audio.PlayBump()
			return
		}
	}
	g.audio.PlayStep()
	g.glide.Retarget(g.state)
	if player.Escaped(g.m, g.state) {
		g.escaped = true
		g.audio.PlayWin()
	}
}

func (g *Game) nextMaze() {
	seed := g.seed + 1
	if g.cfg.Seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Dimensions were validated at startup; a fresh maze cannot fail.
	_ = g.startMaze(seed)
}

func (g *Game) Draw(screen *ebiten.Image) {
	mode := g.mode
	if g.building() {
		// The carve is a plan-view animation regardless of the active mode.
		mode = view.Plan
	}
	switch mode {
	case view.Plan:
		g.renderer.DrawPlan(screen, g.planSprites(), g.m.Width(), g.m.Height())
	case view.Tunnel:
		lines := view.TunnelLines(g.m, g.state, screen.Bounds().Dx(), screen.Bounds().Dy())
		g.renderer.DrawLines(screen, lines)
	case view.Shaded:
		g.renderer.DrawShaded(screen, g.scene, g.glide.Current())
	}
	g.drawHUD(screen)
}

// planSprites lays out the top-down view. During the build animation the
// carve cursor stands in for the player marker.
func (g *Game) planSprites() []view.Sprite {
	sprites := view.PlanSprites(g.m, g.state, !g.building() && !g.escaped)
	if g.building() && g.m.InBounds(g.builder.Pos()) {
		sprites = append(sprites, view.CarveCursor(g.builder.Pos()))
	}
	return sprites
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	switch {
	case g.building():
		text.Draw(screen, "carving...", basicfont.Face7x13, 4, 12, color.White)
	case g.escaped:
		msg := fmt.Sprintf("You found the exit in %d steps!  N: new maze  Q: quit", g.steps)
		mw := len(msg) * 7 // basicfont.Face7x13 is roughly 7 pixels per character
		text.Draw(screen, msg, basicfont.Face7x13, (w-mw)/2, h/2, color.RGBA{R: 255, G: 215, B: 0, A: 255})
	default:
		hud := fmt.Sprintf("%s view  Steps: %d  Maze: %dx%d  FPS: %0.0f",
			g.mode, g.steps, g.m.Width(), g.m.Height(), ebiten.ActualFPS())
		text.Draw(screen, hud, basicfont.Face7x13, 4, 12, color.White)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth(), g.ScreenHeight()
}
