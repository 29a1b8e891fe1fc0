package game

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/steverpalmer/first-person-maze/internal/view"
)

const (
	texSize  = 64 // synthesized texture edge, pixels
	tileSize = 24 // plan-view atlas tile edge, pixels
	wallPx   = 3  // plan-view wall stroke, pixels
)

// Textures owns every image the renderer samples: the three shaded-view
// textures and the two plan-view atlases. Real images are loaded from the
// assets directory when present (hedge.png, gravel.png, exit.png, .jpg also
// accepted); anything missing is synthesized, so the game always starts.
type Textures struct {
	byID   map[view.TextureID]*ebiten.Image
	rooms  [16]*ebiten.Image
	player [4]*ebiten.Image
}

func NewTextures(assetsDir string) *Textures {
	t := &Textures{byID: map[view.TextureID]*ebiten.Image{}}
	t.byID[view.TexHedge] = loadOrSynth(assetsDir, "hedge", synthHedge)
	t.byID[view.TexGravel] = loadOrSynth(assetsDir, "gravel", synthGravel)
	t.byID[view.TexExit] = loadOrSynth(assetsDir, "exit", synthExit)
	t.buildRoomAtlas()
	t.buildPlayerAtlas()
	return t
}

// Texture returns the image for a shaded-view texture id.
func (t *Textures) Texture(id view.TextureID) *ebiten.Image { return t.byID[id] }

// Tile returns one atlas tile for a plan-view sprite.
func (t *Textures) Tile(atlas view.AtlasID, index int) *ebiten.Image {
	switch atlas {
	case view.AtlasRooms:
		return t.rooms[index&15]
	case view.AtlasPlayer:
		return t.player[((index%4)+4)%4]
	default:
		return nil
	}
}

func loadOrSynth(dir, name string, synth func() *ebiten.Image) *ebiten.Image {
	for _, ext := range []string{".png", ".jpg"} {
		b, err := os.ReadFile(filepath.Join(dir, name+ext))
		if err != nil {
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			continue
		}
		return ebiten.NewImageFromImage(img)
	}
	return synth()
}

// speckle fills a texture with per-pixel noise between two colours. The
// fixed seed keeps the hedges identical from run to run.
func speckle(seed int64, a, b color.RGBA) *ebiten.Image {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			k := rng.Float64()
			img.SetRGBA(x, y, color.RGBA{
				R: mix(a.R, b.R, k),
				G: mix(a.G, b.G, k),
				B: mix(a.B, b.B, k),
				A: 255,
			})
		}
	}
	return ebiten.NewImageFromImage(img)
}

func mix(a, b uint8, k float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*k)
}

func synthHedge() *ebiten.Image {
	return speckle(1, color.RGBA{R: 16, G: 72, B: 24, A: 255}, color.RGBA{R: 56, G: 128, B: 48, A: 255})
}

func synthGravel() *ebiten.Image {
	return speckle(2, color.RGBA{R: 96, G: 92, B: 88, A: 255}, color.RGBA{R: 168, G: 160, B: 152, A: 255})
}

// synthExit draws a bright doorway: glow in the middle, dark border.
func synthExit() *ebiten.Image {
	img := ebiten.NewImage(texSize, texSize)
	img.Fill(color.RGBA{R: 32, G: 24, B: 48, A: 255})
	for i := 0; i < texSize/2-4; i++ {
		c := color.RGBA{
			R: uint8(255 - i*4),
			G: uint8(240 - i*4),
			B: uint8(160 - i*2),
			A: 255,
		}
		vector.StrokeRect(img, float32(4+i), float32(4+i), float32(texSize-8-2*i), float32(texSize-8-2*i), 1, c, false)
	}
	return img
}

// buildRoomAtlas draws the sixteen plan-view room tiles, one per wall
// bitmask. Tile index bit order matches maze.Direction: N, E, S, W.
// Plan-view screen y grows southward, so north is the top edge.
func (t *Textures) buildRoomAtlas() {
	bg := color.RGBA{R: 24, G: 28, B: 24, A: 255}
	wall := color.RGBA{R: 60, G: 160, B: 70, A: 255}
	const s = float32(tileSize)
	for walls := 0; walls < 16; walls++ {
		img := ebiten.NewImage(tileSize, tileSize)
		img.Fill(bg)
		if walls&1 != 0 { // north
			vector.DrawFilledRect(img, 0, 0, s, wallPx, wall, false)
		}
		if walls&2 != 0 { // east
			vector.DrawFilledRect(img, s-wallPx, 0, wallPx, s, wall, false)
		}
		if walls&4 != 0 { // south
			vector.DrawFilledRect(img, 0, s-wallPx, s, wallPx, wall, false)
		}
		if walls&8 != 0 { // west
			vector.DrawFilledRect(img, 0, 0, wallPx, s, wall, false)
		}
		t.rooms[walls] = img
	}
}

// buildPlayerAtlas draws the four player markers, one per bearing: a dot
// with a heading tick.
func (t *Textures) buildPlayerAtlas() {
	body := color.RGBA{R: 255, G: 221, B: 0, A: 255}
	const c = float32(tileSize) / 2
	const r = float32(tileSize)/2 - 5
	// Tick endpoint per bearing: N, E, S, W in screen coordinates.
	ticks := [4][2]float32{{c, c - r - 3}, {c + r + 3, c}, {c, c + r + 3}, {c - r - 3, c}}
	for bearing := 0; bearing < 4; bearing++ {
		img := ebiten.NewImage(tileSize, tileSize)
		vector.DrawFilledCircle(img, c, c, r, body, true)
		vector.StrokeLine(img, c, c, ticks[bearing][0], ticks[bearing][1], 2, body, true)
		t.player[bearing] = img
	}
}
