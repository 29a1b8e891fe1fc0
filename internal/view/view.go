// Package view projects (maze, player state) into drawable primitives.
// It knows nothing about the window or the GPU: the game layer owns those.
package view

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/steverpalmer/first-person-maze/internal/maze"
)

// Mode selects the active presentation strategy.
type Mode int

const (
	Plan Mode = iota
	Tunnel
	Shaded
	modeCount
)

// Next cycles to the following view mode in fixed order.
func (m Mode) Next() Mode { return (m + 1) % modeCount }

func (m Mode) String() string {
	switch m {
	case Plan:
		return "Plan"
	case Tunnel:
		return "Tunnel"
	case Shaded:
		return "Shaded"
	default:
		return "Unknown"
	}
}

// AtlasID names a sprite sheet owned by the renderer.
type AtlasID int

const (
	AtlasRooms  AtlasID = iota // 16 tiles indexed by wall bitmask
	AtlasPlayer                // 4 tiles indexed by bearing
)

// Sprite places one atlas tile on a grid cell (plan mode).
type Sprite struct {
	Atlas AtlasID
	Index int
	Cell  maze.Point
}

// Line is a screen-space wall segment (tunnel mode).
type Line struct {
	A, B mgl32.Vec2
}

// TextureID names a texture owned by the renderer.
type TextureID int

const (
	TexHedge TextureID = iota
	TexGravel
	TexExit
)

// Vertex is a world-space position with a texture coordinate, in texture
// repeats (UVs above 1 tile).
type Vertex struct {
	Pos mgl32.Vec3
	UV  mgl32.Vec2
}

// TexturedQuad is four vertices in fan order: 0-1-2 and 0-2-3 triangles
// (shaded mode). The renderer applies the frame transform, clips, shades
// and samples the texture.
type TexturedQuad struct {
	Tex TextureID
	V   [4]Vertex
}
