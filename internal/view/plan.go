package view

import (
	"github.com/steverpalmer/first-person-maze/internal/maze"
	"github.com/steverpalmer/first-person-maze/internal/player"
)

// PlanSprites lays out the whole maze for the top-down view: one room tile
// per cell, indexed by the cell's wall bitmask, plus a player marker indexed
// by bearing. The player sprite is omitted once the player has escaped or
// while the maze is still being carved (pass a zero-value state and
// showPlayer=false).
func PlanSprites(m *maze.Maze, s player.State, showPlayer bool) []Sprite {
	sprites := make([]Sprite, 0, m.Width()*m.Height()+1)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			sprites = append(sprites, Sprite{
				Atlas: AtlasRooms,
				Index: int(m.Room(p).Walls),
				Cell:  p,
			})
		}
	}
	if showPlayer && m.InBounds(s.Pos) {
		sprites = append(sprites, Sprite{
			Atlas: AtlasPlayer,
			Index: s.Facing.Bearing(),
			Cell:  s.Pos,
		})
	}
	return sprites
}

// CarveCursor marks the room the builder is working in, so the build
// animation shows the carve crawling through the grid.
func CarveCursor(p maze.Point) Sprite {
	return Sprite{Atlas: AtlasPlayer, Index: maze.North.Bearing(), Cell: p}
}
