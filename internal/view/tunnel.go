package view

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/steverpalmer/first-person-maze/internal/maze"
	"github.com/steverpalmer/first-person-maze/internal/player"
)

// The tunnel view draws the corridor ahead as nested rectangular frames,
// one per depth step, shrinking toward the screen centre. Each frame keeps
// eight reference vertices: the four outer corners plus, on each side, the
// two points where the next frame's top and bottom meet this frame's side.
// Wall segments or gap posts are strung between consecutive frames
// depending on the openings of the room at that depth. There is no
// in-between geometry: the picture jumps from cell to cell on each move.
const (
	frameLeftBottomOuter = iota
	frameLeftTopOuter
	frameRightBottomOuter
	frameRightTopOuter
	frameLeftBottomInner
	frameLeftTopInner
	frameRightBottomInner
	frameRightTopInner
)

// tunnelFrames computes the per-depth reference vertices for a viewport.
// Frame k spans offset limits/(k+1) from the centre, so depth shrinks
// hyperbolically, which reads as perspective.
func tunnelFrames(width, height, depth int) [][8]mgl32.Vec2 {
	cx, cy := float32(width)/2, float32(height)/2
	frames := make([][8]mgl32.Vec2, depth)
	for k := range frames {
		ox := cx / float32(k+1)
		oy := cy / float32(k+1)
		iy := cy / float32(k+2)
		frames[k] = [8]mgl32.Vec2{
			frameLeftBottomOuter:  {cx - ox, cy + oy},
			frameLeftTopOuter:     {cx - ox, cy - oy},
			frameRightBottomOuter: {cx + ox, cy + oy},
			frameRightTopOuter:    {cx + ox, cy - oy},
			frameLeftBottomInner:  {cx - ox, cy + iy},
			frameLeftTopInner:     {cx - ox, cy - iy},
			frameRightBottomInner: {cx + ox, cy + iy},
			frameRightTopInner:    {cx + ox, cy - iy},
		}
	}
	return frames
}

// TunnelLines projects the corridor ahead of the player into screen-space
// line segments for a width x height viewport.
func TunnelLines(m *maze.Maze, s player.State, width, height int) []Line {
	depth := m.Width()
	if m.Height() > depth {
		depth = m.Height()
	}
	frames := tunnelFrames(width, height, depth+3)

	var lines []Line
	seg := func(frameA, vertA, frameB, vertB int) {
		lines = append(lines, Line{A: frames[frameA][vertA], B: frames[frameB][vertB]})
	}

	dir := s.Facing
	left := dir.TurnLeft()
	right := dir.TurnRight()
	pos := s.Pos
	for step := 1; step < len(frames); step++ {
		if !m.InBounds(pos) {
			// The opening in the boundary: frame the exit and stop.
			seg(step-1, frameLeftBottomOuter, step-1, frameLeftTopOuter)
			seg(step-1, frameRightBottomOuter, step-1, frameRightTopOuter)
			seg(step, frameLeftBottomOuter, step, frameLeftTopOuter)
			seg(step, frameRightBottomOuter, step, frameRightTopOuter)
			break
		}
		room := m.Room(pos)

		leftPost := room.Open(left)
		if leftPost {
			// Side passage: draw the gap edges and close off the previous
			// frame with a post.
			seg(step-1, frameLeftBottomInner, step, frameLeftBottomOuter)
			seg(step-1, frameLeftTopInner, step, frameLeftTopOuter)
			seg(step-1, frameLeftBottomOuter, step-1, frameLeftTopOuter)
		} else {
			seg(step-1, frameLeftBottomOuter, step, frameLeftBottomOuter)
			seg(step-1, frameLeftTopOuter, step, frameLeftTopOuter)
		}

		rightPost := room.Open(right)
		if rightPost {
			seg(step-1, frameRightBottomInner, step, frameRightBottomOuter)
			seg(step-1, frameRightTopInner, step, frameRightTopOuter)
			seg(step-1, frameRightBottomOuter, step-1, frameRightTopOuter)
		} else {
			seg(step-1, frameRightBottomOuter, step, frameRightBottomOuter)
			seg(step-1, frameRightTopOuter, step, frameRightTopOuter)
		}

		if room.Open(dir) {
			if leftPost {
				seg(step, frameLeftBottomOuter, step, frameLeftTopOuter)
			}
			if rightPost {
				seg(step, frameRightBottomOuter, step, frameRightTopOuter)
			}
			pos = pos.Add(dir)
		} else {
			if !leftPost {
				seg(step, frameLeftBottomOuter, step, frameLeftTopOuter)
			}
			if !rightPost {
				seg(step, frameRightBottomOuter, step, frameRightTopOuter)
			}
			seg(step, frameLeftBottomOuter, step, frameRightBottomOuter)
			seg(step, frameLeftTopOuter, step, frameRightTopOuter)
			break
		}
	}
	return lines
}
