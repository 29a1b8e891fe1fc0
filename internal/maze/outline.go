package maze

import "github.com/go-gl/mathgl/mgl32"

// WallOutline walks the maze with the left hand on the hedge, starting just
// east of the exit opening and finishing just west of it, and returns the
// 2D polyline traced by the inner face of the walls. thickness is how far
// the face sits inside each room, in room units.
//
// Because the maze is a spanning tree, a single left-hand walk touches every
// wall face, so the polyline is the complete wall geometry for the shaded
// view to extrude.
func (m *Maze) WallOutline(thickness float32) []mgl32.Vec2 {
	t := thickness
	corner := map[Direction]mgl32.Vec2{
		North: {t, 1 - t},
		East:  {1 - t, 1 - t},
		South: {1 - t, t},
		West:  {t, t},
	}

	pos := m.start
	dir := North
	points := []mgl32.Vec2{{float32(m.start.X) + t, 0}}
	for m.InBounds(pos) {
		room := m.Room(pos)
		left := dir.TurnLeft()
		switch {
		case room.Open(left):
			points = append(points, roomPoint(pos, corner[left]))
			dir = left
		case room.Open(dir):
			// straight on, no corner to record
		default:
			points = append(points, roomPoint(pos, corner[dir]))
			right := dir.TurnRight()
			if room.Open(right) {
				dir = right
			} else {
				points = append(points, roomPoint(pos, corner[right]))
				dir = dir.Reverse()
			}
		}
		pos = pos.Add(dir)
	}
	points = append(points, mgl32.Vec2{float32(m.start.X) + 1 - t, 0})
	return points
}

func roomPoint(p Point, offset mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{float32(p.X) + offset[0], float32(p.Y) + offset[1]}
}
