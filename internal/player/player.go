// Package player holds the navigator's discrete position and facing, and
// the pure transition function that moves it through a maze.
package player

import "github.com/steverpalmer/first-person-maze/internal/maze"

// Command is one discrete navigation input.
type Command int

const (
	TurnLeft Command = iota
	TurnRight
	Forward
	Backward
)

func (c Command) String() string {
	switch c {
	case TurnLeft:
		return "TurnLeft"
	case TurnRight:
		return "TurnRight"
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// State is the player's pose: a room position and a facing direction.
type State struct {
	Pos    maze.Point
	Facing maze.Direction
}

// Start places a player at the maze's random start pose.
func Start(m *maze.Maze) State {
	p, d := m.RandomPose()
	return State{Pos: p, Facing: d}
}

// Apply returns the state after executing cmd. Turns always succeed; steps
// into a wall are silently rejected and return the state unchanged. Stepping
// through the exit opening leaves the maze (see Escaped).
func Apply(m *maze.Maze, s State, cmd Command) State {
	switch cmd {
	case TurnLeft:
		s.Facing = s.Facing.TurnLeft()
	case TurnRight:
		s.Facing = s.Facing.TurnRight()
	case Forward:
		if m.CanMove(s.Pos, s.Facing) {
			s.Pos = s.Pos.Add(s.Facing)
		}
	case Backward:
		if m.CanMove(s.Pos, s.Facing.Reverse()) {
			s.Pos = s.Pos.Add(s.Facing.Reverse())
		}
	}
	return s
}

// Escaped reports whether the player has stepped out of the maze.
func Escaped(m *maze.Maze, s State) bool {
	return !m.InBounds(s.Pos)
}
