package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrInvalidDimensions is returned when the requested grid is too small to
// form a maze.
var ErrInvalidDimensions = errors.New("maze dimensions must be at least 2x2")

// Room is one grid unit of the maze. Walls is the set of directions that are
// blocked. Egress is the direction that leads, eventually, out of the maze;
// it is set during generation and is never walled.
type Room struct {
	Walls  Direction
	Egress Direction
}

// Sealed reports whether the room still has all four walls.
func (r Room) Sealed() bool { return r.Walls == AllDirections }

// Open reports whether movement out of the room in direction d is possible.
func (r Room) Open(d Direction) bool { return r.Walls&d == 0 }

// Exits lists the open directions in N, E, S, W order.
func (r Room) Exits() []Direction {
	var out []Direction
	for _, d := range Directions {
		if r.Open(d) {
			out = append(out, d)
		}
	}
	return out
}

// Point is a grid position. X grows eastward, Y grows northward.
type Point struct {
	X, Y int
}

// Add returns the point one step away in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Offset()
	return Point{p.X + dx, p.Y + dy}
}

// Maze is a rectangular grid of rooms. The exit is an opening in the south
// boundary wall of the start room; walking through it leaves the maze.
type Maze struct {
	width, height int
	rooms         []Room
	start         Point
	rng           *rand.Rand
}

// New returns a fully sealed maze ready to be carved. The same
// (width, height, seed) triple always produces the same maze once built.
func New(width, height int, seed int64) (*Maze, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	m := &Maze{
		width:  width,
		height: height,
		rooms:  make([]Room, width*height),
		rng:    rand.New(rand.NewSource(seed)),
	}
	for i := range m.rooms {
		m.rooms[i].Walls = AllDirections
	}
	m.start = Point{m.rng.Intn(width), 0}
	return m, nil
}

// Build runs the carve to completion in one call.
func (m *Maze) Build() {
	for b := m.Builder(); b.Step(); {
	}
}

// Generate builds a complete maze in one call.
func Generate(width, height int, seed int64) (*Maze, error) {
	m, err := New(width, height, seed)
	if err != nil {
		return nil, err
	}
	m.Build()
	return m, nil
}

func (m *Maze) Width() int   { return m.width }
func (m *Maze) Height() int  { return m.height }
func (m *Maze) Start() Point { return m.start }

// InBounds reports whether p is inside the grid.
func (m *Maze) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// Room returns the room at p. p must be in bounds.
func (m *Maze) Room(p Point) Room { return m.rooms[p.Y*m.width+p.X] }

// CanMove reports whether a step from p in direction d is unobstructed.
// The destination may be outside the maze: that is the exit.
func (m *Maze) CanMove(p Point, d Direction) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.Room(p).Open(d)
}

// RandomPose picks a start position and a facing that is not straight into a
// wall. Only meaningful on a fully built maze.
func (m *Maze) RandomPose() (Point, Direction) {
	p := Point{m.rng.Intn(m.width), m.rng.Intn(m.height)}
	exits := m.Room(p).Exits()
	return p, exits[m.rng.Intn(len(exits))]
}

func (m *Maze) room(p Point) *Room { return &m.rooms[p.Y*m.width+p.X] }

func (m *Maze) removeWall(p Point, d Direction) {
	m.room(p).Walls &^= d
}

// setEgress records the way out of a room, opening the wall in that
// direction if it is still closed. For the start room this opens the south
// boundary: the maze exit.
func (m *Maze) setEgress(p Point, d Direction) {
	r := m.room(p)
	r.Walls &^= d
	r.Egress = d
}

// Builder carves a maze one room per Step, so the build can be animated.
//
// The carve is a randomized depth-first backtracker: from the current room,
// knock a wall through to a random still-sealed neighbour and move there;
// when no sealed neighbour remains, retreat along the egress pointers. Each
// room's egress is the direction it was entered from, so the egress chain of
// any room traces the unique path to the exit. The walk terminates by
// stepping out through the exit opening itself.
type Builder struct {
	m      *Maze
	pos    Point
	egress Direction
	done   bool
}

// Builder returns a carver positioned at the maze's start room.
func (m *Maze) Builder() *Builder {
	return &Builder{m: m, pos: m.start, egress: South}
}

// Pos returns the room the builder is currently carving.
func (b *Builder) Pos() Point { return b.pos }

// Done reports whether the carve has finished.
func (b *Builder) Done() bool { return b.done }

// Step advances the carve by one room visit. It returns false once the maze
// is complete.
func (b *Builder) Step() bool {
	if b.done || !b.m.InBounds(b.pos) {
		b.done = true
		return false
	}
	m := b.m
	m.setEgress(b.pos, b.egress)

	var options []Direction
	for _, d := range Directions {
		if d == b.egress {
			continue
		}
		n := b.pos.Add(d)
		if m.InBounds(n) && m.Room(n).Sealed() {
			options = append(options, d)
		}
	}
	if len(options) > 0 {
		d := options[m.rng.Intn(len(options))]
		m.removeWall(b.pos, d)
		b.pos = b.pos.Add(d)
		b.egress = d.Reverse()
	} else {
		b.pos = b.pos.Add(b.egress)
		if m.InBounds(b.pos) {
			b.egress = m.Room(b.pos).Egress
		}
	}
	return true
}

// String renders the maze as ASCII art, one character per wall segment.
func (m *Maze) String() string {
	var sb strings.Builder
	for y := m.height - 1; y >= 0; y-- {
		for x := 0; x < m.width; x++ {
			if !m.Room(Point{x, y}).Open(North) {
				sb.WriteString("+--")
			} else {
				sb.WriteString("+  ")
			}
		}
		sb.WriteString("+\n")
		for x := 0; x < m.width; x++ {
			if !m.Room(Point{x, y}).Open(West) {
				sb.WriteString("|  ")
			} else {
				sb.WriteString("   ")
			}
		}
		if !m.Room(Point{m.width - 1, y}).Open(East) {
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
	for x := 0; x < m.width; x++ {
		if !m.Room(Point{x, 0}).Open(South) {
			sb.WriteString("+--")
		} else {
			sb.WriteString("+  ")
		}
	}
	sb.WriteString("+\n")
	return sb.String()
}
