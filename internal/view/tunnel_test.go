package view

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/steverpalmer/first-person-maze/internal/maze"
	"github.com/steverpalmer/first-person-maze/internal/player"
)

// findDeadEnd returns a room with exactly one opening, which every
// spanning-tree maze has, posed facing the blank wall opposite the opening.
func findDeadEnd(t *testing.T, m *maze.Maze) player.State {
	t.Helper()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			if exits := m.Room(p).Exits(); len(exits) == 1 {
				return player.State{Pos: p, Facing: exits[0].Reverse()}
			}
		}
	}
	t.Fatal("maze has no dead end")
	return player.State{}
}

func TestTunnelDeadEndAhead(t *testing.T) {
	m, err := maze.Generate(6, 6, 42)
	if err != nil {
		t.Fatal(err)
	}
	s := findDeadEnd(t, m)
	lines := TunnelLines(m, s, 640, 480)
	// Facing straight into a dead end: two wall edges per side, a closing
	// post per side, and the end wall's top and bottom edges.
	if len(lines) != 8 {
		t.Fatalf("dead end ahead should draw 8 segments, got %d", len(lines))
	}
	// The corridor ends with the far wall's horizontal edges.
	for _, l := range lines[len(lines)-2:] {
		if l.A[1] != l.B[1] {
			t.Errorf("closing segment %v -> %v is not horizontal", l.A, l.B)
		}
	}
}

func TestTunnelExitFrame(t *testing.T) {
	m, err := maze.Generate(6, 6, 42)
	if err != nil {
		t.Fatal(err)
	}
	// Standing in the start room facing south looks straight out the exit.
	s := player.State{Pos: m.Start(), Facing: maze.South}
	lines := TunnelLines(m, s, 640, 480)
	if len(lines) < 8 {
		t.Fatalf("exit ahead drew only %d segments", len(lines))
	}
	// The exit is framed by two pairs of vertical posts.
	for _, l := range lines[len(lines)-4:] {
		if l.A[0] != l.B[0] {
			t.Errorf("exit frame segment %v -> %v is not vertical", l.A, l.B)
		}
	}
}

func TestTunnelLinesStayInViewport(t *testing.T) {
	m, err := maze.Generate(8, 6, 7)
	if err != nil {
		t.Fatal(err)
	}
	const w, h = 800, 600
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			for _, d := range maze.Directions {
				s := player.State{Pos: maze.Point{X: x, Y: y}, Facing: d}
				for _, l := range TunnelLines(m, s, w, h) {
					for _, p := range [...]mgl32.Vec2{l.A, l.B} {
						if p[0] < 0 || p[0] > w || p[1] < 0 || p[1] > h {
							t.Fatalf("pose %+v produced out-of-viewport point %v", s, p)
						}
					}
				}
			}
		}
	}
}

func TestTunnelRedrawIsDiscrete(t *testing.T) {
	m, err := maze.Generate(5, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	s := player.Start(m)
	a := TunnelLines(m, s, 320, 240)
	b := TunnelLines(m, s, 320, 240)
	if len(a) != len(b) {
		t.Fatal("same pose should always draw the same picture")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("segment %d differs between identical poses", i)
		}
	}
}
