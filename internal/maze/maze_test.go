package maze

import "testing"

func TestNewRejectsSmallDimensions(t *testing.T) {
	tests := []struct{ w, h int }{
		{0, 0}, {1, 1}, {1, 5}, {5, 1}, {-3, 4},
	}
	for _, tc := range tests {
		if _, err := New(tc.w, tc.h, 1); err == nil {
			t.Errorf("New(%d, %d) should fail", tc.w, tc.h)
		}
	}
	if _, err := New(2, 2, 1); err != nil {
		t.Fatalf("New(2, 2): %v", err)
	}
}

func TestGenerateConnectsEveryRoom(t *testing.T) {
	sizes := []struct {
		w, h int
		seed int64
	}{
		{2, 2, 1}, {5, 5, 42}, {10, 8, 7}, {20, 16, 99},
	}
	for _, tc := range sizes {
		m, err := Generate(tc.w, tc.h, tc.seed)
		if err != nil {
			t.Fatalf("Generate(%d, %d, %d): %v", tc.w, tc.h, tc.seed, err)
		}
		// BFS from the start room over open walls.
		visited := map[Point]bool{m.Start(): true}
		queue := []Point{m.Start()}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, d := range Directions {
				n := p.Add(d)
				if m.CanMove(p, d) && m.InBounds(n) && !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		if len(visited) != tc.w*tc.h {
			t.Errorf("%dx%d seed %d: reached %d of %d rooms", tc.w, tc.h, tc.seed, len(visited), tc.w*tc.h)
		}
	}
}

func TestGenerateIsSpanningTree(t *testing.T) {
	m, err := Generate(10, 8, 3)
	if err != nil {
		t.Fatal(err)
	}
	// Count interior openings once per shared wall: east- and north-facing
	// openings whose neighbour is still inside the grid.
	openings := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := Point{x, y}
			for _, d := range []Direction{North, East} {
				if m.Room(p).Open(d) && m.InBounds(p.Add(d)) {
					openings++
				}
			}
		}
	}
	want := m.Width()*m.Height() - 1
	if openings != want {
		t.Errorf("interior openings = %d, want %d (spanning tree)", openings, want)
	}
}

func TestWallsMirroredBetweenNeighbours(t *testing.T) {
	m, err := Generate(12, 9, 5)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := Point{x, y}
			for _, d := range Directions {
				n := p.Add(d)
				if !m.InBounds(n) {
					continue
				}
				if m.Room(p).Open(d) != m.Room(n).Open(d.Reverse()) {
					t.Fatalf("wall between %v and %v disagrees", p, n)
				}
			}
		}
	}
}

func TestExactlyOneBoundaryOpening(t *testing.T) {
	m, err := Generate(7, 6, 11)
	if err != nil {
		t.Fatal(err)
	}
	boundary := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := Point{x, y}
			for _, d := range Directions {
				if m.Room(p).Open(d) && !m.InBounds(p.Add(d)) {
					boundary++
				}
			}
		}
	}
	if boundary != 1 {
		t.Errorf("boundary openings = %d, want exactly 1 (the exit)", boundary)
	}
	if !m.CanMove(m.Start(), South) {
		t.Error("start room south wall should be the exit opening")
	}
	if m.Start().Y != 0 {
		t.Errorf("start room should sit on the south edge, got %v", m.Start())
	}
}

func TestEgressChainsLeadToExit(t *testing.T) {
	m, err := Generate(6, 6, 17)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := Point{x, y}
			steps := 0
			for m.InBounds(p) {
				r := m.Room(p)
				if !r.Egress.Valid() {
					t.Fatalf("room %v has no egress", p)
				}
				if !r.Open(r.Egress) {
					t.Fatalf("room %v egress %v is walled", p, r.Egress)
				}
				p = p.Add(r.Egress)
				if steps++; steps > m.Width()*m.Height() {
					t.Fatalf("egress chain from (%d,%d) does not terminate", x, y)
				}
			}
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate(9, 7, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(9, 7, 42)
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("same seed produced different mazes")
	}
	ap, ad := a.RandomPose()
	bp, bd := b.RandomPose()
	if ap != bp || ad != bd {
		t.Errorf("same seed produced different poses: (%v,%v) vs (%v,%v)", ap, ad, bp, bd)
	}

	c, err := Generate(9, 7, 43)
	if err != nil {
		t.Fatal(err)
	}
	if a.String() == c.String() {
		t.Error("different seeds produced identical mazes (unlikely enough to be a bug)")
	}
}

func TestBuilderStepsAndFinishes(t *testing.T) {
	m, err := New(5, 4, 8)
	if err != nil {
		t.Fatal(err)
	}
	b := m.Builder()
	steps := 0
	for b.Step() {
		if steps++; steps > 10*5*4 {
			t.Fatal("builder does not terminate")
		}
	}
	if !b.Done() {
		t.Error("builder should report done after Step returns false")
	}
	for i := range m.rooms {
		if m.rooms[i].Sealed() {
			t.Fatalf("room %d still sealed after build", i)
		}
	}
}

func TestRandomPoseNeverFacesWall(t *testing.T) {
	m, err := Generate(8, 8, 23)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		p, d := m.RandomPose()
		if !m.InBounds(p) {
			t.Fatalf("pose position %v out of bounds", p)
		}
		if !m.CanMove(p, d) {
			t.Fatalf("pose at %v faces a wall (%v)", p, d)
		}
	}
}
