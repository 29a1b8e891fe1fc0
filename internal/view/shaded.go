package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/steverpalmer/first-person-maze/internal/maze"
	"github.com/steverpalmer/first-person-maze/internal/player"
)

// World mapping for the shaded view: maze X is world X, maze Y (north) is
// world -Z, and world Y is up. One room is one world unit.
const (
	GroundLevel = 0.0
	WallLevel   = 0.75
	EyeLevel    = (GroundLevel + WallLevel) / 2

	wallThickness = 0.075
	gravelScale   = 3.0 // gravel texture repeats per room
)

// Scene is the static textured geometry of one maze: a ground plane, the
// hedge wall panels extruded from the wall outline, and a panel across the
// exit opening. Built once per maze; only the camera changes per frame.
type Scene struct {
	Ground TexturedQuad
	Walls  []TexturedQuad
	Exit   TexturedQuad
}

func worldPoint(p mgl32.Vec2, level float32) mgl32.Vec3 {
	return mgl32.Vec3{p[0], level, -p[1]}
}

// BuildScene extrudes a built maze into shaded-view geometry.
func BuildScene(m *maze.Maze) *Scene {
	w, h := float32(m.Width()), float32(m.Height())
	scene := &Scene{
		Ground: TexturedQuad{
			Tex: TexGravel,
			V: [4]Vertex{
				{Pos: mgl32.Vec3{-1, GroundLevel, 1}, UV: mgl32.Vec2{0, 0}},
				{Pos: mgl32.Vec3{-1, GroundLevel, -h - 1}, UV: mgl32.Vec2{0, gravelScale * (h + 2)}},
				{Pos: mgl32.Vec3{w + 1, GroundLevel, -h - 1}, UV: mgl32.Vec2{gravelScale * (w + 2), gravelScale * (h + 2)}},
				{Pos: mgl32.Vec3{w + 1, GroundLevel, 1}, UV: mgl32.Vec2{gravelScale * (w + 2), 0}},
			},
		},
	}

	outline := m.WallOutline(wallThickness)
	scene.Walls = make([]TexturedQuad, 0, len(outline)-1)
	dist := float32(0)
	for i := 1; i < len(outline); i++ {
		a, b := outline[i-1], outline[i]
		// Manhattan distance is exact here: outline segments are axis-aligned.
		next := dist + abs32(b[0]-a[0]) + abs32(b[1]-a[1])
		scene.Walls = append(scene.Walls, TexturedQuad{
			Tex: TexHedge,
			V: [4]Vertex{
				{Pos: worldPoint(a, GroundLevel), UV: mgl32.Vec2{dist, 1}},
				{Pos: worldPoint(a, WallLevel), UV: mgl32.Vec2{dist, 0}},
				{Pos: worldPoint(b, WallLevel), UV: mgl32.Vec2{next, 0}},
				{Pos: worldPoint(b, GroundLevel), UV: mgl32.Vec2{next, 1}},
			},
		})
		dist = next
	}

	// The exit panel spans the opening between the outline's two endpoints.
	first, last := outline[0], outline[len(outline)-1]
	scene.Exit = TexturedQuad{
		Tex: TexExit,
		V: [4]Vertex{
			{Pos: worldPoint(first, GroundLevel), UV: mgl32.Vec2{1, 1}},
			{Pos: worldPoint(first, WallLevel), UV: mgl32.Vec2{1, 0}},
			{Pos: worldPoint(last, WallLevel), UV: mgl32.Vec2{0, 0}},
			{Pos: worldPoint(last, GroundLevel), UV: mgl32.Vec2{0, 1}},
		},
	}
	return scene
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Camera is a pose in maze coordinates plus a heading angle in radians
// (0 = north, growing clockwise through east).
type Camera struct {
	X, Y  float32
	Theta float32
}

// CameraFor centres the camera in the player's room, heading along the
// player's facing.
func CameraFor(s player.State) Camera {
	return Camera{
		X:     float32(s.Pos.X),
		Y:     float32(s.Pos.Y),
		Theta: float32(s.Facing.Bearing()) * math.Pi / 2,
	}
}

// Eye returns the camera's world-space position.
func (c Camera) Eye() mgl32.Vec3 {
	return mgl32.Vec3{c.X + 0.5, EyeLevel, -(c.Y + 0.5)}
}

// Forward returns the camera's world-space heading.
func (c Camera) Forward() mgl32.Vec3 {
	sin, cos := math.Sincos(float64(c.Theta))
	return mgl32.Vec3{float32(sin), 0, -float32(cos)}
}

// Transform builds the frame's combined projection*view matrix for the
// given viewport aspect ratio. 90° horizontal field of view, near plane at
// 0.1 room units.
func (c Camera) Transform(aspect float32) mgl32.Mat4 {
	eye := c.Eye()
	view := mgl32.LookAtV(eye, eye.Add(c.Forward()), mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(90), aspect, 0.1, 1000)
	return proj.Mul4(view)
}

// Glide eases the camera between discrete player poses so the shaded view
// slides and swings instead of jump-cutting. Pose changes take glideDuration
// seconds; retargeting mid-glide starts from the interpolated pose.
type Glide struct {
	target     Camera
	delta      Camera
	now        float64
	targetTime float64
	duration   float64
}

const glideDuration = 0.2

// NewGlide starts with the camera snapped onto the player.
func NewGlide(s player.State) *Glide {
	return &Glide{target: CameraFor(s), duration: glideDuration}
}

// Snap jumps straight to the pose with no easing (used on view entry).
func (g *Glide) Snap(s player.State) {
	g.target = CameraFor(s)
	g.delta = Camera{}
	g.targetTime = g.now
}

// Retarget starts a glide from the current interpolated pose to the
// player's new pose, turning the short way round.
func (g *Glide) Retarget(s player.State) {
	from := g.Current()
	g.target = CameraFor(s)
	g.targetTime = g.now + g.duration
	g.delta = Camera{
		X:     g.target.X - from.X,
		Y:     g.target.Y - from.Y,
		Theta: g.target.Theta - from.Theta,
	}
	if g.delta.Theta > math.Pi {
		g.delta.Theta -= 2 * math.Pi
	} else if g.delta.Theta < -math.Pi {
		g.delta.Theta += 2 * math.Pi
	}
}

// Advance moves the glide clock forward by dt seconds.
func (g *Glide) Advance(dt float64) { g.now += dt }

// Settled reports whether the camera has reached its target pose.
func (g *Glide) Settled() bool { return g.now >= g.targetTime }

// Current returns the camera pose for this instant.
func (g *Glide) Current() Camera {
	if g.Settled() {
		return g.target
	}
	k := float32((g.targetTime - g.now) / g.duration)
	return Camera{
		X:     g.target.X - g.delta.X*k,
		Y:     g.target.Y - g.delta.Y*k,
		Theta: g.target.Theta - g.delta.Theta*k,
	}
}
