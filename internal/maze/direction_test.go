package maze

import "testing"

func TestTurnsAndReverse(t *testing.T) {
	tests := []struct {
		name                string
		dir                 Direction
		left, right, rev    Direction
		bearing             int
		offsetDX, offsetDY  int
	}{
		{name: "north", dir: North, left: West, right: East, rev: South, bearing: 0, offsetDX: 0, offsetDY: 1},
		{name: "east", dir: East, left: North, right: South, rev: West, bearing: 1, offsetDX: 1, offsetDY: 0},
		{name: "south", dir: South, left: East, right: West, rev: North, bearing: 2, offsetDX: 0, offsetDY: -1},
		{name: "west", dir: West, left: South, right: North, rev: East, bearing: 3, offsetDX: -1, offsetDY: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.dir.TurnLeft(); got != tc.left {
				t.Errorf("TurnLeft = %v, want %v", got, tc.left)
			}
			if got := tc.dir.TurnRight(); got != tc.right {
				t.Errorf("TurnRight = %v, want %v", got, tc.right)
			}
			if got := tc.dir.Reverse(); got != tc.rev {
				t.Errorf("Reverse = %v, want %v", got, tc.rev)
			}
			if got := tc.dir.Bearing(); got != tc.bearing {
				t.Errorf("Bearing = %d, want %d", got, tc.bearing)
			}
			dx, dy := tc.dir.Offset()
			if dx != tc.offsetDX || dy != tc.offsetDY {
				t.Errorf("Offset = (%d,%d), want (%d,%d)", dx, dy, tc.offsetDX, tc.offsetDY)
			}
		})
	}
}

func TestFourLeftTurnsIsIdentity(t *testing.T) {
	for _, d := range Directions {
		got := d.TurnLeft().TurnLeft().TurnLeft().TurnLeft()
		if got != d {
			t.Errorf("four left turns from %v ended at %v", d, got)
		}
		got = d.TurnRight().TurnRight().TurnRight().TurnRight()
		if got != d {
			t.Errorf("four right turns from %v ended at %v", d, got)
		}
	}
}

func TestTurnLeftRightCancel(t *testing.T) {
	for _, d := range Directions {
		if got := d.TurnLeft().TurnRight(); got != d {
			t.Errorf("TurnLeft then TurnRight from %v = %v", d, got)
		}
		if got := d.Reverse().Reverse(); got != d {
			t.Errorf("double Reverse from %v = %v", d, got)
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{NoDirection, ""},
		{North, "N"},
		{East, "E"},
		{South, "S"},
		{West, "W"},
		{AllDirections, "NESW"},
		{North | West, "NW"},
	}
	for _, tc := range tests {
		if got := tc.dir.String(); got != tc.want {
			t.Errorf("String(%d) = %q, want %q", tc.dir, got, tc.want)
		}
	}
}

func TestValid(t *testing.T) {
	for _, d := range Directions {
		if !d.Valid() {
			t.Errorf("%v should be valid", d)
		}
	}
	for _, d := range []Direction{NoDirection, North | South, AllDirections} {
		if d.Valid() {
			t.Errorf("%v should not be valid", d)
		}
	}
}
