package flappy

import "testing"

func TestHitsObstacle(t *testing.T) {
	o := Obstacle{X: 70, GapTop: 100, GapSize: 180}

	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"above gap", 50, true},
		{"inside gap", 190, false},
		{"touching gap top", 120, false},
		{"touching gap bottom", 260, false},
		{"below gap", 270, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{X: 80, Y: tt.y, Radius: 20}
			if got := HitsObstacle(p, o, 60); got != tt.want {
				t.Errorf("HitsObstacle(y=%v) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestHitsObstacleNeedsHorizontalOverlap(t *testing.T) {
	p := Player{X: 80, Y: 50, Radius: 20}

	// Obstacle right edge touches the player's left edge.
	if HitsObstacle(p, Obstacle{X: 0, GapTop: 100, GapSize: 180}, 60) {
		t.Error("touching edges should not collide")
	}
	// Obstacle left edge touches the player's right edge.
	if HitsObstacle(p, Obstacle{X: 100, GapTop: 100, GapSize: 180}, 60) {
		t.Error("touching edges should not collide")
	}
	if !HitsObstacle(p, Obstacle{X: 99, GapTop: 100, GapSize: 180}, 60) {
		t.Error("overlap by one unit should collide")
	}
}

func TestCollideGroundFirst(t *testing.T) {
	p := Player{X: 80, Y: 510, Radius: 20}
	obstacles := []Obstacle{{X: 70, GapTop: 100, GapSize: 180}}

	if got := Collide(p, obstacles, 60, 520); got != CollisionGround {
		t.Errorf("Collide() = %v, want ground", got)
	}
}

func TestCollideNone(t *testing.T) {
	p := Player{X: 80, Y: 190, Radius: 20}
	obstacles := []Obstacle{{X: 70, GapTop: 100, GapSize: 180}, {X: 300, GapTop: 0, GapSize: 10}}

	if got := Collide(p, obstacles, 60, 520); got != CollisionNone {
		t.Errorf("Collide() = %v, want none", got)
	}
}

func TestCeilingIsNotACollision(t *testing.T) {
	p := Player{X: 80, Y: 5, Radius: 20}

	if !TouchesCeiling(p) {
		t.Fatal("expected ceiling contact")
	}
	if got := Collide(p, nil, 60, 520); got != CollisionNone {
		t.Errorf("Collide() = %v, want none", got)
	}
}
