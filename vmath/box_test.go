package vmath

import "testing"

func TestBoxFOverlaps(t *testing.T) {
	paddle := NewBoxF(V2F(50, 300), 10, 50)

	tests := []struct {
		name string
		ball BoxF
		want bool
	}{
		{"centered on paddle", NewBoxF(V2F(50, 300), 15, 15), true},
		{"overlapping right face", NewBoxF(V2F(70, 300), 15, 15), true},
		{"touching right face", NewBoxF(V2F(75, 300), 15, 15), false},
		{"clear to the right", NewBoxF(V2F(200, 300), 15, 15), false},
		{"above top", NewBoxF(V2F(50, 200), 15, 15), false},
		{"clipping top corner", NewBoxF(V2F(70, 240), 15, 15), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ball.Overlaps(paddle); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := paddle.Overlaps(tt.ball); got != tt.want {
				t.Errorf("Overlaps not symmetric: got %v, want %v", got, tt.want)
			}
		})
	}
}
