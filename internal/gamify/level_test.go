package gamify

import "testing"

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{25, 1},
		{99, 1},
		{100, 2},
		{399, 4},
		{400, 5},
		{900, 10},
		{-10, 1},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelProgress(t *testing.T) {
	into, needed := LevelProgress(125)
	if into != 25 || needed != 75 {
		t.Errorf("LevelProgress(125) = (%d, %d), want (25, 75)", into, needed)
	}
	into, needed = LevelProgress(200)
	if into != 0 || needed != 100 {
		t.Errorf("LevelProgress(200) = (%d, %d), want (0, 100)", into, needed)
	}
}
