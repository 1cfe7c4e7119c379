package flowart

import (
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		cur, low, high, want float64
	}{
		{5, 0, 1, 1},
		{-5, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{0.5, 1, 0, 0.5},
		{2, 1, -1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.cur, tt.low, tt.high); got != tt.want {
			t.Errorf("Want Clamp(%v, %v, %v) = %v, got %v", tt.cur, tt.low, tt.high, tt.want, got)
		}
	}
	if got := ClampInt(10, 0, 9); got != 9 {
		t.Errorf("Want ClampInt(10, 0, 9) = 9, got %d", got)
	}
	if got := ClampInt(-1, 9, 0); got != 0 {
		t.Errorf("Want ClampInt(-1, 9, 0) = 0, got %d", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Want Lerp(2, 4, 0.5) = 3, got %v", got)
	}
	if got := Unlerp(2, 4, 3); got != 0.5 {
		t.Errorf("Want Unlerp(2, 4, 3) = 0.5, got %v", got)
	}
	if got := Unlerp(2, 2, 3); got != 0 {
		t.Errorf("Want Unlerp over an empty range = 0, got %v", got)
	}
}
