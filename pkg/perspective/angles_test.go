package perspective

import "testing"

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 45, 45},
		{"wraps above", 370, 10},
		{"full turn", 360, 0},
		{"negative", -30, 330},
		{"negative full turn", -720, 0},
		{"large positive", 1085, 5},
		{"large negative", -1085, 355},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.deg)
			if got != tt.want {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.deg, got, tt.want)
			}
			if got < 0 || got >= 360 {
				t.Errorf("NormalizeAngle(%v) = %v, outside [0, 360)", tt.deg, got)
			}
		})
	}
}
