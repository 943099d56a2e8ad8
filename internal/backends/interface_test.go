package backends

import (
	"math"
	"testing"
)

func TestDividir(t *testing.T) {
	tests := []struct{ a, b, want int32 }{
		{7, 2, 3},
		{-7, 2, -3},
		{7, -2, -3},
		{7, 0, 0},
		{0, 0, 0},
		{5, -1, -5},
		{math.MinInt32, -1, math.MinInt32},
		{math.MinInt32, 1, math.MinInt32},
	}
	for _, tt := range tests {
		if got := Dividir(tt.a, tt.b); got != tt.want {
			t.Errorf("Dividir(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
