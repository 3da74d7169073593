package stego

import "testing"

func TestCapacity(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          int
	}{
		{"too small for header", 6, 6, 0},
		{"exactly header pixels", 46, 1, 0},
		{"small usable image", 100, 99, (100*99-HeaderPixels)*3/8 - len(Delimiter)},
		{"zero dims", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Capacity(tt.width, tt.height)
			if got != tt.want {
				t.Errorf("Capacity(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestCapacityNeverNegative(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {1, 1}, {10, 1}, {46, 1}} {
		if got := Capacity(dims[0], dims[1]); got < 0 {
			t.Errorf("Capacity(%d, %d) = %d, must never be negative", dims[0], dims[1], got)
		}
	}
}

func TestPixelsNeeded(t *testing.T) {
	cases := []struct{ bits, want int }{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{136, 46},
	}
	for _, c := range cases {
		if got := pixelsNeeded(c.bits); got != c.want {
			t.Errorf("pixelsNeeded(%d) = %d, want %d", c.bits, got, c.want)
		}
	}
}
