package imageio

import "testing"

// TestEncodeByteGamma checks the gamma-encode formula at its three
// canonical values: full black, full white, and mid-gray (the latter
// rounds 0.5^(1/2.2)*255 ~= 186.07 to the nearest byte, 186, through the
// +0.5 bias and truncation).
func TestEncodeByteGamma(t *testing.T) {
	cases := []struct {
		x    float64
		want byte
	}{
		{0, 0},
		{1, 255},
		{0.5, 186},
	}
	for _, c := range cases {
		if got := EncodeByte(c.x); got != c.want {
			t.Errorf("EncodeByte(%v) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestEncodeByteClamps(t *testing.T) {
	if got := EncodeByte(-1); got != 0 {
		t.Errorf("EncodeByte(-1) = %d, want 0", got)
	}
	if got := EncodeByte(2); got != 255 {
		t.Errorf("EncodeByte(2) = %d, want 255", got)
	}
}
