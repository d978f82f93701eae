package terminal

import "testing"

func TestLeftMargin(t *testing.T) {
	cases := []struct{ line, content, want int }{
		{80, 40, 20},
		{80, 41, 19},
		{40, 80, 0},
		{10, 10, 0},
	}
	for _, c := range cases {
		if got := LeftMargin(c.line, c.content); got != c.want {
			t.Errorf("LeftMargin(%d, %d) = %d, want %d", c.line, c.content, got, c.want)
		}
	}
}

func TestGetSize_Positive(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %d,%d, want positive", w, h)
	}
}
