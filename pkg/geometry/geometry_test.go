package geometry

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)
	if r.Right != 110 || r.Bottom != 70 {
		t.Errorf("RectFromLTWH = %+v, want Right=110 Bottom=70", r)
	}
	if r.Width() != 100 {
		t.Errorf("Width() = %v, want 100", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height() = %v, want 50", r.Height())
	}
}

func TestRectTranslate(t *testing.T) {
	r := RectFromLTWH(0, 100, 200, 40).Translate(5, -10)
	want := Rect{Left: 5, Top: 90, Right: 205, Bottom: 130}
	if r != want {
		t.Errorf("Translate = %+v, want %+v", r, want)
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"zero", Rect{}, true},
		{"degenerate width", RectFromLTWH(0, 0, 0, 10), true},
		{"degenerate height", RectFromLTWH(0, 0, 10, 0), true},
		{"normal", RectFromLTWH(0, 0, 10, 10), false},
	}
	for _, tt := range tests {
		if got := tt.rect.IsEmpty(); got != tt.want {
			t.Errorf("%s: IsEmpty() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFloatEqual(t *testing.T) {
	if !FloatEqual(1.0, 1.0+epsilon/2) {
		t.Error("values within epsilon should compare equal")
	}
	if FloatEqual(1.0, 1.01) {
		t.Error("values outside epsilon should not compare equal")
	}
}
