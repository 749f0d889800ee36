package highlight

import "testing"

func TestLerpHex(t *testing.T) {
	tests := []struct {
		a, b string
		tt   float64
		want string
	}{
		{"#000000", "#ffffff", 0, "#000000"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"#000000", "#646464", 0.5, "#323232"},
	}
	for _, c := range tests {
		if got := lerpHex(c.a, c.b, c.tt); got != c.want {
			t.Errorf("lerpHex(%s, %s, %v) = %s, want %s", c.a, c.b, c.tt, got, c.want)
		}
	}
}

func TestThemePalette_Deterministic(t *testing.T) {
	a := ThemePalette("github-dark")
	b := ThemePalette("github-dark")
	if a != b {
		t.Errorf("palette not deterministic: %+v vs %+v", a, b)
	}
	for name, v := range map[string]string{
		"Bg": a.Bg, "Fg": a.Fg, "Border": a.Border,
		"Dim": a.Dim, "Muted": a.Muted, "Accent": a.Accent, "Error": a.Error,
	} {
		if len(v) != 7 || v[0] != '#' {
			t.Errorf("%s = %q, want #rrggbb", name, v)
		}
	}
}
