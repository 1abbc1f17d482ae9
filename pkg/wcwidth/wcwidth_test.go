package wcwidth

import (
	"testing"

	"src.conedit.dev/pkg/tt"
)

var Args = tt.Args

func TestOf(t *testing.T) {
	tt.Test(t, Of,
		Args("\u0301").Rets(0), // Combining acute accent
		Args("a").Rets(1),
		Args("Ω").Rets(1),
		Args("好").Rets(2),
		Args("か").Rets(2),

		Args("abc").Rets(3),
		Args("你好").Rets(4),
	)
}

func TestOfRunes(t *testing.T) {
	tt.Test(t, OfRunes,
		Args([]rune("a你b")).Rets(4),
		Args([]rune(nil)).Rets(0),
	)
}

func TestOverride(t *testing.T) {
	r := '❱'
	oldw := OfRune(r)
	w := oldw + 1

	Override(r, w)
	if OfRune(r) != w {
		t.Errorf("OfRune(%q) != %d after Override", r, w)
	}
	Unoverride(r)
	if OfRune(r) != oldw {
		t.Errorf("OfRune(%q) != %d after Unoverride", r, oldw)
	}
}

func TestOverride_NegativeWidthRemovesOverride(t *testing.T) {
	Override('x', 2)
	Override('x', -1)
	if OfRune('x') != 1 {
		t.Errorf("Override with negative width did not remove override")
	}
}

func TestTrim(t *testing.T) {
	tt.Test(t, Trim,
		Args("abc", 1).Rets("a"),
		Args("abc", 3).Rets("abc"),
		Args("abc", 4).Rets("abc"),

		Args("你好", 1).Rets(""),
		Args("你好", 3).Rets("你"),
		Args("你好", 4).Rets("你好"),
	)
}
