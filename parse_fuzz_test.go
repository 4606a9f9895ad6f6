//go:build go1.18
// +build go1.18

package deskcalc_test

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/zephyrtronium/deskcalc"
)

func FuzzParse(f *testing.F) {
	f.Add("ln2.5")
	f.Add("-1.5*-2")
	f.Add("1+2+3")
	f.Add("π")
	f.Fuzz(func(t *testing.T, s string) {
		c, err := deskcalc.Parse(s)
		if err == nil {
			if !c.Op.Valid() {
				t.Errorf("%q: parsed to invalid op %v", s, c.Op)
			}
			return
		}
		var u *deskcalc.UnrecognizedError
		if errors.As(err, &u) && (u.Col < 1 || u.Col > utf8.RuneCountInString(s)+1) {
			t.Errorf("%q: column %d out of range", s, u.Col)
		}
	})
}
