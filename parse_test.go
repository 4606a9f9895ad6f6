package deskcalc_test

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/zephyrtronium/deskcalc"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want deskcalc.Call
	}{
		{"sin", "sin45", deskcalc.Call{Op: deskcalc.OpSin, X: 45}},
		{"cos-neg", "cos-0.5", deskcalc.Call{Op: deskcalc.OpCos, X: -0.5}},
		{"tan", "tan0", deskcalc.Call{Op: deskcalc.OpTan, X: 0}},
		{"sqrt", "sqrt16", deskcalc.Call{Op: deskcalc.OpSqrt, X: 16}},
		{"sqrt-neg", "sqrt-4", deskcalc.Call{Op: deskcalc.OpSqrt, X: -4}},
		{"log", "log100", deskcalc.Call{Op: deskcalc.OpLog, X: 100}},
		{"ln", "ln2.5", deskcalc.Call{Op: deskcalc.OpLn, X: 2.5}},
		{"exp", "exp-1", deskcalc.Call{Op: deskcalc.OpExp, X: -1}},
		{"trimmed", "  sqrt16 \n", deskcalc.Call{Op: deskcalc.OpSqrt, X: 16}},
		{"add", "12+7", deskcalc.Call{Op: deskcalc.OpAdd, X: 12, Y: 7}},
		{"sub-neg-rhs", "5--3", deskcalc.Call{Op: deskcalc.OpSub, X: 5, Y: -3}},
		{"sub-neg-lhs", "-5-3", deskcalc.Call{Op: deskcalc.OpSub, X: -5, Y: 3}},
		{"mul", "-1.5*-2", deskcalc.Call{Op: deskcalc.OpMul, X: -1.5, Y: -2}},
		{"div", "9/3", deskcalc.Call{Op: deskcalc.OpDiv, X: 9, Y: 3}},
		{"mod", "10%3", deskcalc.Call{Op: deskcalc.OpMod, X: 10, Y: 3}},
		{"pow", "2^10", deskcalc.Call{Op: deskcalc.OpPow, X: 2, Y: 10}},
		{"fractions", "0.1+0.2", deskcalc.Call{Op: deskcalc.OpAdd, X: 0.1, Y: 0.2}},
		{"leading-zeros", "007*01.50", deskcalc.Call{Op: deskcalc.OpMul, X: 7, Y: 1.5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := deskcalc.Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("%q: want %+v, got %+v", c.src, c.want, got)
			}
		})
	}
}

func TestParseUnrecognized(t *testing.T) {
	cases := []struct {
		src string
		col int
	}{
		{"", 1},
		{"   ", 1},
		{"12+", 4},
		{"sin", 4},
		{"sin 45", 4},
		{"sin45x", 6},
		{"1+2+3", 4},
		{"(1+2)", 1},
		{"5.", 2},
		{"5.+1", 2},
		{".5+1", 1},
		{"+5", 1},
		{"2*-", 3},
		{"12 + 7", 3},
		{"1e5", 2},
		{"π", 1},
		{"e", 1},
		{"foo5", 1},
		{"SIN45", 1},
		{"asin1", 1},
		{"sqrt(16)", 5},
		{"√16", 1},
		{"5×3", 2},
		{"٣+٤", 1},
	}
	for _, c := range cases {
		_, err := deskcalc.Parse(c.src)
		if err == nil {
			t.Errorf("%q parsed", c.src)
			continue
		}
		var u *deskcalc.UnrecognizedError
		if !errors.As(err, &u) {
			t.Errorf("%q gave %#v, not UnrecognizedError", c.src, err)
			continue
		}
		if u.Text != c.src {
			t.Errorf("%q: error has text %q", c.src, u.Text)
		}
		if u.Pos() != c.col {
			t.Errorf("%q: want column %d, got %d", c.src, c.col, u.Pos())
		}
		if !strings.Contains(err.Error(), strconv.Quote(c.src)) {
			t.Errorf("%q: message %q doesn't name the input", c.src, err.Error())
		}
		if !strings.Contains(err.Error(), "unsupported") {
			t.Errorf("%q: message %q doesn't say unsupported", c.src, err.Error())
		}
		if k := deskcalc.KindOf(err); k != deskcalc.KindUnrecognized {
			t.Errorf("%q: kind %q", c.src, k)
		}
	}
}

func TestParseOperandRange(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)
	cases := []struct {
		src string
		op  deskcalc.Op
		arg int
	}{
		{huge + "+1", deskcalc.OpAdd, 1},
		{"1+-" + huge, deskcalc.OpAdd, 2},
		{"exp" + huge, deskcalc.OpExp, 1},
	}
	for _, c := range cases {
		call, err := deskcalc.Parse(c.src)
		if call.Op != c.op {
			t.Errorf("%.10q...: call op is %v, want %v", c.src, call.Op, c.op)
		}
		var d *deskcalc.DomainError
		if !errors.As(err, &d) {
			t.Errorf("%.10q...: want DomainError, got %v", c.src, err)
			continue
		}
		if d.Op != c.op || d.Arg != c.arg || !math.IsInf(d.X, 0) {
			t.Errorf("%.10q...: wrong error %+v", c.src, d)
		}
	}
}

func TestCallArgs(t *testing.T) {
	cases := []struct {
		call deskcalc.Call
		a, b float64
	}{
		{deskcalc.Call{Op: deskcalc.OpSin, X: 45, Y: 9}, 45 * math.Pi / 180, 0},
		{deskcalc.Call{Op: deskcalc.OpCos, X: 180}, math.Pi, 0},
		{deskcalc.Call{Op: deskcalc.OpTan, X: -90}, -math.Pi / 2, 0},
		{deskcalc.Call{Op: deskcalc.OpSqrt, X: 16, Y: 9}, 16, 0},
		{deskcalc.Call{Op: deskcalc.OpLn, X: 2.5}, 2.5, 0},
		{deskcalc.Call{Op: deskcalc.OpAdd, X: 12, Y: 7}, 12, 7},
		{deskcalc.Call{Op: deskcalc.OpPow, X: 2, Y: 10}, 2, 10},
	}
	for _, c := range cases {
		a, b := c.call.Args()
		if math.Abs(a-c.a) > 1e-15 || b != c.b {
			t.Errorf("%v: want (%g, %g), got (%g, %g)", c.call, c.a, c.b, a, b)
		}
	}
}

func TestCallString(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"sin45", "sin45"},
		{" sqrt16.0 ", "sqrt16"},
		{"5--3", "5--3"},
		{"2.50^2", "2.5^2"},
	}
	for _, c := range cases {
		call, err := deskcalc.Parse(c.src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.src, err)
		}
		if s := call.String(); s != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, s)
		}
	}
}
