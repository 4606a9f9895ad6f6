package tui

import (
	"fmt"
	"strings"

	"github.com/zephyrtronium/deskcalc"
	"github.com/zephyrtronium/deskcalc/internal/session"
)

// HistoryMarkdown lists every entry, oldest first.
func HistoryMarkdown(entries []session.Entry) string {
	var b strings.Builder
	b.WriteString("# History\n\n")
	if len(entries) == 0 {
		b.WriteString("_No calculations yet._\n")
		return b.String()
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. `%s`\n", i+1, e.String())
	}
	return b.String()
}

var opinfo = map[deskcalc.Op][2]string{
	deskcalc.OpSin:  {"sine, degrees", "sin30"},
	deskcalc.OpCos:  {"cosine, degrees", "cos60"},
	deskcalc.OpTan:  {"tangent, degrees", "tan45"},
	deskcalc.OpSqrt: {"square root", "sqrt16"},
	deskcalc.OpLog:  {"base-10 logarithm", "log1000"},
	deskcalc.OpLn:   {"natural logarithm", "ln2.5"},
	deskcalc.OpExp:  {"e to the power", "exp1"},
	deskcalc.OpAdd:  {"addition", "12+7"},
	deskcalc.OpSub:  {"subtraction", "5--3"},
	deskcalc.OpMul:  {"multiplication", "-1.5*4"},
	deskcalc.OpDiv:  {"division", "1/4"},
	deskcalc.OpMod:  {"remainder, sign of the dividend", "-7%3"},
	deskcalc.OpPow:  {"exponentiation", "2^10"},
}

// OpsMarkdown describes every supported operation with a worked example.
func OpsMarkdown() string {
	var b strings.Builder
	b.WriteString("# Operations\n\n")
	b.WriteString("| Op | Meaning | Example | Result |\n|---|---|---|---|\n")
	for _, op := range deskcalc.Ops() {
		info := opinfo[op]
		r, err := deskcalc.Evaluate(info[1])
		res := deskcalc.FormatResult(r)
		if err != nil {
			res = err.Error()
		}
		fmt.Fprintf(&b, "| `%s` | %s | `%s` | %s |\n", op, info[0], info[1], res)
	}
	b.WriteString("\nNumerals are an optional `-`, digits, and an optional `.` with more digits. ")
	b.WriteString("Type `π` or `e` for the constants.\n")
	return b.String()
}
