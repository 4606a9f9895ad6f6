package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/deskcalc"
	"github.com/zephyrtronium/deskcalc/internal/session"
)

func TestHistoryMarkdown(t *testing.T) {
	assert.Equal(t, "# History\n\n_No calculations yet._\n", HistoryMarkdown(nil))

	md := HistoryMarkdown([]session.Entry{
		{Expr: "12+7", Result: 19, Text: "19"},
		{Expr: "sqrt16", Result: 4, Text: "4"},
	})
	assert.Equal(t, "# History\n\n1. `12+7 = 19`\n2. `sqrt16 = 4`\n", md)
}

func TestOpsMarkdown(t *testing.T) {
	md := OpsMarkdown()
	for _, op := range deskcalc.Ops() {
		assert.Contains(t, md, "| `"+op.String()+"` |", "missing %v", op)
	}
	assert.Contains(t, md, "| `-7%3` | -1 |")
	assert.Contains(t, md, "| `2^10` | 1024 |")
	assert.Contains(t, md, "| `sin30` | 0.49999999999999994 |")
	assert.NotContains(t, md, "error")
}

func TestRenderer(t *testing.T) {
	render, err := NewRenderer(60)
	require.NoError(t, err)
	out, err := render(HistoryMarkdown([]session.Entry{{Expr: "1+1", Result: 2, Text: "2"}}))
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "1+1 = 2"), "%q", out)
}
