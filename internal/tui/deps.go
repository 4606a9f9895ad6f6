package tui

import (
	"log/slog"

	"github.com/zephyrtronium/deskcalc/internal/session"
)

// Deps are the collaborators of the interactive calculator.
type Deps struct {
	Session *session.Session
	// Theme defaults to DefaultTheme.
	Theme   *Theme
	// Render turns markdown into terminal text. If nil, markdown is shown as
	// is.
	Render func(string) (string, error)

	Logger *slog.Logger
}
