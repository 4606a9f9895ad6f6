package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/deskcalc/internal/buildinfo"
	"github.com/zephyrtronium/deskcalc/internal/session"
	"github.com/zephyrtronium/deskcalc/internal/tui"
)

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions line by line",
		Long: "Read one expression per line and print its result.\n" +
			"Commands: :history shows every result so far, :ops lists operations, :quit exits.",
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.repl().run(a.in)
		},
	}
}

type repl struct {
	sess   *session.Session
	out    *termenv.Output
	accent termenv.Color
	errc   termenv.Color
	render func(string) (string, error)
}

func (a *app) repl() *repl {
	out := termenv.NewOutput(a.out)
	return &repl{
		sess:   a.sess,
		out:    out,
		accent: out.Color(a.cfg.Theme.Accent),
		errc:   out.Color(a.cfg.Theme.Error),
		render: a.renderer(),
	}
}

// run reads lines from in until EOF or :quit.
func (r *repl) run(in io.Reader) error {
	fmt.Fprintln(r.out, r.out.String("deskcalc "+buildinfo.Version).Bold().Foreground(r.accent))
	fmt.Fprintln(r.out, r.out.String("Type an expression such as 12+7 or sin30. :help for commands.").Faint())
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(r.out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":history":
			r.markdown(tui.HistoryMarkdown(r.sess.History()))
			continue
		case ":ops":
			r.markdown(tui.OpsMarkdown())
			continue
		case ":help":
			fmt.Fprintln(r.out, ":history  show every result so far")
			fmt.Fprintln(r.out, ":ops      list operations")
			fmt.Fprintln(r.out, ":quit     exit")
			continue
		}
		r.sess.SetDisplay(line)
		o := r.sess.Submit()
		if o.Err != nil {
			fmt.Fprintln(r.out, r.out.String(o.Message).Foreground(r.errc))
			continue
		}
		fmt.Fprintln(r.out, r.out.String("= "+o.Entry.Text).Foreground(r.accent))
	}
}

func (r *repl) markdown(md string) {
	if r.render != nil {
		if s, err := r.render(md); err == nil {
			md = s
		}
	}
	fmt.Fprint(r.out, md)
}
