package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/deskcalc"
	"github.com/zephyrtronium/deskcalc/internal/keypad"
)

func (a *app) evalCmd() *cobra.Command {
	var (
		inname string
		echo   bool
	)
	cmd := &cobra.Command{
		Use:   "eval [EXPR...]",
		Short: "Evaluate expressions and print their results",
		Long: "Evaluate each argument, or each line of the input file, and print the result.\n" +
			"With no arguments and no --in, expressions are read from stdin, one per line.",
		Example: "  deskcalc eval 12+7 sin30 'sqrt-4'\n  deskcalc eval --in exprs.txt",
		RunE: func(_ *cobra.Command, args []string) error {
			exprs := args
			in, closer, err := infile(inname, a.in, len(args) == 0)
			if err != nil {
				return err
			}
			if in != nil {
				defer closer()
				lines, err := readLines(in)
				if err != nil {
					return err
				}
				exprs = append(lines, args...)
			}
			failed := 0
			for _, expr := range exprs {
				if !a.evalOne(expr, echo) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inname, "in", "", "read expressions from a file, one per line (- for stdin)")
	cmd.Flags().BoolVar(&echo, "echo", false, "print each parsed operation before its result")
	return cmd
}

// evalOne evaluates one expression through the session and prints the
// result to stdout or the error to stderr. It reports whether it succeeded.
func (a *app) evalOne(expr string, echo bool) bool {
	if echo {
		if call, err := deskcalc.Parse(keypad.ExpandConstants(expr)); err == nil {
			fmt.Fprintf(a.out, "%v : ", call)
		}
	}
	a.sess.SetDisplay(expr)
	o := a.sess.Submit()
	if o.Err != nil {
		fmt.Fprintf(a.errOut, "%s: %s\n", strings.TrimSpace(expr), o.Message)
		return false
	}
	fmt.Fprintln(a.out, o.Entry.Text)
	return true
}

// infile opens the named input. An empty name means std if useStd is set,
// and no input otherwise. "-" is always std.
func infile(name string, std io.Reader, useStd bool) (io.Reader, func() error, error) {
	nop := func() error { return nil }
	switch {
	case name != "" && name != "-":
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	case name == "-", useStd:
		return std, nop, nil
	}
	return nil, nop, nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
