package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	stringwidth "github.com/robhz786/string-width"
)

type rootFlags struct {
	limit   int
	lax     bool
	pos     bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "strwidth [text...]",
		Short: "Report the monospace display width of text",
		Long: `strwidth measures how many terminal columns a string occupies.

Text is taken from the command-line arguments, joined by single spaces, or
from stdin when no arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWidth(cmd, f, args)
		},
	}

	cmd.PersistentFlags().IntVar(&f.limit, "limit", 1<<30, "stop counting once this many columns are used")
	cmd.PersistentFlags().BoolVar(&f.lax, "lax-surrogates", false, "pass isolated UTF-16 surrogates through instead of replacing them")
	cmd.PersistentFlags().BoolVar(&f.pos, "pos", false, "also report the byte offset at which the limit was reached")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runWidth(cmd *cobra.Command, f *rootFlags, args []string) error {
	if f.verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if f.limit < 0 {
		return errors.New("--limit must not be negative")
	}

	policy := stringwidth.SurrogateStrict
	if f.lax {
		policy = stringwidth.SurrogateLax
	}

	lines, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, line := range lines {
		if f.pos {
			width, pos := stringwidth.WidthAndPos(f.limit, line, policy)
			fmt.Fprintf(out, "%d\t%d\t%s\n", width, pos, line)
			continue
		}
		width := stringwidth.Width(f.limit, line, policy)
		fmt.Fprintf(out, "%d\t%s\n", width, line)
	}
	return nil
}

// readInput returns one string per line to measure: the joined command-line
// arguments as a single line, or one line per line of stdin when no
// arguments were given.
func readInput(stdin io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		line := args[0]
		for _, a := range args[1:] {
			line += " " + a
		}
		return []string{line}, nil
	}

	var lines []string
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
