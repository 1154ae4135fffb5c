// Command loopcount reads an Infinite Loop puzzle from standard input,
// prints every solution, and reports how many were found.
//
// Usage:
//
//	loopcount < puzzle.txt
//
// Exit status is 0 on success and 1 when the puzzle does not parse or a
// solution fails to render.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pipetwist/infiniteloop/board"
	"github.com/pipetwist/infiniteloop/render"
	"github.com/pipetwist/infiniteloop/solve"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "loopcount:", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	input, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	p, err := board.Parse(string(input))
	if err != nil {
		return err
	}

	count := 0
	var renderErr error
	err = solve.Solve(p, solve.ConsumerFunc(func(s *board.Solution) solve.Signal {
		text, rerr := render.Render(s)
		if rerr != nil {
			renderErr = rerr
			return solve.Stop
		}
		count++
		fmt.Fprintf(out, "-- SOLUTION --\n%s\n", text)
		return solve.Continue
	}))
	if renderErr != nil {
		return renderErr
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d solution(s)\n", count)
	return nil
}
