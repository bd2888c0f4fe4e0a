package buildtool

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

const outputIndent = "    "

// fallbackWidth is used when the output is not a terminal.
const fallbackWidth = 80

// StreamRunner is the production Runner. It announces each command, streams
// the child's stdout back through Out — wrapped to the terminal width and
// indented so build noise reads as a quoted block — and reports the return
// code. The child runs to completion; cancellation of ctx kills it.
type StreamRunner struct {
	Out io.Writer
}

// Run implements the Runner interface.
func (r *StreamRunner) Run(ctx context.Context, cmd Command) error {
	if len(cmd.Args) == 0 {
		return errors.New("cannot run an empty command")
	}

	fmt.Fprintf(r.Out, "\nexecuting:\n")
	fmt.Fprintf(r.Out, " -> command: %s\n", strings.Join(cmd.Args, " "))
	if cmd.Dir != "" {
		fmt.Fprintf(r.Out, " -> from: %s\n", cmd.Dir)
	}

	wrapAt := r.width() - len(outputIndent)

	child := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...)
	child.Dir = cmd.Dir
	stdout, err := child.StdoutPipe()
	if err != nil {
		return err
	}

	if err := child.Start(); err != nil {
		return fmt.Errorf("cannot start %q: %w", cmd.Args[0], err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		wrapped := wordwrap.WrapString(scanner.Text(), uint(wrapAt))
		for _, line := range strings.Split(wrapped, "\n") {
			fmt.Fprintf(r.Out, "%s%s\n", outputIndent, line)
		}
	}
	scanErr := scanner.Err()

	waitErr := child.Wait()
	fmt.Fprintf(r.Out, "returncode: %d\n", child.ProcessState.ExitCode())

	if waitErr != nil {
		return fmt.Errorf("%q exited with an error: %w", strings.Join(cmd.Args, " "), waitErr)
	}
	return scanErr
}

// width returns the column count of the output terminal, or fallbackWidth
// when Out is not one.
func (r *StreamRunner) width() int {
	type fder interface{ Fd() uintptr }
	if f, ok := r.Out.(fder); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > len(outputIndent)+1 {
			return w
		}
	}
	return fallbackWidth
}
