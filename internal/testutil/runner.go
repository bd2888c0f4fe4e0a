package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mabruzzo/cholla-scaling/internal/buildtool"
)

// RecordingRunner is a buildtool.Runner fake. It records every command it is
// handed and, for a successful main build command, fabricates the binary the
// real make would have dropped under bin/ so the pipeline's copy step finds
// something to pick up.
type RecordingRunner struct {
	mu       sync.Mutex
	commands []buildtool.Command

	// Err, when set, is returned from every Run call to simulate a failing
	// external build.
	Err error
}

// Run implements the buildtool.Runner interface.
func (r *RecordingRunner) Run(ctx context.Context, cmd buildtool.Command) error {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	return r.fabricateBinary(cmd)
}

// Commands returns a snapshot of the commands recorded so far.
func (r *RecordingRunner) Commands() []buildtool.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]buildtool.Command(nil), r.commands...)
}

// fabricateBinary writes a stub cholla.<maketype>.<machine> file exactly
// where the real build would leave it. Commands that aren't a main make
// invocation (e.g. make clean) are recorded but produce nothing.
func (r *RecordingRunner) fabricateBinary(cmd buildtool.Command) error {
	if len(cmd.Args) == 0 || cmd.Args[0] != "make" {
		return nil
	}

	var maketype, machine string
	for _, arg := range cmd.Args[1:] {
		if v, ok := strings.CutPrefix(arg, "TYPE="); ok {
			maketype = v
		}
		if v, ok := strings.CutPrefix(arg, "MACHINE="); ok {
			machine = v
		}
	}
	if maketype == "" || machine == "" {
		return nil
	}

	binDir := filepath.Join(cmd.Dir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("cholla.%s.%s", maketype, machine)
	return os.WriteFile(filepath.Join(binDir, name), []byte("#!/bin/sh\n"), 0o755)
}
