package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mabruzzo/cholla-scaling/internal/app"
	"github.com/mabruzzo/cholla-scaling/internal/buildtool"
	"github.com/mabruzzo/cholla-scaling/internal/cli"
)

// main is the entrypoint for the cholla-scaling application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. App construction panics on critical startup errors (such as an
// unparseable profiles file), so run recovers and reports them as ordinary
// errors.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked | %v", r)
		}
	}()

	runner := &buildtool.StreamRunner{Out: outW}
	scalingApp := app.NewApp(outW, appConfig, runner)

	return scalingApp.Run(context.Background())
}
