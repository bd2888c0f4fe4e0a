package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mabruzzo/cholla-scaling/internal/app"
	"github.com/mabruzzo/cholla-scaling/internal/buildtool"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList is a flag.Value that accumulates repeated flag occurrences.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("cholla-scaling", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
cholla-scaling - scaffolds weak-scaling test suites for the Cholla code.

Usage:
  cholla-scaling [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	chollaDirFlag := flagSet.String("cholla-dir", "", "Path to the cholla directory. Required.")
	hostFlag := flagSet.String("host", "", "The name of the host machine, forwarded to make as MACHINE=. Required.")
	var problemFlags stringList
	flagSet.Var(&problemFlags, "problem", "The name of a test problem. Repeat for multiple problems. Required.")
	testDirFlag := flagSet.String("test-dir", ".", "Path to the directory where we will put the tests.")
	inputsDirFlag := flagSet.String("inputs-dir", "problems", "Root directory holding one inputs directory per problem.")
	profilesFlag := flagSet.String("profiles", "", "Optional .hcl file or directory with extra problem profiles.")
	maxProcsFlag := flagSet.Int("max-procs", 0, "Max number of processes. Required.")
	minProcsFlag := flagSet.Int("min-procs", 1, "Skip generated cases below this process count; the base case is exempt.")
	makeJobsFlag := flagSet.String("make-jobs", "none", "Parallel build jobs for make. Options: 'none', 'max', or a positive integer.")
	launcherFlag := flagSet.String("launcher", "mpirun -np {nproc}", "Parallel launcher template; {nproc} is replaced per case.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *chollaDirFlag == "" && *hostFlag == "" && len(problemFlags) == 0 {
		slog.Debug("No arguments provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	makeJobs, err := buildtool.ParseJobs(*makeJobsFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ChollaDir:    *chollaDirFlag,
		Host:         *hostFlag,
		Problems:     problemFlags,
		TestDir:      *testDirFlag,
		InputsDir:    *inputsDirFlag,
		ProfilesPath: *profilesFlag,
		MaxProcs:     *maxProcsFlag,
		MinProcs:     *minProcsFlag,
		MakeJobs:     makeJobs,
		Launcher:     *launcherFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
