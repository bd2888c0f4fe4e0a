package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mabruzzo/cholla-scaling/internal/app"
	"github.com/mabruzzo/cholla-scaling/internal/buildtool"
)

// HarnessOptions configures one end-to-end scaffold run against a fabricated
// Cholla checkout and inputs tree.
type HarnessOptions struct {
	// Problems are the problem names requested on the command line.
	Problems []string
	// Inputs describes the inputs tree: for each problem directory name,
	// the list of file names to create inside it. Contents are filler.
	Inputs map[string][]string
	// MaxProcs is the processor ceiling; defaults to 4.
	MaxProcs int
	// MinProcs is the generated-case floor; defaults to 0.
	MinProcs int
	// Jobs is the make-jobs flag value; defaults to "none".
	Jobs string
	// Launcher overrides the launch template; defaults to the mpirun one.
	Launcher string
	// ProfilesHCL, when non-empty, is written to a profiles.hcl file and
	// passed to the app.
	ProfilesHCL string
	// PreexistingTargets are test-directory names created before the run,
	// to provoke preflight conflicts.
	PreexistingTargets []string
	// Runner substitutes the recording fake; a fresh one is used when nil.
	Runner *RecordingRunner
}

// HarnessResult holds the outcomes of an end-to-end run.
type HarnessResult struct {
	Err       error
	LogOutput string
	TestDir   string
	ChollaDir string
	InputsDir string
	Runner    *RecordingRunner
	App       *app.App
}

// RunScaffoldTest provides a standardized harness: it fabricates a Cholla
// checkout (builds/ and bin/ directories) plus the requested inputs tree in
// a temp dir, then constructs and runs the app end to end.
func RunScaffoldTest(t *testing.T, opts HarnessOptions) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	chollaDir := filepath.Join(tmpDir, "cholla")
	testDir := filepath.Join(tmpDir, "tests")
	inputsDir := filepath.Join(tmpDir, "problems")
	require.NoError(t, os.MkdirAll(filepath.Join(chollaDir, "builds"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(chollaDir, "bin"), 0o755))
	require.NoError(t, os.MkdirAll(testDir, 0o755))

	for problem, files := range opts.Inputs {
		dir := filepath.Join(inputsDir, problem)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		for _, name := range files {
			err := os.WriteFile(filepath.Join(dir, name), []byte("# placeholder\n"), 0o644)
			require.NoError(t, err)
		}
	}

	for _, name := range opts.PreexistingTargets {
		require.NoError(t, os.MkdirAll(filepath.Join(testDir, name), 0o755))
	}

	profilesPath := ""
	if opts.ProfilesHCL != "" {
		profilesPath = filepath.Join(tmpDir, "profiles.hcl")
		require.NoError(t, os.WriteFile(profilesPath, []byte(opts.ProfilesHCL), 0o644))
	}

	jobsSpec := opts.Jobs
	if jobsSpec == "" {
		jobsSpec = "none"
	}
	jobs, err := buildtool.ParseJobs(jobsSpec)
	require.NoError(t, err)

	launcher := opts.Launcher
	if launcher == "" {
		launcher = "mpirun -np {nproc}"
	}
	maxProcs := opts.MaxProcs
	if maxProcs == 0 {
		maxProcs = 4
	}

	cfg, err := app.NewConfig(app.Config{
		ChollaDir:    chollaDir,
		Host:         "testhost",
		Problems:     opts.Problems,
		TestDir:      testDir,
		InputsDir:    inputsDir,
		ProfilesPath: profilesPath,
		MaxProcs:     maxProcs,
		MinProcs:     opts.MinProcs,
		MakeJobs:     jobs,
		Launcher:     launcher,
		LogFormat:    "text",
		LogLevel:     "debug",
	})
	require.NoError(t, err)

	runner := opts.Runner
	if runner == nil {
		runner = &RecordingRunner{}
	}

	logBuffer := &SafeBuffer{}
	result := &HarnessResult{
		TestDir:   testDir,
		ChollaDir: chollaDir,
		InputsDir: inputsDir,
		Runner:    runner,
	}

	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		result.App = app.NewApp(logBuffer, cfg, runner)
	}()

	if panicErr != nil {
		result.Err = fmt.Errorf("application startup panicked | %v", panicErr)
		result.LogOutput = logBuffer.String()
		return result
	}

	result.Err = result.App.Run(context.Background())
	result.LogOutput = logBuffer.String()

	if os.Getenv("CHSC_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}

	return result
}

// StockInputs returns an Inputs entry with the canonical two artifact files
// for a problem: a hydro build-variant descriptor and a parameter file.
func StockInputs(problems ...string) map[string][]string {
	inputs := make(map[string][]string, len(problems))
	for _, problem := range problems {
		inputs[problem] = []string{"make.type.hydro", problem + ".txt"}
	}
	return inputs
}
