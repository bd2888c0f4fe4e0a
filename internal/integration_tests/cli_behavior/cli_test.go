package integration_tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mabruzzo/cholla-scaling/internal/app"
	"github.com/mabruzzo/cholla-scaling/internal/buildtool"
	"github.com/mabruzzo/cholla-scaling/internal/cli"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy path with all flags",
			args: []string{
				"--cholla-dir", "/opt/cholla",
				"--host=frontier",
				"--problem=sound",
				"--problem=adiabatic_disk",
				"--test-dir=/scratch/tests",
				"--inputs-dir=/opt/inputs",
				"--profiles=/opt/profiles.hcl",
				"--max-procs=64",
				"--min-procs=2",
				"--make-jobs=8",
				"--launcher=srun -n {nproc}",
				"--log-level=debug",
				"--log-format=text",
			},
			expectedConfig: &app.Config{
				ChollaDir:    "/opt/cholla",
				Host:         "frontier",
				Problems:     []string{"sound", "adiabatic_disk"},
				TestDir:      "/scratch/tests",
				InputsDir:    "/opt/inputs",
				ProfilesPath: "/opt/profiles.hcl",
				MaxProcs:     64,
				MinProcs:     2,
				MakeJobs:     buildtool.BoundedJobs(8),
				Launcher:     "srun -n {nproc}",
				LogFormat:    "text",
				LogLevel:     "debug",
			},
		},
		{
			name: "Defaults",
			args: []string{
				"--cholla-dir", "/opt/cholla",
				"--host", "frontier",
				"--problem", "sound",
				"--max-procs", "16",
			},
			expectedConfig: &app.Config{
				ChollaDir: "/opt/cholla",
				Host:      "frontier",
				Problems:  []string{"sound"},
				TestDir:   ".",
				InputsDir: "problems",
				MaxProcs:  16,
				MinProcs:  1,
				MakeJobs:  buildtool.SerialJobs,
				Launcher:  "mpirun -np {nproc}",
				LogFormat: "json",
				LogLevel:  "info",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:       "No arguments triggers clean exit with usage",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:      "Missing required cholla-dir returns an error",
			args:      []string{"--host=h", "--problem=sound", "--max-procs=4"},
			expectErr: true,
		},
		{
			name:      "Missing problems returns an error",
			args:      []string{"--cholla-dir=/c", "--host=h", "--max-procs=4"},
			expectErr: true,
		},
		{
			name:      "Non-positive ceiling returns an error",
			args:      []string{"--cholla-dir=/c", "--host=h", "--problem=sound", "--max-procs=0"},
			expectErr: true,
		},
		{
			name:      "Invalid make-jobs returns an error",
			args:      []string{"--cholla-dir=/c", "--host=h", "--problem=sound", "--max-procs=4", "--make-jobs=-1"},
			expectErr: true,
		},
		{
			name:      "Launcher without placeholder returns an error",
			args:      []string{"--cholla-dir=/c", "--host=h", "--problem=sound", "--max-procs=4", "--launcher=mpirun"},
			expectErr: true,
		},
		{
			name:      "Invalid log level returns an error",
			args:      []string{"--cholla-dir=/c", "--host=h", "--problem=sound", "--max-procs=4", "--log-level=foo"},
			expectErr: true,
		},
		{
			name:      "Invalid log format returns an error",
			args:      []string{"--cholla-dir=/c", "--host=h", "--problem=sound", "--max-procs=4", "--log-format=yaml"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			appConfig, shouldExit, err := cli.Parse(tc.args, out)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				_, isExitError := err.(*cli.ExitError)
				require.True(t, isExitError, "Expected error to be of type ExitError")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, appConfig, cmp.AllowUnexported(buildtool.Jobs{})); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
