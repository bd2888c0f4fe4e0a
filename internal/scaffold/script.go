package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mabruzzo/cholla-scaling/internal/model"
)

// RunScriptName is the launch script written into every test directory.
const RunScriptName = "run_tests.sh"

// nprocPlaceholder is the token in a launcher template that the case's total
// process count replaces.
const nprocPlaceholder = "{nproc}"

var axisNames = [3]string{"x", "y", "z"}

// WriteRunScript writes the run script for one problem into dir: one launch
// line per case, each overriding every geometry field on every axis and
// redirecting output to a per-case log named by problem and process count.
// The script cds into the test directory first so it can run from anywhere.
func WriteRunScript(dir, launcher, binary, parfile, problem string, cases []model.ProblemCase) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("# move to directory filled with tests!\n")
	fmt.Fprintf(&sb, "cd %s\n", absDir)
	sb.WriteString("\n# run each test\n")
	for _, c := range cases {
		sb.WriteString(launchLine(launcher, binary, parfile, problem, c))
		sb.WriteByte('\n')
	}
	sb.WriteString("\n# done with tests. return to original directory\ncd -\n")

	return os.WriteFile(filepath.Join(dir, RunScriptName), []byte(sb.String()), 0o755)
}

// launchLine assembles one case's invocation: the launcher with the process
// count substituted, the binary, the parameter file, then the per-axis
// overrides for left edge, width, cell count, and partition count.
func launchLine(launcher, binary, parfile, problem string, c model.ProblemCase) string {
	nproc := strconv.Itoa(c.TotalProcs())
	parts := []string{
		strings.ReplaceAll(launcher, nprocPlaceholder, nproc),
		binary,
		parfile,
	}
	for i, ax := range axisNames {
		parts = append(parts, fmt.Sprintf("%smin=%s", ax, formatReal(c.GridLeft[i])))
	}
	for i, ax := range axisNames {
		parts = append(parts, fmt.Sprintf("%slen=%s", ax, formatReal(c.GridWidth[i])))
	}
	for i, ax := range axisNames {
		parts = append(parts, fmt.Sprintf("n%s=%d", ax, c.GridShape[i]))
	}
	for i, ax := range axisNames {
		parts = append(parts, fmt.Sprintf("n_proc_%s=%d", ax, c.ProcGrid[i]))
	}
	parts = append(parts, "&>", fmt.Sprintf("%s_N%s.log", problem, nproc))
	return strings.Join(parts, " ")
}

func formatReal(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
