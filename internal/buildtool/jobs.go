package buildtool

import (
	"fmt"
	"strconv"
)

type jobsMode int

const (
	jobsSerial jobsMode = iota
	jobsUnbounded
	jobsBounded
)

// Jobs is the parallel-build-job policy forwarded to make: run serially,
// let make spawn freely, or cap it at an explicit job count. The zero value
// runs make serially.
type Jobs struct {
	mode  jobsMode
	count int
}

// SerialJobs runs make with no -j flag.
var SerialJobs = Jobs{mode: jobsSerial}

// UnboundedJobs runs make -j with no job cap.
var UnboundedJobs = Jobs{mode: jobsUnbounded}

// BoundedJobs caps make at n parallel jobs. A non-positive n is a programmer
// error; user input goes through ParseJobs instead.
func BoundedJobs(n int) Jobs {
	if n < 1 {
		panic("job count must be positive")
	}
	return Jobs{mode: jobsBounded, count: n}
}

// ParseJobs converts a flag value into a Jobs policy. Accepted forms are
// "none", "max", or a positive integer.
func ParseJobs(s string) (Jobs, error) {
	switch s {
	case "none":
		return SerialJobs, nil
	case "max":
		return UnboundedJobs, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Jobs{}, fmt.Errorf("invalid make-jobs policy %q: must be 'none', 'max', or a positive integer", s)
	}
	if n < 1 {
		return Jobs{}, fmt.Errorf("make jobs can't be 0 or a negative integer, got %d", n)
	}
	return Jobs{mode: jobsBounded, count: n}, nil
}

// Args returns the flags the policy appends to a make invocation.
func (j Jobs) Args() []string {
	switch j.mode {
	case jobsUnbounded:
		return []string{"-j"}
	case jobsBounded:
		return []string{"-j", strconv.Itoa(j.count)}
	}
	return nil
}

// String implements fmt.Stringer, returning the flag-value spelling.
func (j Jobs) String() string {
	switch j.mode {
	case jobsUnbounded:
		return "max"
	case jobsBounded:
		return strconv.Itoa(j.count)
	}
	return "none"
}
