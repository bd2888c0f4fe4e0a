package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mabruzzo/cholla-scaling/internal/buildtool"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ChollaDir    string // the Cholla checkout to build in
	Host         string // machine name forwarded to make as MACHINE=
	Problems     []string
	TestDir      string // root for generated test directories
	InputsDir    string // root holding one artifact directory per problem
	ProfilesPath string // optional extra problem profiles (.hcl file or dir)

	MaxProcs int
	MinProcs int
	MakeJobs buildtool.Jobs
	Launcher string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it, or an error describing the
// first violated requirement.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ChollaDir == "" {
		return nil, errors.New("ChollaDir is a required configuration field and cannot be empty")
	}
	if cfg.Host == "" {
		return nil, errors.New("Host is a required configuration field and cannot be empty")
	}
	if len(cfg.Problems) == 0 {
		return nil, errors.New("at least one problem name is required")
	}
	if cfg.MaxProcs < 1 {
		return nil, fmt.Errorf("MaxProcs must be a positive integer, got %d", cfg.MaxProcs)
	}
	if cfg.MinProcs < 0 || cfg.MinProcs > cfg.MaxProcs {
		return nil, fmt.Errorf("MinProcs must lie in [0, %d], got %d", cfg.MaxProcs, cfg.MinProcs)
	}
	if !strings.Contains(cfg.Launcher, "{nproc}") {
		return nil, errors.New("Launcher template must contain the {nproc} placeholder")
	}

	return &cfg, nil
}
