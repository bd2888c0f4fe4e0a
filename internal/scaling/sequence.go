package scaling

import (
	"fmt"

	"github.com/mabruzzo/cholla-scaling/internal/model"
)

// Options bounds a generated case sequence.
type Options struct {
	// MaxProcs is the processor ceiling. The first derived case whose total
	// process count exceeds it ends the sequence and is not produced; a
	// case exactly at the ceiling is still produced.
	MaxProcs int
	// MinGeneratedProcs is a floor applied to derived cases only: a derived
	// case below it is skipped silently and doubling continues. The base
	// case is exempt.
	MinGeneratedProcs int
	// IncludeBase produces the unmodified base case first.
	IncludeBase bool
}

// Sequence is a lazy, finite, non-restartable iterator over the cases of one
// scaling run, in strictly increasing total-process order.
type Sequence struct {
	policy model.OriginPolicy
	rule   model.ScaleRule
	opts   Options

	cur         model.ProblemCase
	pendingBase bool
	done        bool
	err         error
}

// Generate validates its preconditions and returns a Sequence that starts
// from base and repeatedly applies Advance until the processor ceiling is
// crossed. Preconditions are checked before any case is produced:
// opts.MaxProcs must be at least 1, opts.MinGeneratedProcs must lie in
// [0, MaxProcs], and the base case itself must fit under the ceiling.
//
// Termination is guaranteed: every step doubles at least one process-grid
// axis, so the total strictly increases until it crosses the finite ceiling.
func Generate(base model.ProblemCase, policy model.OriginPolicy, rule model.ScaleRule, opts Options) (*Sequence, error) {
	if opts.MaxProcs < 1 {
		return nil, fmt.Errorf("max processes must be at least 1, got %d", opts.MaxProcs)
	}
	if opts.MinGeneratedProcs < 0 || opts.MinGeneratedProcs > opts.MaxProcs {
		return nil, fmt.Errorf("min generated processes must lie in [0, %d], got %d", opts.MaxProcs, opts.MinGeneratedProcs)
	}
	if total := base.TotalProcs(); total > opts.MaxProcs {
		return nil, fmt.Errorf("base case needs %d processes, exceeding the ceiling of %d", total, opts.MaxProcs)
	}

	return &Sequence{
		policy:      policy,
		rule:        rule,
		opts:        opts,
		cur:         base,
		pendingBase: opts.IncludeBase,
	}, nil
}

// Next produces the next case in the sequence. The second return value is
// false once the sequence is exhausted, whether because the ceiling was
// crossed or because a transition failed; Err distinguishes the two.
func (s *Sequence) Next() (model.ProblemCase, bool) {
	if s.done {
		return model.ProblemCase{}, false
	}

	if s.pendingBase {
		s.pendingBase = false
		return s.cur, true
	}

	for {
		next, err := Advance(s.cur, s.policy, s.rule)
		if err != nil {
			s.err = err
			s.done = true
			return model.ProblemCase{}, false
		}
		s.cur = next

		total := next.TotalProcs()
		if total < s.opts.MinGeneratedProcs {
			continue
		}
		if total > s.opts.MaxProcs {
			s.done = true
			return model.ProblemCase{}, false
		}
		return next, true
	}
}

// Err reports the transition failure that ended iteration early, if any. It
// is meaningful once Next has returned false.
func (s *Sequence) Err() error {
	return s.err
}

// Collect drains the remainder of the sequence into a slice. Callers that
// must reject an empty sequence should Collect first and then check Err.
func (s *Sequence) Collect() []model.ProblemCase {
	var cases []model.ProblemCase
	for {
		c, ok := s.Next()
		if !ok {
			return cases
		}
		cases = append(cases, c)
	}
}
