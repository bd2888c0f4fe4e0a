// Package scaffold materializes test directories from generated case
// sequences. It is the orchestration surface around the pure scaling core:
// a batch-wide preflight over the target directories, per-problem artifact
// resolution, directory and symlink creation, the build handoff, and the
// run_tests.sh script.
//
// Filesystem mutations here are not transactional. A failure partway through
// one problem's setup leaves a partially populated directory behind;
// Preflight is the only batch-level guard, which is why it runs across every
// requested problem before the first directory is created.
package scaffold
