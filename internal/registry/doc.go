// Package registry holds the fixed mapping from problem name to
// ProblemProfile.
//
// The registry is populated once during application startup — the builtin
// problems first, then any user-supplied .hcl profile files — and is
// read-only for the remainder of the process. It is passed by reference into
// whatever needs a lookup; there is no module-level singleton and no dynamic
// registration after startup.
package registry
