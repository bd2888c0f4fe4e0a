// Package buildtool drives the external Cholla build. It selects a build
// variant by symlinking its make.type descriptor into the checkout, invokes
// make through a substitutable Runner, and reports the name of the compiled
// binary. Builds run strictly one at a time; a non-zero exit from make is an
// error and aborts the remaining pipeline for that problem.
package buildtool
