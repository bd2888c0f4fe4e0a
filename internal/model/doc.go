// Package model defines the value types shared across the scaling-test
// scaffolder: the ProblemCase geometry snapshot, the closed OriginPolicy and
// ScaleRule enums that govern how a case grows, and the ProblemProfile that
// binds a named test problem to its scaling behavior and base geometry.
package model
