// Package filesystem provides the filesystem implementations the harness
// materializes fixture trees through: the standard OS filesystem for real
// workspaces and an in-memory filesystem for fast, isolated unit tests.
package filesystem
