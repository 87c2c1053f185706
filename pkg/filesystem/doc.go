// Package filesystem provides filesystem implementations for nue.
//
// This package contains implementations of the types.FS interface (the
// real OS filesystem and an afero-backed one used by tests) plus the small
// file helpers shared by the copier and the resolver.
package filesystem
