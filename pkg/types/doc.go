// Package types defines the core types and interfaces used throughout nue:
// the PackageAtom describing one package to resolve, the process-wide
// RunSettings, and the FS abstraction every filesystem-touching component
// is written against.
package types
