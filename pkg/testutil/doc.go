// Package testutil provides fixtures for testing nue components.
//
// Key components:
//   - WriteFiles: seeds a directory of a types.FS in one call
//   - WritePackage: lays out an extracted NuGet package (nuspec and lib/ folders)
//   - ErrorFS: wraps a types.FS and injects errors for chosen paths
//
// Tests should prefer filesystem.NewMemory() and only touch the real
// filesystem when the code under test shells out or needs permissions.
package testutil
