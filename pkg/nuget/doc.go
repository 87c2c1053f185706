// Package nuget reads and writes the NuGet XML files nue deals with:
// the NuGet.config handed to the installer, the .nuspec manifest found in
// every extracted package, and packages.config lists used as run input.
package nuget
