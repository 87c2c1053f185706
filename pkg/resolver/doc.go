// Package resolver turns a package description into binaries on disk.
//
// For every package the Resolver runs the external installer into the
// packages directory, finds the extracted package folder, lets the tfm
// package choose one folder under lib/, and copies that folder's binaries
// and documentation into the caller's output directory. Every copied
// binary is recorded in a mapping.Table.
//
// The flow is strictly linear and synchronous. Nothing is rolled back when
// a step fails; whatever the installer or the copier already wrote stays.
package resolver
