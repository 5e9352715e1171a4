// Package types defines the public, dependency-free vocabulary of lnkkit:
// typed errors with stable categories, the shell link flag sets, and the
// small enumerations (show command, hot key, drive type) a decoded link
// exposes.
//
// Design goals:
//   - Typed flag sets instead of loose integer constants.
//   - Lenient enums: unknown stored values map to a documented default.
//   - Typed errors with stable categories (malformed input / source).
//
// This package has no dependencies beyond the standard library.
package types
