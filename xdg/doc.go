// Package xdg resolves the base directories defined by the XDG Base
// Directory Specification from the process environment.
//
// Each lookup is a pure function over environment variables: a set,
// non-empty XDG variable is returned exactly as found, with no trimming,
// normalization, tilde expansion, or existence checks. When a variable is
// unset the well-known home-relative default is constructed from HOME
// (or USERPROFILE on Windows). No directories are ever created.
//
// The search-path lookups (DataDirs, ConfigDirs) split their variables on
// ":" and keep empty segments, matching the naive split semantics most
// XDG consumers use. When unset they return the defaults from the
// specification, which are POSIX-style paths on every platform; mapping
// XDG onto native Windows or macOS conventions is deliberately out of
// scope.
//
// The only failure mode is ErrNoHomeDir, returned by the -Home lookups
// when a default must be built and neither HOME nor (on Windows)
// USERPROFILE is set:
//
//	dir, err := xdg.ConfigHome()
//	if errors.Is(err, xdg.ErrNoHomeDir) {
//	    // no usable home directory in the environment
//	}
package xdg
