// Package procutil provides small cross-platform process inspection
// helpers used by the library and its tests.
package procutil
