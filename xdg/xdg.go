// Copyright (c) Toit contributors. All rights reserved.
// Licensed under the MIT License.

package xdg

import (
	"errors"
	"os"
	"runtime"
	"strings"
)

// Environment variable names defined by the XDG Base Directory Specification.
const (
	EnvDataHome   = "XDG_DATA_HOME"
	EnvDataDirs   = "XDG_DATA_DIRS"
	EnvConfigHome = "XDG_CONFIG_HOME"
	EnvConfigDirs = "XDG_CONFIG_DIRS"
	EnvStateHome  = "XDG_STATE_HOME"
	EnvCacheHome  = "XDG_CACHE_HOME"
)

// ErrNoHomeDir is returned when a fallback path must be constructed but no
// home directory can be determined from the environment.
var ErrNoHomeDir = errors.New("could not determine home directory")

// DataHome returns $XDG_DATA_HOME, defaulting to ~/.local/share.
func DataHome() (string, error) {
	return resolveHome(runtime.GOOS, EnvDataHome, ".local/share")
}

// ConfigHome returns $XDG_CONFIG_HOME, defaulting to ~/.config.
func ConfigHome() (string, error) {
	return resolveHome(runtime.GOOS, EnvConfigHome, ".config")
}

// StateHome returns $XDG_STATE_HOME, defaulting to ~/.local/state.
func StateHome() (string, error) {
	return resolveHome(runtime.GOOS, EnvStateHome, ".local/state")
}

// CacheHome returns $XDG_CACHE_HOME, defaulting to ~/.cache.
func CacheHome() (string, error) {
	return resolveHome(runtime.GOOS, EnvCacheHome, ".cache")
}

// DataDirs returns the $XDG_DATA_DIRS search path, defaulting to
// ["/usr/local/share", "/usr/share"].
func DataDirs() []string {
	return resolveDirs(EnvDataDirs, []string{"/usr/local/share", "/usr/share"})
}

// ConfigDirs returns the $XDG_CONFIG_DIRS search path, defaulting to
// ["/etc/xdg"].
func ConfigDirs() []string {
	return resolveDirs(EnvConfigDirs, []string{"/etc/xdg"})
}

// resolveHome returns the environment variable verbatim when set, otherwise
// builds home + separator + suffix. The suffix always uses forward slashes;
// only the joining separator is platform dependent.
func resolveHome(goos, envVar, suffix string) (string, error) {
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}

	home, err := homeDir(goos)
	if err != nil {
		return "", err
	}

	return home + separator(goos) + suffix, nil
}

// homeDir reads HOME, falling back to USERPROFILE on Windows. It never
// consults the filesystem or the OS user database.
func homeDir(goos string) (string, error) {
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}

	if goos == "windows" {
		if home := os.Getenv("USERPROFILE"); home != "" {
			return home, nil
		}
	}

	return "", ErrNoHomeDir
}

func separator(goos string) string {
	if goos == "windows" {
		return `\`
	}
	return "/"
}

// resolveDirs splits the environment variable on ":" when set, preserving
// empty segments and original order, otherwise returns a copy of defaults.
func resolveDirs(envVar string, defaults []string) []string {
	if v := os.Getenv(envVar); v != "" {
		return strings.Split(v, ":")
	}

	dirs := make([]string, len(defaults))
	copy(dirs, defaults)
	return dirs
}
