// Package cliout provides consistent styled output for the desktop CLI,
// with ANSI colors disabled automatically when stdout is not a terminal or
// NO_COLOR is set.
package cliout

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ANSI style codes.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Unicode symbols for CLI output.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolArrow   = "→"
)

var (
	colorOnce    sync.Once
	colorEnabled bool
)

// ColorEnabled reports whether styled output is active.
func ColorEnabled() bool {
	colorOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			return
		}
		colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))
	})
	return colorEnabled
}

func style(code, s string) string {
	if !ColorEnabled() {
		return s
	}
	return code + s + reset
}

// Header prints a bold section header.
func Header(title string) {
	fmt.Println(style(bold, title))
}

// Label prints an aligned name/value pair.
func Label(name, value string) {
	fmt.Printf("  %s %s\n", style(dim, name+":"), value)
}

// Success prints a message with a check mark.
func Success(msg string) {
	fmt.Printf("%s %s\n", style(green, SymbolCheck), msg)
}

// Warning prints a message with a warning sign.
func Warning(msg string) {
	fmt.Printf("%s %s\n", style(yellow, SymbolWarning), msg)
}

// Errorf prints a formatted error message with a cross mark to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", style(red, SymbolCross), fmt.Sprintf(format, args...))
}

// Info prints an informational message with an arrow.
func Info(msg string) {
	fmt.Printf("%s %s\n", style(cyan, SymbolArrow), msg)
}
