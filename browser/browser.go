// Copyright (c) Toit contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/toitlang/pkg-desktop/logutil"
)

const (
	// DefaultTimeout bounds how long a launched opener command may run
	// before it is terminated. Openers normally hand off to the browser
	// and exit within milliseconds; the timeout only matters when the
	// helper itself hangs.
	DefaultTimeout = 10 * time.Second

	// termGracePeriod is how long a process gets between SIGTERM and
	// SIGKILL.
	termGracePeriod = time.Second
)

// Open attempts to open url in the OS default browser using DefaultTimeout.
// See OpenWithTimeout for the contract.
func Open(url string) {
	OpenWithTimeout(url, DefaultTimeout)
}

// OpenWithTimeout attempts to open url in the OS default browser.
//
// The attempt is best effort: the function returns once the opener command
// has been spawned (or the spawn has failed) and never reports an error.
// Unsupported platforms, missing opener commands, and misbehaving processes
// all result in a silent no-op; callers cannot distinguish "browser opened"
// from "attempt failed". Swallowed failures are logged at debug level.
//
// The spawned command keeps running detached from the caller, bounded by
// timeout: if it has not exited by then it is sent SIGTERM, and SIGKILL one
// second later if it still has not exited.
func OpenWithTimeout(url string, timeout time.Duration) {
	log := logutil.NewLogger("browser")

	name, args, err := platformCommand(runtime.GOOS, url)
	if err != nil {
		log.Debug("cannot open browser", "error", err)
		return
	}

	if _, err := launch(name, args, timeout, termGracePeriod); err != nil {
		log.Debug("could not launch browser opener", "command", name, "error", err)
	}
}

// platformCommand selects the opener command line for the given platform.
// Platforms outside the known set are a recognized failure, not a guess.
func platformCommand(goos, url string) (name string, args []string, err error) {
	switch goos {
	case "linux":
		return "xdg-open", []string{url}, nil
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "cmd", []string{"/c", "start", escapeWindowsURL(url)}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// escapeWindowsURL escapes "&" for the cmd "start" builtin, which otherwise
// treats it as a command separator. Other shell-significant characters are
// deliberately left alone to match the established behavior.
func escapeWindowsURL(url string) string {
	return strings.ReplaceAll(url, "&", "^&")
}

// launch spawns the opener and hands its lifetime to detached goroutines:
// two draining stdout/stderr so the child can never block on a full pipe,
// and one supervising termination. It returns as soon as the process has
// started. The returned Cmd is for observation only; the goroutines own it.
func launch(name string, args []string, timeout, grace time.Duration) (*exec.Cmd, error) {
	cmd := exec.Command(name, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	// No input is ever sent to the opener.
	_ = stdin.Close()

	go drain(stdout)
	go drain(stderr)
	go supervise(cmd, timeout, grace)

	return cmd, nil
}

// drain discards a stream until EOF. Read errors are ignored; the pipe is
// closed underneath us once the supervisor reaps the process.
func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, r)
}

// supervise bounds the process lifetime: wait up to timeout, then escalate
// SIGTERM -> grace -> SIGKILL. Signal delivery errors are ignored (the
// process may have just exited, or the platform may not support the
// signal). The child is always reaped.
func supervise(cmd *exec.Cmd, timeout, grace time.Duration) {
	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-time.After(timeout):
	}

	_ = cmd.Process.Signal(syscall.SIGTERM)

	select {
	case <-done:
		return
	case <-time.After(grace):
	}

	_ = cmd.Process.Kill()
	<-done
}
