// Copyright (c) Toit contributors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toitlang/pkg-desktop/procutil"
)

func TestPlatformCommand(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		url      string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "linux uses xdg-open",
			goos:     "linux",
			url:      "https://example.com",
			wantName: "xdg-open",
			wantArgs: []string{"https://example.com"},
		},
		{
			name:     "darwin uses open",
			goos:     "darwin",
			url:      "https://example.com",
			wantName: "open",
			wantArgs: []string{"https://example.com"},
		},
		{
			name:     "windows uses cmd start",
			goos:     "windows",
			url:      "https://example.com",
			wantName: "cmd",
			wantArgs: []string{"/c", "start", "https://example.com"},
		},
		{
			name:    "plan9 is unsupported",
			goos:    "plan9",
			url:     "https://example.com",
			wantErr: true,
		},
		{
			name:    "freebsd is unsupported",
			goos:    "freebsd",
			url:     "https://example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, err := platformCommand(tt.goos, tt.url)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestPlatformCommandWindowsEscaping(t *testing.T) {
	name, args, err := platformCommand("windows", "http://x/?a&b")

	require.NoError(t, err)
	assert.Equal(t, "cmd", name)
	assert.Equal(t, []string{"/c", "start", "http://x/?a^&b"}, args)
}

func TestEscapeWindowsURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"single ampersand", "http://x/?a&b", "http://x/?a^&b"},
		{"multiple ampersands", "http://x/?a&b&c", "http://x/?a^&b^&c"},
		{"no ampersand", "http://x/plain", "http://x/plain"},
		// Only "&" is escaped. These document that other characters the
		// start builtin could interpret pass through untouched.
		{"percent passes through", "http://x/?v=100%25", "http://x/?v=100%25"},
		{"space passes through", "http://x/a b", "http://x/a b"},
		{"caret passes through", "http://x/?a^b", "http://x/?a^b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeWindowsURL(tt.url))
		})
	}
}

func TestOpenSwallowsMissingOpener(t *testing.T) {
	// With an empty PATH the opener cannot be resolved; Open must treat
	// that as a silent no-op.
	t.Setenv("PATH", "")

	Open("http://127.0.0.1:0/")
	OpenWithTimeout("http://127.0.0.1:0/", 10*time.Millisecond)
}

func TestLaunchMissingCommand(t *testing.T) {
	t.Setenv("PATH", "")

	_, err := launch("pkg-desktop-no-such-opener", []string{"x"}, time.Second, time.Second)

	require.Error(t, err)
}

func TestLaunchReturnsBeforeExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires unix sleep command")
	}

	start := time.Now()
	cmd, err := launch("sleep", []string{"1"}, 5*time.Second, time.Second)

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond, "launch must not wait for the child")

	require.Eventually(t, func() bool {
		return !procutil.IsProcessRunning(cmd.Process.Pid)
	}, 3*time.Second, 20*time.Millisecond, "child should exit on its own")
}

func TestLaunchTimeoutTerminatesHangingProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires unix sleep command")
	}

	cmd, err := launch("sleep", []string{"30"}, 200*time.Millisecond, time.Second)
	require.NoError(t, err)

	pid := cmd.Process.Pid
	assert.True(t, procutil.IsProcessRunning(pid), "process should be alive right after launch")

	// sleep dies on the SIGTERM sent at the timeout; no grace period needed.
	require.Eventually(t, func() bool {
		return !procutil.IsProcessRunning(pid)
	}, 3*time.Second, 20*time.Millisecond, "process should be terminated after the timeout")
}

func TestLaunchKillsProcessIgnoringSigterm(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires unix shell")
	}

	cmd, err := launch("sh", []string{"-c", `trap "" TERM; sleep 5`}, 300*time.Millisecond, 500*time.Millisecond)
	require.NoError(t, err)

	pid := cmd.Process.Pid

	// Before the timeout fires the process must still be running.
	time.Sleep(100 * time.Millisecond)
	assert.True(t, procutil.IsProcessRunning(pid))

	// SIGTERM at ~300ms is ignored; SIGKILL at ~800ms is not.
	require.Eventually(t, func() bool {
		return !procutil.IsProcessRunning(pid)
	}, 3*time.Second, 20*time.Millisecond, "process ignoring SIGTERM should be killed after the grace period")
}

func TestLaunchDrainsChildOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires unix shell")
	}

	// 1MB far exceeds the pipe buffer; without the drain goroutines the
	// child would block on write and hit the kill escalation instead of
	// exiting promptly.
	cmd, err := launch("sh", []string{"-c", "head -c 1000000 /dev/zero; head -c 1000000 /dev/zero 1>&2"}, 10*time.Second, time.Second)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return !procutil.IsProcessRunning(cmd.Process.Pid)
	}, 2*time.Second, 20*time.Millisecond, "child writing large output should exit without being signaled")
}
