// Package browser opens URLs in the user's default web browser.
//
// Launching is delegated to the platform opener: xdg-open on Linux, open on
// macOS, and "cmd /c start" on Windows (with "&" escaped for the start
// builtin). Other platforms are treated as unsupported.
//
// # Fire-and-forget contract
//
// Open and OpenWithTimeout return nothing, ever. Opening a browser is an
// auxiliary operation, and callers depend on it never propagating failures:
// an unsupported platform, a missing opener, or a crashed command must not
// take down the host program. Failures are swallowed where they occur and
// surface only as debug-level log lines.
//
// # Process supervision
//
// Opener commands normally hand off to a running browser and exit almost
// immediately. To keep a hung opener from leaking out of a long-running
// host process, each launch is supervised in the background: the child's
// output streams are drained so it cannot block on a full pipe, and if it
// outlives the timeout it receives SIGTERM, then SIGKILL after a one
// second grace period. The caller is never blocked on any of this.
//
//	browser.Open("https://example.com")
//
// Each call owns its child process and goroutines outright, so concurrent
// calls do not interact.
package browser
