// Copyright (c) Toit contributors. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"github.com/shirou/gopsutil/v4/process"
)

// IsProcessRunning reports whether a process with the given PID exists.
// Works cross-platform; on Windows this goes through the process snapshot
// API rather than the unreliable Signal(0) probe.
//
// A child that has exited but not been reaped by its parent still counts
// as existing (it occupies a PID until the parent waits on it).
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}

	running, err := process.PidExists(int32(pid))
	if err != nil {
		return false
	}

	return running
}
