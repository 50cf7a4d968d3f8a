//go:build !windows

// Package process terminates the headless browser started for PDF export.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid so Chrome's
// renderer and GPU children exit with it.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort; launcher.Kill() runs afterwards.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
