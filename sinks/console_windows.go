//go:build windows

package sinks

import (
	"os"
	"sync"

	"golang.org/x/sys/windows"
)

var (
	vtOnce    sync.Once
	vtEnabled bool
)

// enableWindowsVTProcessing turns on ANSI escape handling for stdout and
// stderr on Windows 10 and later.
func enableWindowsVTProcessing() {
	vtOnce.Do(func() {
		out := enableForHandle(windows.Handle(os.Stdout.Fd()))
		enableForHandle(windows.Handle(os.Stderr.Fd()))
		vtEnabled = out
	})
}

func vtProcessingEnabled() bool {
	enableWindowsVTProcessing()
	return vtEnabled
}

func enableForHandle(handle windows.Handle) bool {
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
