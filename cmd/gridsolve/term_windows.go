//go:build windows

package main

import "golang.org/x/sys/windows"

// terminalWidth returns the column count of the console on fd.
func terminalWidth(fd int) (int, bool) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, false
	}
	return int(info.Window.Right - info.Window.Left + 1), true
}
