//go:build unix

package main

import "golang.org/x/sys/unix"

// terminalWidth returns the column count of the terminal on fd.
func terminalWidth(fd int) (int, bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0, false
	}
	return int(ws.Col), true
}
