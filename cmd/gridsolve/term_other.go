//go:build !unix && !windows

package main

func terminalWidth(int) (int, bool) {
	return 0, false
}
