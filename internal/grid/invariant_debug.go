//go:build griddebug

package grid

import "fmt"

// invariant panics on an internal consistency failure in debug builds.
func invariant(ok bool, msg string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("grid invariant violated: %s %v", msg, args))
	}
}
