//go:build !griddebug

package grid

// invariant reports an internal consistency failure. Release builds log it
// and carry on with whatever layout was produced.
func invariant(ok bool, msg string, args ...any) {
	if !ok {
		Logger().Warn("grid invariant violated: "+msg, args...)
	}
}
