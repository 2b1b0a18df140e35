//go:build !skatdebug

package engine

// debugAssert is a no-op in release builds; see debug_on.go.
func debugAssert(cond bool, msg string) {}
