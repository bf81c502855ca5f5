//go:build !stringwidth_debug

package stringwidth

// debugAssert is a no-op in release builds. Build with -tags
// stringwidth_debug to enable the checks during development; spec section 7
// calls these "advisory" and says they must never be observed by callers,
// so they compile away by default rather than panicking.
func debugAssert(bool) {}
