//go:build !debug_memforge

package mem

// DebugAssert panics with msg when cond does not hold. Precondition checks
// throughout this module run through it: they fire in builds carrying the
// debug_memforge build tag and no-op otherwise, leaving the violating call's
// behavior unspecified.
func DebugAssert(cond bool, msg string) {
}

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_memforge build tag is present
func DebugValidate(validatable Validatable) {
}

// DebugCheckPow2 will verify that the numerical value passed in is a power of two, and panics if it is not.
// This method no-ops unless the debug_memforge build tag is present.
func DebugCheckPow2[T Number](value T, name string) {
}
