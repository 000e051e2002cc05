package mem

import (
	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~uint
}

// CheckPow2 returns an error wrapping ErrPowerOfTwo when number is not a
// power of two. name identifies the offending value in the error message.
func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(ErrPowerOfTwo, "%s is %d", name, number)
	}
	return nil
}

func AlignUp(value int, alignment uint) int {
	DebugCheckPow2(alignment, "alignment")
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}

func AlignDown(value int, alignment uint) int {
	DebugCheckPow2(alignment, "alignment")
	return value & int(^(alignment - 1))
}
