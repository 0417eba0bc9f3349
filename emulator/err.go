package emulator

import (
	"errors"

	"github.com/ezrec/mars/translate"
)

var f = translate.From

var (
	// Loader errors
	ErrWarriorSize = errors.New(f("warriors do not fit in the core"))
)

// ErrLoad indicates which warrior could not be loaded.
type ErrLoad struct {
	Size [2]int // Warrior lengths.
	Core int    // Core size.
	Err  error
}

func (err *ErrLoad) Error() string {
	return f("load %d + %d cells into %d: %v", err.Size[0], err.Size[1], err.Core, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}
