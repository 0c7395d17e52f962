package shift

import "errors"

var (
	ErrShiftTypeNotFound   = errors.New("shift type not found")
	ErrShiftTypeCodeExists = errors.New("shift type with this code already exists")
	ErrShiftTypeInUse      = errors.New("shift type is referenced by a work schedule or roster entry")
)
