package records

import "string-analyzer/internal/shared/errors"

var (
	ErrNotFound = errors.Mark(errors.New("string does not exist in the system"), errors.ErrNotFound)
	ErrConflict = errors.Mark(errors.New("string already exists in the system"), errors.ErrConflict)
)
