// Package errors re-exports github.com/cockroachdb/errors and defines the
// error kinds surfaced by the string analyzer.
//
// Every error a caller can observe is one of three kinds:
//
//	ErrInvalidArgument  malformed input, unparsable query, invalid range
//	ErrConflict         duplicate content on creation
//	ErrNotFound         lookup or delete miss
//
// Domain packages declare their own sentinels and Mark them with a kind, so
// errors.Is(err, errors.ErrNotFound) holds for every not-found error no matter
// which package produced it.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping.
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing hints and details.
var (
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	WithDetail   = crdb.WithDetail
	WithDetailf  = crdb.WithDetailf
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Inspection.
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Error kinds.
var (
	ErrInvalidArgument = New("invalid argument")
	ErrConflict        = New("conflict")
	ErrNotFound        = New("not found")
)

// Kind is the classification of an error.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindConflict        Kind = "conflict"
	KindNotFound        Kind = "not_found"
	KindInternal        Kind = "internal"
)

// KindOf classifies err. Errors carrying no kind are internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case Is(err, ErrConflict):
		return KindConflict
	case Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}

// InvalidArgumentf builds a new invalid-argument error with a formatted message.
func InvalidArgumentf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrInvalidArgument)
}
