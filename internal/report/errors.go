package report

import "errors"

var (
	ErrNoPatches      = errors.New("no surface patches")
	ErrDuplicateLabel = errors.New("duplicate patch label")
	ErrReservedLabel  = errors.New("patch label is reserved")
	ErrEmptyLabel     = errors.New("patch label is empty")
	ErrMissingColumn  = errors.New("patch column missing")
)
