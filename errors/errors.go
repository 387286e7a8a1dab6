package errors

import (
	"github.com/cockroachdb/errors"
)

var (
	New       = errors.New
	Newf      = errors.Newf
	Errorf    = errors.Errorf
	Wrap      = errors.Wrap
	Wrapf     = errors.Wrapf
	WithStack = errors.WithStack
	Mark      = errors.Mark
	Is        = errors.Is
	IsAny     = errors.IsAny
	As        = errors.As
	Unwrap    = errors.Unwrap
)
