package dump

import (
	"fmt"

	"github.com/pkg/errors"
)

type (
	Kind string

	// Error ties a failure to one of the kinds the command line reports.
	Error struct {
		Kind Kind
		Err  error
	}
)

const (
	KindInvalidArgument Kind = "invalid argument"
	KindCannotOpen      Kind = "cannot open"
	KindNotSeekable     Kind = "not seekable"
	KindSeekFailed      Kind = "seek failed"
	KindReadFailed      Kind = "read failed"
	KindWriteFailed     Kind = "write failed"
)

func (r Error) Error() string {
	if r.Err == nil {
		return string(r.Kind)
	}
	return fmt.Sprintf("%s: %s", r.Kind, r.Err.Error())
}

func (r Error) Cause() error {
	return r.Err
}

func (r Error) Unwrap() error {
	return r.Err
}

func NewError(kind Kind, err error) error {
	return Error{Kind: kind, Err: err}
}

func Errorf(kind Kind, format string, args ...any) error {
	return Error{Kind: kind, Err: errors.Errorf(format, args...)}
}

// KindOf returns the kind of the first Error in err's chain, or "" when
// there is none.
func KindOf(err error) Kind {
	var dumpErr Error
	if errors.As(err, &dumpErr) {
		return dumpErr.Kind
	}
	return ""
}
