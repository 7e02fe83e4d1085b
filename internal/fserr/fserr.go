// Package fserr classifies filesystem failures into a small set of kinds so
// callers can tell "not found" from "permission denied" without parsing text.
package fserr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// Kind identifies the class of a filesystem failure.
type Kind int

const (
	KindOther Kind = iota
	KindNotFound
	KindPermission
	KindExists
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	case KindExists:
		return "already exists"
	case KindInvalid:
		return "invalid argument"
	default:
		return "filesystem error"
	}
}

// Sentinels usable with errors.Is against any *Error of the same kind.
var (
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrPermission = &Error{Kind: KindPermission}
	ErrExists     = &Error{Kind: KindExists}
	ErrInvalid    = &Error{Kind: KindInvalid}
)

// Error records a failed filesystem operation together with its kind.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op == "" && e.Err == nil:
		return e.Kind.String()
	case e.Err == nil:
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
	case e.Op == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, unwrapPathError(e.Err))
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels by kind, so errors.Is(err, ErrNotFound) works for
// every wrapped *Error whose Kind is KindNotFound.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Path == "" && t.Err == nil && t.Kind == e.Kind
}

// Wrap returns nil for a nil err, otherwise an *Error with the classified kind.
func Wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Path: path, Kind: Classify(err), Err: err}
}

// New builds an *Error with an explicit kind.
func New(op, path string, kind Kind, err error) error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}

// Classify maps an error chain to a Kind.
func Classify(err error) Kind {
	var fe *Error
	switch {
	case err == nil:
		return KindOther
	case errors.As(err, &fe):
		return fe.Kind
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrExist):
		return KindExists
	case errors.Is(err, fs.ErrInvalid), errors.Is(err, syscall.ENOTDIR):
		return KindInvalid
	}
	return KindOther
}

// KindOf returns the kind carried by err, or KindOther.
func KindOf(err error) Kind {
	return Classify(err)
}

// unwrapPathError drops the *fs.PathError or *os.LinkError layer, whose op
// and path duplicate ours.
func unwrapPathError(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	var le *os.LinkError
	if errors.As(err, &le) {
		return le.Err
	}
	return err
}
