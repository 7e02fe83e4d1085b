// Package fsops implements the filesystem mutations offered by the browser:
// create directory, remove, rename, copy and touch.
//
// Every operation reports failure through an *fserr.Error so callers can
// distinguish missing paths from permission problems.
package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/otiai10/copy"
	"github.com/rs/zerolog"

	"github.com/llehouerou/burrow/internal/fserr"
)

const (
	opMkdir  = "mkdir"
	opRemove = "remove"
	opRename = "rename"
	opCopy   = "copy"
	opTouch  = "touch"
)

// Ops performs filesystem mutations and logs their outcome.
type Ops struct {
	log zerolog.Logger
}

// New creates an Ops that logs through l.
func New(l zerolog.Logger) *Ops {
	return &Ops{log: l}
}

var std = New(zerolog.Nop())

// MakeDirAll creates path and any missing parents using the default Ops.
func MakeDirAll(path string) (bool, error) { return std.MakeDirAll(path) }

// RemoveAll deletes path recursively using the default Ops.
func RemoveAll(path string) (bool, error) { return std.RemoveAll(path) }

// Rename moves oldPath to newPath using the default Ops.
func Rename(oldPath, newPath string) error { return std.Rename(oldPath, newPath) }

// Copy copies src to dest recursively using the default Ops.
func Copy(src, dest string) error { return std.Copy(src, dest) }

// Touch creates or touches path using the default Ops.
func Touch(path string) error { return std.Touch(path) }

// MakeDirAll creates path and all missing ancestors. created is false when
// path already existed as a directory. An existing non-directory at path is
// a KindExists error.
func (o *Ops) MakeDirAll(path string) (created bool, err error) {
	defer func() { o.done(opMkdir, path, err) }()

	if info, statErr := os.Stat(path); statErr == nil {
		if info.IsDir() {
			return false, nil
		}
		return false, fserr.New(opMkdir, path, fserr.KindExists, errors.New("not a directory"))
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return false, fserr.Wrap(opMkdir, path, err)
	}
	return true, nil
}

// RemoveAll deletes a file or a directory tree. removed is false when
// nothing existed at path.
func (o *Ops) RemoveAll(path string) (removed bool, err error) {
	defer func() { o.done(opRemove, path, err) }()

	if path == "" {
		return false, fserr.New(opRemove, path, fserr.KindInvalid, errors.New("empty path"))
	}
	if _, statErr := os.Lstat(path); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			return false, nil
		}
		return false, fserr.Wrap(opRemove, path, statErr)
	}
	if err := os.RemoveAll(path); err != nil {
		return false, fserr.Wrap(opRemove, path, err)
	}
	return true, nil
}

// Rename moves oldPath to newPath. An existing file at newPath is replaced,
// as the host rename call does.
func (o *Ops) Rename(oldPath, newPath string) (err error) {
	defer func() { o.done(opRename, oldPath, err, "to", newPath) }()

	if err := os.Rename(oldPath, newPath); err != nil {
		return fserr.Wrap(opRename, oldPath, err)
	}
	return nil
}

// Copy copies src to dest. Directories are copied recursively and merged
// into an existing dest; existing files are overwritten. Symlinks are copied
// as links.
func (o *Ops) Copy(src, dest string) (err error) {
	defer func() { o.done(opCopy, src, err, "to", dest) }()

	if _, err := os.Lstat(src); err != nil {
		return fserr.Wrap(opCopy, src, err)
	}
	if err := checkCopyTarget(src, dest); err != nil {
		return err
	}

	opts := copy.Options{
		OnSymlink: func(string) copy.SymlinkAction {
			return copy.Shallow
		},
		OnDirExists: func(_, _ string) copy.DirExistsAction {
			return copy.Merge
		},
	}
	if err := copy.Copy(src, dest, opts); err != nil {
		return fserr.Wrap(opCopy, src, err)
	}
	return nil
}

// Touch creates an empty file at path, or updates the modification time of
// an existing file without changing its content.
func (o *Ops) Touch(path string) (err error) {
	defer func() { o.done(opTouch, path, err) }()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fserr.Wrap(opTouch, path, err)
	}
	if err := f.Close(); err != nil {
		return fserr.Wrap(opTouch, path, err)
	}
	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return fserr.Wrap(opTouch, path, err)
	}
	return nil
}

// checkCopyTarget rejects copies onto the source itself or into its own subtree.
func checkCopyTarget(src, dest string) error {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return fserr.Wrap(opCopy, src, err)
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return fserr.Wrap(opCopy, dest, err)
	}
	if absSrc == absDest {
		return fserr.New(opCopy, src, fserr.KindExists, errors.New("source and destination are the same"))
	}
	if strings.HasPrefix(absDest, absSrc+string(filepath.Separator)) {
		return fserr.New(opCopy, src, fserr.KindInvalid, errors.New("destination is inside source"))
	}
	return nil
}

func (o *Ops) done(op, path string, err error, kv ...string) {
	var ev *zerolog.Event
	if err != nil {
		ev = o.log.Warn().Err(err).Str("kind", fserr.KindOf(err).String())
	} else {
		ev = o.log.Info()
	}
	ev = ev.Str("op", op).Str("path", path)
	for i := 0; i+1 < len(kv); i += 2 {
		ev = ev.Str(kv[i], kv[i+1])
	}
	ev.Msg("filesystem mutation")
}
