package snapshot

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/llehouerou/burrow/internal/fserr"
)

const opList = "list"

// Builder produces directory snapshots from a filesystem.
type Builder struct {
	fs         afero.Fs
	showHidden bool
	log        zerolog.Logger
}

// NewBuilder creates a builder over fsys. Hidden entries are shown.
func NewBuilder(fsys afero.Fs) *Builder {
	return &Builder{
		fs:         fsys,
		showHidden: true,
		log:        zerolog.Nop(),
	}
}

// NewOSBuilder creates a builder over the host filesystem.
func NewOSBuilder() *Builder {
	return NewBuilder(afero.NewOsFs())
}

// WithHidden returns a copy of the builder that includes or omits dot entries.
func (b *Builder) WithHidden(show bool) *Builder {
	c := *b
	c.showHidden = show
	return &c
}

// WithLogger returns a copy of the builder that logs through l.
func (b *Builder) WithLogger(l zerolog.Logger) *Builder {
	c := *b
	c.log = l
	return &c
}

// ShowHidden reports whether dot entries are included.
func (b *Builder) ShowHidden() bool {
	return b.showHidden
}

// Fs returns the filesystem the builder reads from.
func (b *Builder) Fs() afero.Fs {
	return b.fs
}

// ListDirectory returns a snapshot of path. When path is a directory its
// immediate entries become the root's children, sorted with Sort.
//
// A missing path or a directory that cannot be enumerated fails the whole
// call with an *fserr.Error. Entries whose metadata cannot be read are kept
// with Size 0.
func (b *Builder) ListDirectory(path string) (Node, error) {
	info, err := b.fs.Stat(path)
	if err != nil {
		return Node{}, fserr.Wrap(opList, path, err)
	}

	root := Node{
		Name:    baseName(path),
		Path:    path,
		IsDir:   info.IsDir(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
	}
	if !root.IsDir {
		root.Size = regularSize(info)
		return root, nil
	}

	names, err := b.readNames(path)
	if err != nil {
		return Node{}, fserr.Wrap(opList, path, err)
	}

	children := make([]Node, 0, len(names))
	for _, name := range names {
		if !b.showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		children = append(children, b.child(path, name))
	}
	Sort(children)
	root.Children = children

	b.log.Debug().Str("path", path).Int("entries", len(children)).Msg("listed directory")
	return root, nil
}

func (b *Builder) readNames(path string) ([]string, error) {
	f, err := b.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}

// child builds the node for one directory entry. It never fails: metadata
// errors degrade to a zero-size non-directory.
func (b *Builder) child(dir, name string) Node {
	p := filepath.Join(dir, name)
	n := Node{Name: name, Path: p}

	info, err := b.lstat(p)
	if err != nil {
		b.log.Debug().Err(err).Str("path", p).Msg("entry metadata unavailable")
		return n
	}
	n.Mode = info.Mode()
	n.ModTime = info.ModTime()

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		// Follow the link only to decide whether it is a directory.
		target, err := b.fs.Stat(p)
		if err != nil {
			b.log.Debug().Err(err).Str("path", p).Msg("broken symlink")
			return n
		}
		n.IsDir = target.IsDir()
	case info.IsDir():
		n.IsDir = true
	default:
		n.Size = regularSize(info)
	}
	return n
}

func (b *Builder) lstat(p string) (os.FileInfo, error) {
	if l, ok := b.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(p)
		return info, err
	}
	return b.fs.Stat(p)
}

func regularSize(info os.FileInfo) int64 {
	if !info.Mode().IsRegular() {
		return 0
	}
	return max(info.Size(), 0)
}

func baseName(path string) string {
	return filepath.Base(filepath.Clean(path))
}
