// Package preview renders a short textual preview of a snapshot node:
// a truncated listing for directories, the head of text files, and a
// size summary for everything else.
package preview

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/llehouerou/burrow/internal/fserr"
	"github.com/llehouerou/burrow/internal/icons"
	"github.com/llehouerou/burrow/internal/snapshot"
)

const (
	DefaultMaxEntries = 15
	DefaultMaxBytes   = 2000

	tabWidth = 4
)

// Fixed preview lines.
const (
	MsgEmptyDir     = "Empty directory"
	MsgEmptyFile    = "Empty file"
	MsgAccessDenied = "Access denied"
	MsgBinary       = "Binary file or unknown format."
)

var textExtensions = map[string]bool{
	".txt": true, ".md": true, ".go": true, ".py": true, ".c": true,
	".cpp": true, ".h": true, ".hpp": true, ".json": true, ".yml": true,
	".yaml": true, ".toml": true, ".cmake": true, ".sh": true, ".rs": true,
	".js": true, ".ts": true, ".html": true, ".css": true, ".xml": true,
	".sql": true, ".ini": true, ".conf": true, ".cfg": true, ".log": true,
	".csv": true,
}

// IsText reports whether a file extension is previewed as text.
func IsText(ext string) bool {
	return textExtensions[strings.ToLower(ext)]
}

// Options bounds how much of a node is previewed.
type Options struct {
	MaxEntries int
	MaxBytes   int
}

func (o Options) withDefaults() Options {
	if o.MaxEntries <= 0 {
		o.MaxEntries = DefaultMaxEntries
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	return o
}

// Preview is the rendered result for one node.
type Preview struct {
	Title string
	Lines []string
	Err   error
}

// Previewer builds previews from a snapshot builder and its filesystem.
type Previewer struct {
	builder *snapshot.Builder
	fs      afero.Fs
	opts    Options
}

// New creates a previewer. Zero option values fall back to the defaults.
func New(builder *snapshot.Builder, fsys afero.Fs, opts Options) *Previewer {
	return &Previewer{
		builder: builder,
		fs:      fsys,
		opts:    opts.withDefaults(),
	}
}

// WithBuilder returns a copy of the previewer that lists directories through b.
func (p *Previewer) WithBuilder(b *snapshot.Builder) *Previewer {
	c := *p
	c.builder = b
	return &c
}

// Options returns the effective options.
func (p *Previewer) Options() Options {
	return p.opts
}

// For returns the preview of node.
func (p *Previewer) For(node snapshot.Node) Preview {
	switch {
	case node.IsDir:
		return p.directory(node)
	case IsText(node.Ext()) && p.regular(node):
		return p.text(node)
	default:
		return p.summary(node)
	}
}

// regular reports whether node, or the target of a node that is a symlink,
// is a regular file. Opening a FIFO or a device for reading can block.
func (p *Previewer) regular(node snapshot.Node) bool {
	if !node.IsSymlink() {
		return node.Mode.IsRegular()
	}
	info, err := p.fs.Stat(node.Path)
	if err != nil {
		// a broken link reports its error through the text preview
		return true
	}
	return info.Mode().IsRegular()
}

func (p *Previewer) directory(node snapshot.Node) Preview {
	pv := Preview{Title: node.Name}

	snap, err := p.builder.ListDirectory(node.Path)
	if err != nil {
		pv.Err = err
		pv.Lines = []string{failureLine(err)}
		return pv
	}
	if len(snap.Children) == 0 {
		pv.Lines = []string{MsgEmptyDir}
		return pv
	}

	shown := snap.Children
	if len(shown) > p.opts.MaxEntries {
		shown = shown[:p.opts.MaxEntries]
	}
	pv.Lines = make([]string, 0, len(shown)+1)
	for _, c := range shown {
		pv.Lines = append(pv.Lines, icons.FormatEntry(c.Name, c.IsDir, c.IsSymlink()))
	}
	if rest := len(snap.Children) - len(shown); rest > 0 {
		pv.Lines = append(pv.Lines, fmt.Sprintf("... and %d more items.", rest))
	}
	return pv
}

func (p *Previewer) text(node snapshot.Node) Preview {
	pv := Preview{Title: node.Name}

	head, err := p.readHead(node.Path)
	if err != nil {
		pv.Err = fserr.Wrap("preview", node.Path, err)
		pv.Lines = []string{failureLine(pv.Err)}
		return pv
	}
	if len(head) == 0 {
		pv.Lines = []string{MsgEmptyFile}
		return pv
	}
	pv.Lines = textLines(head)
	return pv
}

func (p *Previewer) readHead(path string) ([]byte, error) {
	f, err := p.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, p.opts.MaxBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

func (p *Previewer) summary(node snapshot.Node) Preview {
	lines := []string{
		MsgBinary,
		"",
		"Size: " + humanize.IBytes(uint64(max(node.Size, 0))),
	}
	if !node.ModTime.IsZero() {
		lines = append(lines, "Modified: "+node.ModTime.Format("2006-01-02 15:04"))
	}
	return Preview{Title: node.Name, Lines: lines}
}

// textLines splits raw file content into display lines.
func textLines(b []byte) []string {
	s := strings.ToValidUTF8(string(b), "�")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

func failureLine(err error) string {
	switch fserr.KindOf(err) {
	case fserr.KindPermission:
		return MsgAccessDenied
	case fserr.KindOther:
		return err.Error()
	default:
		return "Unavailable: " + fserr.KindOf(err).String()
	}
}
