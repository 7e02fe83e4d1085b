// Package snapshot builds one-level, read-only views of a directory.
package snapshot

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

// Node is one filesystem entry inside a snapshot.
//
// Only the root of a snapshot has Children, and those children never have
// children of their own. A Node is never modified once ListDirectory returns.
type Node struct {
	Name     string // last path segment
	Path     string // full path as passed in or joined from the parent
	IsDir    bool   // symlinks to directories count as directories
	Size     int64  // bytes; 0 for directories, non-regular files and unreadable entries
	Mode     fs.FileMode
	ModTime  time.Time // zero when unknown
	Children []Node
}

// IsSymlink reports whether the entry itself is a symbolic link.
func (n Node) IsSymlink() bool {
	return n.Mode&fs.ModeSymlink != 0
}

// IsHidden reports whether the entry name starts with a dot.
func (n Node) IsHidden() bool {
	return strings.HasPrefix(n.Name, ".")
}

// Ext returns the lowercased file extension including the dot.
func (n Node) Ext() string {
	return strings.ToLower(filepath.Ext(n.Name))
}

// Child returns the child with the given name.
func (n Node) Child(name string) (Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return Node{}, false
}

// IndexOf returns the index of the child whose Path equals path, or -1.
func (n Node) IndexOf(path string) int {
	for i, c := range n.Children {
		if c.Path == path {
			return i
		}
	}
	return -1
}

// DirCount returns the number of directory children.
func (n Node) DirCount() int {
	count := 0
	for _, c := range n.Children {
		if c.IsDir {
			count++
		}
	}
	return count
}
