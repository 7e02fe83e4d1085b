package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/llehouerou/burrow/internal/fserr"
)

// maxCopySuffix bounds the search for a free name.
const maxCopySuffix = 1000

// FreeCopyPath returns a path in dir for a copy of name that does not exist
// yet: "name", then "stem copy.ext", then "stem copy 2.ext" and so on. When
// every candidate is taken it returns a KindExists error.
func FreeCopyPath(dir, name string) (string, error) {
	return freeCopyPath(dir, name, maxCopySuffix)
}

func freeCopyPath(dir, name string, limit int) (string, error) {
	candidate := filepath.Join(dir, name)
	if !Exists(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		// dotfiles like ".env" have no stem
		stem, ext = name, ""
	}

	candidate = filepath.Join(dir, stem+" copy"+ext)
	for i := 2; Exists(candidate) && i < limit; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s copy %d%s", stem, i, ext))
	}
	if Exists(candidate) {
		return "", fserr.New(opCopy, filepath.Join(dir, name), fserr.KindExists,
			fmt.Errorf("no free copy name after %d attempts", limit))
	}
	return candidate, nil
}

// ValidName reports whether name can be used as a single path segment.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsRune(name, filepath.Separator) && !strings.ContainsRune(name, 0)
}

// Exists reports whether anything, including a broken symlink, is at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
