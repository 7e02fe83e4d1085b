//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/llehouerou/burrow/internal/fserr"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFileDelete,
			err:      nil,
			expected: "",
		},
		{
			name:     "plain error keeps its message",
			op:       OpFilePaste,
			err:      errors.New("disk full"),
			expected: "Failed to paste: disk full",
		},
		{
			name:     "classified error reduced to kind",
			op:       OpListDirectory,
			err:      fserr.Wrap("list", "/root", fs.ErrPermission),
			expected: "Failed to open directory: permission denied",
		},
		{
			name:     "wrapped classified error",
			op:       OpFolderCreate,
			err:      fmt.Errorf("while creating: %w", fserr.New("mkdir", "/a", fserr.KindExists, nil)),
			expected: "Failed to create folder: already exists",
		},
		{
			name:     "unclassified fserr uses cause",
			op:       OpFileRename,
			err:      fserr.New("rename", "/a", fserr.KindOther, errors.New("cross-device link")),
			expected: "Failed to rename: cross-device link",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFileCreate,
			context:  "notes.txt",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpFileCreate,
			context:  "",
			err:      errors.New("boom"),
			expected: "Failed to create file: boom",
		},
		{
			name:     "includes context",
			op:       OpFileDelete,
			context:  "old.log",
			err:      fserr.Wrap("remove", "/tmp/old.log", fs.ErrNotExist),
			expected: "Failed to delete 'old.log': not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
