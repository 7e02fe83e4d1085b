// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/burrow/internal/fserr"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Browsing
	OpListDirectory Op = "open directory"
	OpPreview       Op = "preview"
	OpRefresh       Op = "refresh"

	// File operations
	OpFileCreate Op = "create file"
	OpFileDelete Op = "delete"
	OpFileRename Op = "rename"
	OpFilePaste  Op = "paste"

	// Folder operations
	OpFolderCreate Op = "create folder"

	// Initialization
	OpInitialize Op = "initialize application"
	OpConfigLoad Op = "load configuration"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %s", op, Reason(err))
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %s", op, context, Reason(err))
}

// Reason returns the short cause of err. Classified filesystem errors are
// reduced to their kind; anything else keeps its own message.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var fe *fserr.Error
	if errors.As(err, &fe) {
		if fe.Kind != fserr.KindOther {
			return fe.Kind.String()
		}
		if fe.Err != nil {
			return fe.Err.Error()
		}
	}
	return err.Error()
}
