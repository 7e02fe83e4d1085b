package navigator

import (
	"syscall"

	"github.com/llehouerou/burrow/internal/fserr"
)

func notADirectory(path string) error {
	return fserr.New("open", path, fserr.KindInvalid, syscall.ENOTDIR)
}
