package core

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/rs/zerolog/log"
)

// ChangeDir resolves in against home and makes the result the working
// directory of the process. It returns the resolved path. Errors from the
// operating system are returned unmodified and leave the working directory
// as it was.
func ChangeDir(home string, in Input) (string, error) {
	target := Resolve(home, in)

	log.Debug().
		Str("home", home).
		Str("input", in.String()).
		Stringer("kind", in.Kind()).
		Str("target", target).
		Msg("changing directory")

	if err := os.Chdir(target); err != nil {
		return target, err
	}

	return target, nil
}

// Describe returns a short human readable reason for a directory change
// failure.
func Describe(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, fs.ErrNotExist):
		return "not found"
	case errors.Is(err, syscall.ENOTDIR):
		return "not a directory"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	default:
		return err.Error()
	}
}
