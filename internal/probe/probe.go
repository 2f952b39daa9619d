// Package probe reports whether path specifications would be valid targets
// for a directory change without changing the working directory.
package probe

import (
	"io/fs"
	"os"
	"syscall"

	"github.com/sourcegraph/conc/iter"

	"github.com/hay-kot/cdx/internal/core"
)

type Result struct {
	Input  core.Input
	Path   string
	Exists bool
	Dir    bool
	Err    error
}

// Ok reports whether changing into the path is expected to succeed.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Env is the variable set exposed to filter expressions.
func (r Result) Env() map[string]any {
	input, _ := r.Input.Value()
	errStr := ""
	if r.Err != nil {
		errStr = core.Describe(r.Err)
	}

	return map[string]any{
		"input":  input,
		"path":   r.Path,
		"kind":   r.Input.Kind().String(),
		"exists": r.Exists,
		"dir":    r.Dir,
		"ok":     r.Ok(),
		"error":  errStr,
	}
}

// Probe resolves every input against home and stats the result. Results are
// returned in input order. At most concurrency stats run at once; values
// below one fall back to GOMAXPROCS.
func Probe(home string, inputs []core.Input, concurrency int) []Result {
	concurrency = max(concurrency, 0)
	mapper := iter.Mapper[core.Input, Result]{MaxGoroutines: concurrency}

	return mapper.Map(inputs, func(in *core.Input) Result {
		return probeOne(home, *in)
	})
}

func probeOne(home string, in core.Input) Result {
	r := Result{
		Input: in,
		Path:  core.Resolve(home, in),
	}

	// Exists only on a successful stat. "file.txt/sub" fails with ENOTDIR.
	info, err := os.Stat(r.Path)
	if err != nil {
		r.Err = err
		return r
	}

	r.Exists = true
	r.Dir = info.IsDir()
	if !r.Dir {
		r.Err = &fs.PathError{Op: "chdir", Path: r.Path, Err: syscall.ENOTDIR}
	}

	return r
}
