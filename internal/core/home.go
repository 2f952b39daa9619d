package core

import (
	"os"
	"strings"
)

const (
	DefaultHomeEnv = "HOME"
	DefaultHome    = "/"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// HomeDir returns the value of the env variable, or fallback when it is unset.
// A variable that is set but empty is returned as-is.
func HomeDir(lookup LookupFunc, env, fallback string) string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if env == "" {
		env = DefaultHomeEnv
	}

	home, ok := lookup(env)
	if !ok {
		return fallback
	}
	return home
}

// lookupOnce wraps lookup so that each variable is read at most once.
func lookupOnce(lookup LookupFunc) LookupFunc {
	type entry struct {
		value string
		ok    bool
	}
	seen := map[string]entry{}

	return func(key string) (string, bool) {
		if e, ok := seen[key]; ok {
			return e.value, e.ok
		}
		v, ok := lookup(key)
		seen[key] = entry{v, ok}
		return v, ok
	}
}

// Abbreviate replaces a leading home directory in path with '~'. The match
// must end on a separator boundary, so /home/bobby is not abbreviated for a
// home of /home/bob. A root or empty home never abbreviates.
func Abbreviate(home, path string) string {
	home = strings.TrimRight(home, string(os.PathSeparator))
	if home == "" || !strings.HasPrefix(path, home) {
		return path
	}

	rest := path[len(home):]
	if rest == "" {
		return "~"
	}
	if !os.IsPathSeparator(rest[0]) {
		return path
	}
	return "~" + rest
}
