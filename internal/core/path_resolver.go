package core

import (
	"os"
	"path/filepath"
	"strings"
)

// InputKind is the variant of an Input as seen by Resolve.
type InputKind int

const (
	KindAbsent     InputKind = iota // no argument supplied
	KindTilde                       // exactly "~"
	KindTildeSlash                  // "~/" followed by anything
	KindOther                       // everything else, including "" and "~user"
)

func (k InputKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindTilde:
		return "tilde"
	case KindTildeSlash:
		return "tilde-slash"
	default:
		return "other"
	}
}

// Input is an optional path specification. The zero value is absent, which is
// not the same as a present empty string.
type Input struct {
	value   string
	present bool
}

// None returns an absent Input.
func None() Input {
	return Input{}
}

// Some returns a present Input holding s.
func Some(s string) Input {
	return Input{value: s, present: true}
}

// InputFromArgs returns Some(args[0]), or None when args is empty.
func InputFromArgs(args []string) Input {
	if len(args) == 0 {
		return None()
	}
	return Some(args[0])
}

func (in Input) Value() (string, bool) {
	return in.value, in.present
}

func (in Input) Kind() InputKind {
	switch {
	case !in.present:
		return KindAbsent
	case in.value == "~":
		return KindTilde
	case strings.HasPrefix(in.value, "~/"):
		return KindTildeSlash
	default:
		return KindOther
	}
}

func (in Input) String() string {
	if !in.present {
		return "<none>"
	}
	return in.value
}

// Resolve maps an optional path specification onto a path using shell
// conventions for '~'. Only "~" and "~/..." are expanded; the result is never
// cleaned or checked against the filesystem.
func Resolve(home string, in Input) string {
	switch in.Kind() {
	case KindAbsent, KindTilde:
		return home
	case KindTildeSlash:
		return pushPath(home, in.value[2:])
	default:
		return in.value
	}
}

// pushPath appends elem to base as a path segment without cleaning either side.
// An absolute elem replaces base.
func pushPath(base, elem string) string {
	if filepath.IsAbs(elem) || base == "" {
		return elem
	}
	if os.IsPathSeparator(base[len(base)-1]) {
		return base + elem
	}
	return base + string(filepath.Separator) + elem
}
