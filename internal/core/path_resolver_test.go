package core

import (
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		home  string
		input Input
		want  string
	}{
		{
			name:  "absent input goes home",
			home:  "/home/alice",
			input: None(),
			want:  "/home/alice",
		},
		{
			name:  "tilde goes home",
			home:  "/home/alice",
			input: Some("~"),
			want:  "/home/alice",
		},
		{
			name:  "tilde slash appends segment",
			home:  "/home/alice",
			input: Some("~/Documents/notes"),
			want:  "/home/alice/Documents/notes",
		},
		{
			name:  "tilde slash single segment",
			home:  "/home/bob",
			input: Some("~/Documents"),
			want:  "/home/bob/Documents",
		},
		{
			name:  "tilde slash with root home",
			home:  "/",
			input: Some("~/tmp"),
			want:  "/tmp",
		},
		{
			name:  "tilde slash with trailing separator home",
			home:  "/home/u/",
			input: Some("~/x"),
			want:  "/home/u/x",
		},
		{
			name:  "tilde slash alone keeps trailing separator",
			home:  "/home/u",
			input: Some("~/"),
			want:  "/home/u/",
		},
		{
			name:  "tilde slash absolute suffix replaces home",
			home:  "/home/u",
			input: Some("~//etc"),
			want:  "/etc",
		},
		{
			name:  "tilde slash with empty home",
			home:  "",
			input: Some("~/x"),
			want:  "x",
		},
		{
			name:  "tilde slash is not cleaned",
			home:  "/home/u",
			input: Some("~/a/../b/."),
			want:  "/home/u/a/../b/.",
		},
		{
			name:  "parent directory is literal",
			home:  "/home/alice",
			input: Some(".."),
			want:  "..",
		},
		{
			name:  "absolute path ignores home",
			home:  "/home/alice",
			input: Some("/tmp"),
			want:  "/tmp",
		},
		{
			name:  "relative path ignores home",
			home:  "/home/alice",
			input: Some("../music"),
			want:  "../music",
		},
		{
			name:  "empty string is not home",
			home:  "/home/alice",
			input: Some(""),
			want:  "",
		},
		{
			name:  "other user is not expanded",
			home:  "/home/alice",
			input: Some("~bob"),
			want:  "~bob",
		},
		{
			name:  "unset home default",
			home:  DefaultHome,
			input: None(),
			want:  "/",
		},
		{
			name:  "home is not validated",
			home:  "not a path",
			input: Some("~"),
			want:  "not a path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.home, tt.input)
			if got != tt.want {
				t.Errorf("Resolve(%q, %v) = %q, want %q", tt.home, tt.input, got, tt.want)
			}
		})
	}
}

func TestResolve_EmptyDiffersFromAbsent(t *testing.T) {
	for _, home := range []string{"/", "/home/alice", "relative"} {
		absent := Resolve(home, None())
		empty := Resolve(home, Some(""))
		if absent == empty {
			t.Errorf("Resolve(%q, None()) == Resolve(%q, Some(\"\")) == %q", home, home, absent)
		}
	}
}

func TestResolve_NonTildeIgnoresHome(t *testing.T) {
	inputs := []string{"/", "a", "./a", "a/~", "-", " ~"}

	for _, in := range inputs {
		for _, home := range []string{"/", "/home/u", ""} {
			if got := Resolve(home, Some(in)); got != in {
				t.Errorf("Resolve(%q, Some(%q)) = %q, want %q", home, in, got, in)
			}
		}
	}
}

func TestInput_Kind(t *testing.T) {
	tests := []struct {
		input Input
		want  InputKind
	}{
		{None(), KindAbsent},
		{Input{}, KindAbsent},
		{Some("~"), KindTilde},
		{Some("~/"), KindTildeSlash},
		{Some("~/a"), KindTildeSlash},
		{Some(""), KindOther},
		{Some("~foo"), KindOther},
		{Some("/~"), KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.input.String(), func(t *testing.T) {
			if got := tt.input.Kind(); got != tt.want {
				t.Errorf("Input.Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputFromArgs(t *testing.T) {
	if _, ok := InputFromArgs(nil).Value(); ok {
		t.Error("InputFromArgs(nil) should be absent")
	}

	v, ok := InputFromArgs([]string{"", "ignored"}).Value()
	if !ok || v != "" {
		t.Errorf("InputFromArgs() = (%q, %v), want (\"\", true)", v, ok)
	}
}
