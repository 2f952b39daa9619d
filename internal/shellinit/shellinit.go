// Package shellinit renders the shell functions that let a parent shell follow
// a directory change computed by cdx.
package shellinit

import (
	"bytes"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"text/template"
)

type Shell string

const (
	Bash Shell = "bash"
	Zsh  Shell = "zsh"
	Fish Shell = "fish"
)

var Shells = []Shell{Bash, Zsh, Fish}

// ParseShell returns the Shell named s.
func ParseShell(s string) (Shell, error) {
	sh := Shell(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Shells, sh) {
		names := make([]string, len(Shells))
		for i, v := range Shells {
			names[i] = string(v)
		}
		return "", fmt.Errorf("unsupported shell %q (expected one of: %s)", s, strings.Join(names, ", "))
	}
	return sh, nil
}

var validName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

type Options struct {
	Name   string // function name defined in the shell
	Binary string // cdx executable to call
}

// posix is shared by bash and zsh. The argument count is forwarded so that no
// argument and an empty argument stay distinct.
const posix = `# cdx shell integration ({{ .Shell }})
{{ .Name }}() {
  local __cdx_target
  if [ "$#" -eq 0 ]; then
    __cdx_target="$(command {{ .Binary }} resolve)" || return
  else
    __cdx_target="$(command {{ .Binary }} resolve -- "$1")" || return
  fi
  builtin cd -- "$__cdx_target"
}
`

const fish = `# cdx shell integration (fish)
function {{ .Name }}
    if test (count $argv) -eq 0
        set -l __cdx_target (command {{ .Binary }} resolve); or return
        builtin cd -- $__cdx_target
    else
        set -l __cdx_target (command {{ .Binary }} resolve -- $argv[1]); or return
        builtin cd -- $__cdx_target
    end
end
`

var templates = map[Shell]*template.Template{
	Bash: template.Must(template.New("bash").Parse(posix)),
	Zsh:  template.Must(template.New("zsh").Parse(posix)),
	Fish: template.Must(template.New("fish").Parse(fish)),
}

// Render returns the integration script for sh.
func Render(sh Shell, opts Options) (string, error) {
	tmpl, ok := templates[sh]
	if !ok {
		return "", fmt.Errorf("unsupported shell %q", sh)
	}

	if opts.Name == "" {
		opts.Name = "c"
	}
	if opts.Binary == "" {
		opts.Binary = "cdx"
	}
	if !validName.MatchString(opts.Name) {
		return "", fmt.Errorf("invalid function name %q", opts.Name)
	}
	if strings.ContainsAny(opts.Binary, " \t\n'\"$`;&|") {
		return "", fmt.Errorf("invalid binary name %q", opts.Binary)
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, map[string]any{
		"Shell":  sh,
		"Name":   opts.Name,
		"Binary": opts.Binary,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render %s integration: %w", sh, err)
	}

	return buf.String(), nil
}
