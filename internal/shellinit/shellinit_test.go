package shellinit

import (
	"strings"
	"testing"
)

func TestParseShell(t *testing.T) {
	tests := []struct {
		input   string
		want    Shell
		wantErr bool
	}{
		{input: "bash", want: Bash},
		{input: "ZSH", want: Zsh},
		{input: " fish ", want: Fish},
		{input: "pwsh", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseShell(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseShell() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseShell() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		shell    Shell
		opts     Options
		expected []string
	}{
		{
			name:  "bash defaults",
			shell: Bash,
			expected: []string{
				"# cdx shell integration (bash)",
				"c() {",
				`command cdx resolve)`,
				`command cdx resolve -- "$1")`,
				`builtin cd -- "$__cdx_target"`,
			},
		},
		{
			name:  "zsh custom name",
			shell: Zsh,
			opts:  Options{Name: "j", Binary: "/usr/local/bin/cdx"},
			expected: []string{
				"j() {",
				"command /usr/local/bin/cdx resolve",
			},
		},
		{
			name:  "fish",
			shell: Fish,
			opts:  Options{Name: "go_to"},
			expected: []string{
				"function go_to",
				"command cdx resolve -- $argv[1]",
				"end",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.shell, tt.opts)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			for _, line := range tt.expected {
				if !strings.Contains(got, line) {
					t.Errorf("Render() missing %q in:\n%s", line, got)
				}
			}
		})
	}
}

func TestRender_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		shell Shell
		opts  Options
	}{
		{name: "unknown shell", shell: Shell("tcsh")},
		{name: "bad function name", shell: Bash, opts: Options{Name: "1abc"}},
		{name: "injection in name", shell: Bash, opts: Options{Name: "c; rm"}},
		{name: "injection in binary", shell: Zsh, opts: Options{Binary: "cdx; rm -rf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Render(tt.shell, tt.opts); err == nil {
				t.Error("Render() expected error")
			}
		})
	}
}
