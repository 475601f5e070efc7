package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	ops := []string{"sort", "sum"}

	tests := []struct {
		shell string
		want  []string
	}{
		{"bash", []string{"_numcalc_completions", `operations="sort sum all"`, "--op)", "--input|-f)", "compgen -f", "complete -F _numcalc_completions numcalc"}},
		{"zsh", []string{"#compdef numcalc", "operations=(sort sum all)", "--op[Operation to run]:operation:($operations)", "{-q,--quiet}"}},
		{"fish", []string{"complete -c numcalc -f", "-l op -d 'Operation to run' -xa 'sort sum all'", "-s f -l input", "-rF"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, ops); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("%s script missing %q", tt.shell, w)
				}
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "powershell", nil); err == nil {
		t.Error("expected error for unsupported shell")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %q", buf.String())
	}
}
