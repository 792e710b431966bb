package cli

import (
	"io"
	"testing"

	"github.com/printworks/rainbowpress/pkg/errors"
)

func TestRootCommandSilencesCobraErrors(t *testing.T) {
	// Errors are printed styled by Execute, not by cobra.
	root := newRootCmd()
	if !root.SilenceErrors {
		t.Error("SilenceErrors = false, want true")
	}
	if !root.SilenceUsage {
		t.Error("SilenceUsage = false, want true")
	}
}

func TestRootCommandReturnsCodedErrors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--paper", "B5"})

	err := root.Execute()
	if err == nil {
		t.Fatal("Execute() error = nil, want INVALID_PAPER")
	}
	if !errors.Is(err, errors.ErrCodeInvalidPaper) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPaper)
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	root := newRootCmd()

	want := map[string]bool{"generate": false, "papers": false, "tui": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
