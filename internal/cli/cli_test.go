package cli_test

import (
	"testing"

	"github.com/yaklabco/mapstitch/internal/cli"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "mapstitch" {
		t.Errorf("expected Use to be 'mapstitch', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}

	cmd := cli.NewRootCommand(info)

	expectedSubcommands := []string{"apply", "slice", "inspect", "resolve", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestApplyCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{})

	applyCmd, _, err := cmd.Find([]string{"apply"})
	if err != nil {
		t.Fatalf("apply command not found: %v", err)
	}

	if applyCmd.Flags().Lookup("dry-run") == nil {
		t.Error("apply is missing the --dry-run flag")
	}
}

func TestRootCommandGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{})

	for _, name := range []string{"debug", "color"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root is missing the --%s flag", name)
		}
	}
}
