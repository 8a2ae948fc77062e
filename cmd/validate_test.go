package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/giantswarm/wirecheck/internal/formatting"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand_JSON(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, "validate", "--config-path", dir, "-o", "json")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	var view formatting.ResultView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if !view.Passed {
		t.Errorf("Expected the built-in composition to pass, got %+v", view)
	}
	if view.Registrations != 10 {
		t.Errorf("Expected 10 registrations, got %d", view.Registrations)
	}
}

func TestValidateCommand_InvalidOutput(t *testing.T) {
	_, err := executeCommand(t, "validate", "--config-path", t.TempDir(), "-o", "xml")
	if err == nil || !strings.Contains(err.Error(), "invalid output format") {
		t.Errorf("Expected invalid output format error, got %v", err)
	}
}

func TestGraphCommand(t *testing.T) {
	out, err := executeCommand(t, "graph", "--config-path", t.TempDir(), "-o", "json")
	if err != nil {
		t.Fatalf("graph failed: %v", err)
	}

	var view formatting.GraphView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(view.Nodes) == 0 || view.Edges == 0 {
		t.Errorf("Expected a non-empty graph, got %+v", view)
	}
}

func TestReportsCommands(t *testing.T) {
	dir := t.TempDir()
	cfg := []byte("validation:\n  enabled: true\n  saveReports: true\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), cfg, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := executeCommand(t, "validate", "--config-path", dir, "-o", "json"); err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	out, err := executeCommand(t, "reports", "list", "--config-path", dir, "-o", "json")
	if err != nil {
		t.Fatalf("reports list failed: %v", err)
	}
	var names []string
	if err := json.Unmarshal([]byte(out), &names); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(names) != 1 {
		t.Fatalf("Expected one saved report, got %v", names)
	}

	out, err = executeCommand(t, "reports", "show", names[0], "--config-path", dir, "-o", "json")
	if err != nil {
		t.Fatalf("reports show failed: %v", err)
	}
	var view formatting.ResultView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if view.RunID != names[0] || !view.Passed {
		t.Errorf("Unexpected report %+v", view)
	}

	out, err = executeCommand(t, "reports", "delete", names[0], "--config-path", dir)
	if err != nil {
		t.Fatalf("reports delete failed: %v", err)
	}
	if !strings.Contains(out, "Deleted report") {
		t.Errorf("Unexpected output %q", out)
	}

	if _, err := executeCommand(t, "reports", "show", names[0], "--config-path", dir); err == nil {
		t.Error("Expected an error for a deleted report")
	}
}
