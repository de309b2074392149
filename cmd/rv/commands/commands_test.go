package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/config"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/export"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
	"github.com/Dicklesworthstone/responsive_viewer/pkg/viewport"
)

func runRV(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCompileCommand(t *testing.T) {
	out, err := runRV(t, "compile", "--preset", "web")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	expected := "small\t(max-width: 480px)\n" +
		"medium\t(min-width: 481px) and (max-width: 768px)\n" +
		"large\t(min-width: 769px)\n"
	if out != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, out)
	}
}

func TestCompileCommandJSON(t *testing.T) {
	out, err := runRV(t, "compile", "--preset", "terminal", "--json")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	var queries []compiledQuery
	if err := json.Unmarshal([]byte(out), &queries); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(queries) != 4 {
		t.Fatalf("Expected 4 queries, got %d", len(queries))
	}
	if queries[0].Lower != nil || queries[3].Upper != nil || queries[3].Width != nil {
		t.Errorf("Expected open bounds as null, got %+v %+v", queries[0], queries[3])
	}
	if queries[1].Media != "(min-width: 81ch) and (max-width: 100ch)" {
		t.Errorf("Unexpected media %q", queries[1].Media)
	}
}

func TestResolveCommand(t *testing.T) {
	out, err := runRV(t, "resolve", "--preset", "web", "480", "481", "5000")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if out != "480\tsmall\n481\tmedium\n5000\tlarge\n" {
		t.Errorf("Unexpected output:\n%s", out)
	}

	if _, err := runRV(t, "resolve", "wide"); err == nil {
		t.Error("Expected error for a non-numeric width")
	}
}

func TestResolveCommandEmUsesFontSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "em.yaml")
	f := config.File{Name: "em", Units: model.UnitEm, Breakpoints: model.Breakpoints{
		{Name: "small", Width: 30},
		{Name: "large", Width: 1e6},
	}}
	if err := config.Save(path, f); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	out, err := runRV(t, "resolve", "--config", path, "480", "481")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if out != "480\tsmall\n481\tlarge\n" {
		t.Errorf("Unexpected output with 16px em:\n%s", out)
	}

	out, err = runRV(t, "resolve", "--config", path, "--font-size", "10", "300", "301")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if out != "300\tsmall\n301\tlarge\n" {
		t.Errorf("Unexpected output with 10px em:\n%s", out)
	}
}

func TestResolveCommandWithoutTerminal(t *testing.T) {
	_, err := runRV(t, "resolve", "--preset", "web")
	if err == nil {
		t.Skip("stdout is a terminal")
	}
	if !errors.Is(err, viewport.ErrNotTerminal) {
		t.Errorf("Expected ErrNotTerminal, got %v", err)
	}
}

func TestRunCommandReportsMeasureFailure(t *testing.T) {
	sizeErr := errors.New("inappropriate ioctl for device")
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"not a terminal", viewport.ErrNotTerminal, "interactive terminal"},
		{"size failure", sizeErr, "measure terminal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := terminalWidth
			terminalWidth = func(*os.File) (int, error) { return 0, tt.err }
			t.Cleanup(func() {
				terminalWidth = orig
				log.SetOutput(os.Stderr)
			})

			_, err := runRV(t, "run", "--preset", "web")
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected %v wrapped, got %v", tt.err, err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error containing %q, got %q", tt.contains, err.Error())
			}
		})
	}
}

func TestGateCommand(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"gate", "small", "--max", "small"}, "shown\n"},
		{[]string{"gate", "medium", "--max", "small"}, "hidden\n"},
		{[]string{"gate", "medium", "--min", "medium"}, "shown\n"},
		{[]string{"gate", "large", "--show-at-or-below", "medium"}, "hidden\n"},
	}
	for _, tt := range tests {
		out, err := runRV(t, append(tt.args, "--preset", "web")...)
		if err != nil {
			t.Errorf("%v: unexpected error %v", tt.args, err)
			continue
		}
		if out != tt.expected {
			t.Errorf("%v: expected %q, got %q", tt.args, tt.expected, out)
		}
	}

	_, err := runRV(t, "gate", "small", "--min", "medum", "--preset", "web")
	if err == nil || !strings.Contains(err.Error(), `did you mean "medium"`) {
		t.Errorf("Expected suggestion in error, got %v", err)
	}
	_, err = runRV(t, "gate", "small", "--min", "small", "--show-at-or-above", "large", "--preset", "web")
	if !errors.Is(err, model.ErrConflictingBounds) {
		t.Errorf("Expected ErrConflictingBounds, got %v", err)
	}
}

func TestExportCommand(t *testing.T) {
	out, err := runRV(t, "export", "--css", "--preset", "web")
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	if !strings.Contains(out, "@media (min-width: 481px) and (max-width: 768px)") {
		t.Errorf("Expected stylesheet on stdout:\n%s", out)
	}

	dir := filepath.Join(t.TempDir(), "site")
	if _, err := runRV(t, "export", dir, "--preset", "web"); err != nil {
		t.Fatalf("export error: %v", err)
	}
	for _, name := range []string{export.BundleIndex, export.BundleCSS, export.BundleSVG, export.BundlePNG} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Missing %s: %v", name, err)
		}
	}

	mapPath := filepath.Join(t.TempDir(), "map.svg")
	if _, err := runRV(t, "export", "--map", mapPath); err != nil {
		t.Fatalf("export --map error: %v", err)
	}
	if _, err := os.Stat(mapPath); err != nil {
		t.Errorf("Expected map written: %v", err)
	}

	if _, err := runRV(t, "export"); err == nil {
		t.Error("Expected error without a destination")
	}
}

func TestInitCommandNoInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bp.yaml")
	if _, err := runRV(t, "init", "--no-input", "--config", path, "--preset", "web"); err != nil {
		t.Fatalf("init error: %v", err)
	}
	f, err := config.Load(path)
	if err != nil || f.Name != "web" {
		t.Fatalf("Expected web config written, got %+v %v", f, err)
	}

	if _, err := runRV(t, "init", "--no-input", "--config", path); err == nil {
		t.Error("Expected error when the file exists")
	}
	if _, err := runRV(t, "init", "--no-input", "--force", "--config", path); err != nil {
		t.Errorf("Expected --force to overwrite, got %v", err)
	}
	if f, _ := config.Load(path); f.Name != config.DefaultPreset {
		t.Errorf("Expected default preset after overwrite, got %s", f.Name)
	}
}

func TestHistoryCommandEmptyJournal(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	out, err := runRV(t, "history", "--journal", db)
	if err != nil {
		t.Fatalf("history error: %v", err)
	}
	if !strings.Contains(out, "No sessions recorded") {
		t.Errorf("Unexpected output:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runRV(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "rv version v") {
		t.Errorf("Unexpected output %q", out)
	}
}
