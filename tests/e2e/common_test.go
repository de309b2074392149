package main_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
)

var (
	buildOnce sync.Once
	rvBinary  string
	buildErr  error
	buildOut  []byte
)

// buildRVBinary compiles ./cmd/rv once per test run.
func buildRVBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "rv-e2e-")
		if err != nil {
			buildErr = err
			return
		}
		name := "rv"
		if runtime.GOOS == "windows" {
			name += ".exe"
		}
		rvBinary = filepath.Join(dir, name)

		cmd := exec.Command("go", "build", "-o", rvBinary, "./cmd/rv")
		cmd.Dir = filepath.Join("..", "..")
		buildOut, buildErr = cmd.CombinedOutput()
	})
	if buildErr != nil {
		t.Fatalf("failed to build rv: %v\n%s", buildErr, buildOut)
	}
	return rvBinary
}

// runRV runs the binary with HOME pointed at home and returns stdout and stderr.
func runRV(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	cmd := exec.Command(buildRVBinary(t), args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "USERPROFILE="+home)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
