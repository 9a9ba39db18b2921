package e2e

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEndToEndWorkflow(t *testing.T) {
	// Allow overriding bin dir via env var, default to ../../bin (relative to tests/e2e)
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}

	binDir := os.Getenv("NILA_BIN_DIR")
	if binDir == "" {
		binDir = filepath.Join(cwd, "..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)
	t.Logf("Using bin dir: %s", binDir)

	cliPath := filepath.Join(binDir, "nila")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s. Build it with 'go build -o bin/nila ./cmd/nila'.", cliPath)
	}

	// Create temp home for isolation
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "nila", "nila.db")
	shareDir := filepath.Join(tempDir, "cards")

	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "HOME=") && !strings.HasPrefix(e, "NILA_CONFIG=") {
			env = append(env, e)
		}
	}
	env = append(env,
		fmt.Sprintf("HOME=%s", tempDir),
		fmt.Sprintf("NILA_CONFIG=%s", dbPath),
	)

	t.Log("Initializing storage...")
	runCmd(t, cliPath, env, "init")
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("database not created at %s: %v", dbPath, err)
	}

	t.Log("Favoriting phrases...")
	expectOutput(t, runCmd(t, cliPath, env, "favorite", "toggle", "1"), "Added to favorites")
	expectOutput(t, runCmd(t, cliPath, env, "favorite", "toggle", "4"), "Added to favorites")
	expectOutput(t, runCmd(t, cliPath, env, "favorite", "toggle", "1"), "Removed from favorites")
	expectOutput(t, runCmd(t, cliPath, env, "favorite", "list"), "4. ")

	t.Log("Marking streak...")
	expectOutput(t, runCmd(t, cliPath, env, "streak", "mark"), "Streak marked for today")
	expectOutput(t, runCmd(t, cliPath, env, "streak", "mark"), "Already marked for today")
	expectOutput(t, runCmd(t, cliPath, env, "streak", "show", "--all"), time.Now().Format("2006-01-02"))

	t.Log("Editing profile...")
	runCmd(t, cliPath, env, "profile", "set", "--name", "Ada", "--email", "ada@example", "--dob", "1990-12-10")
	out := runCmd(t, cliPath, env, "profile", "show")
	expectOutput(t, out, "Ada")
	expectOutput(t, out, "Please enter a valid email.")

	t.Log("Sharing a card...")
	expectOutput(t, runCmd(t, cliPath, env, "share", "2", "--out", shareDir, "--density", "1", "--no-clipboard"), "Card saved to")
	cards, err := os.ReadDir(shareDir)
	if err != nil || len(cards) != 1 {
		t.Fatalf("expected one card in %s, got %d (%v)", shareDir, len(cards), err)
	}

	t.Log("Changing settings...")
	runCmd(t, cliPath, env, "settings", "set", "pixel_density", "3")
	expectOutput(t, runCmd(t, cliPath, env, "settings", "show"), "Pixel Density:  3")

	t.Log("Backing up...")
	expectOutput(t, runCmd(t, cliPath, env, "backup", "create"), "Backup created")
	expectOutput(t, runCmd(t, cliPath, env, "backup", "list"), "nila-")

	t.Log("Checking state...")
	expectOutput(t, runCmd(t, cliPath, env, "doctor"), "All diagnostics passed!")

	var dump struct {
		Values map[string]json.RawMessage `json:"values"`
	}
	if err := json.Unmarshal([]byte(runCmd(t, cliPath, env, "debug", "dump")), &dump); err != nil {
		t.Fatalf("debug dump is not JSON: %v", err)
	}
	if got := string(dump.Values["favoriteIndices"]); got != "[3]" {
		t.Errorf("favoriteIndices = %s, want [3]", got)
	}

	t.Log("Rejecting bad input...")
	runCmdFails(t, cliPath, env, "favorite", "toggle", "99")
	runCmdFails(t, cliPath, env, "settings", "set", "timezone", "Mars/Olympus")
}

func runCmd(t *testing.T, path string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}

func runCmdFails(t *testing.T, path string, env []string, args ...string) {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("Command %s %v succeeded, expected failure\nOutput: %s", path, args, out)
	}
	if !strings.Contains(string(out), "Error: ") {
		t.Errorf("Command %s %v output lacks error prefix: %s", path, args, out)
	}
}

func expectOutput(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}
