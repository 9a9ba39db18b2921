package errors

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "wrapped error",
			err:      errors.New("failed to open database: file is not a database"),
			expected: "Error: failed to open database: file is not a database",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
	}{
		{
			name:     "simple message",
			format:   "something went wrong",
			args:     nil,
			expected: "Error: something went wrong",
		},
		{
			name:     "formatted message with string",
			format:   "failed to load slot %s",
			args:     []interface{}{"favoriteIndices"},
			expected: "Error: failed to load slot favoriteIndices",
		},
		{
			name:     "formatted message with multiple args",
			format:   "index %d out of range [0, %d)",
			args:     []interface{}{12, 12},
			expected: "Error: index 12 out of range [0, 12)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Formatf(tt.format, tt.args...)
			if result != tt.expected {
				t.Errorf("Formatf(%q, %v) = %q, want %q", tt.format, tt.args, result, tt.expected)
			}
		})
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, errors.New("automatic backup failed"))
	if got := buf.String(); got != "Warning: automatic backup failed\n" {
		t.Errorf("Warn() wrote %q", got)
	}

	buf.Reset()
	Warn(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("Warn(nil) wrote %q, want nothing", buf.String())
	}
}

// TestFatal tests the Fatal function using exec helper process
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		// This is the subprocess - call Fatal
		Fatal(errors.New("test error"))
		return
	}

	// Run the test in a subprocess
	cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		// Check that exit code is 1
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		// Check that stderr contains the error message
		stderrStr := stderr.String()
		if !strings.Contains(stderrStr, "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderrStr, "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

// TestFatal_NilError tests that Fatal does nothing when passed a nil error
func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		// This is the subprocess - call Fatal with nil
		Fatal(nil)
		// If we get here, the function returned normally (which is correct)
		os.Exit(0)
	}

	// Run the test in a subprocess
	cmd := exec.Command(os.Args[0], "-test.run=TestFatal_NilError")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	err := cmd.Run()
	if err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}

// TestFatalf tests the Fatalf function using exec helper process
func TestFatalf(t *testing.T) {
	if os.Getenv("GO_TEST_FATALF") == "1" {
		// This is the subprocess - call Fatalf
		Fatalf("index %d out of range [0, %d)", 12, 12)
		return
	}

	// Run the test in a subprocess
	cmd := exec.Command(os.Args[0], "-test.run=TestFatalf")
	cmd.Env = append(os.Environ(), "GO_TEST_FATALF=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		// Check that exit code is 1
		if e.ExitCode() != 1 {
			t.Errorf("Fatalf() exit code = %d, want 1", e.ExitCode())
		}
		// Check that stderr contains the formatted error message
		stderrStr := stderr.String()
		if !strings.Contains(stderrStr, "Error: index 12 out of range [0, 12)") {
			t.Errorf("Fatalf() stderr = %q, want to contain %q", stderrStr, "Error: index 12 out of range [0, 12)")
		}
	} else {
		t.Errorf("Fatalf() did not exit with error: %v", err)
	}
}
