package main

import (
	"io"
	"log"
	"os"
	"strings"
	"testing"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	f, err := setupLogging(false)
	if err != nil {
		t.Fatal(err)
	}
	if f != nil {
		t.Error("expected nil log file when debug=false")
		f.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLoggingEnabledWithDebug(t *testing.T) {
	chdir(t, t.TempDir())

	f, err := setupLogging(true)
	if err != nil {
		t.Fatal(err)
	}
	if f == nil {
		t.Fatal("expected log file when debug=true")
	}
	defer f.Close()
	defer log.SetOutput(io.Discard)

	log.Println("test log message")

	info, err := os.Stat(logFileName)
	if err != nil {
		t.Fatalf("failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected log file to contain content")
	}
}

func TestDebugLogClosedAfterFailedCommand(t *testing.T) {
	chdir(t, t.TempDir())

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"verify", "--debug", "--integrator", "rk45"})

	if err := runCLI(root); err == nil {
		t.Fatal("expected the command to fail")
	}
	if logFile != nil {
		t.Error("expected the debug log to be closed")
	}
	if log.Writer() != io.Discard {
		t.Error("expected logging to be detached from the closed file")
	}

	data, err := os.ReadFile(logFileName)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "trajsim") {
		t.Errorf("expected log prefix in %q", data)
	}
}

// chdir changes the working directory to dir and restores it when the test
// ends, matching testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
