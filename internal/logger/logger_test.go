package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(func() {
		Reset()
		SetDebug(false)
	})
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInit_WritesHeader(t *testing.T) {
	logPath := setupTestLogger(t)

	if !strings.Contains(readLog(t, logPath), "Logger initialized") {
		t.Error("log file should contain the initialization line")
	}
	if Path() != logPath {
		t.Errorf("Path() = %q, want %q", Path(), logPath)
	}
}

func TestDebug_RespectsLevel(t *testing.T) {
	logPath := setupTestLogger(t)

	SetDebug(false)
	Debug("hidden-%d", 1)
	SetDebug(true)
	Debug("visible-%d", 2)

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-1") {
		t.Error("debug message should be dropped at info level")
	}
	if !strings.Contains(content, "visible-2") {
		t.Error("debug message should be written at debug level")
	}
}

func TestLevels(t *testing.T) {
	logPath := setupTestLogger(t)

	Info("info-marker")
	Warn("warn-marker")
	Error("error-marker")

	content := readLog(t, logPath)
	for _, want := range []string{"level=INFO msg=info-marker", "level=WARN msg=warn-marker", "level=ERROR msg=error-marker"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q", want)
		}
	}
}

func TestComponentLogger(t *testing.T) {
	logPath := setupTestLogger(t)

	ComponentLogger("Recorder").Info("armed", "mode", "voice")
	WithConversation(7).Info("selected")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=Recorder") || !strings.Contains(content, "mode=voice") {
		t.Errorf("component attributes missing from log:\n%s", content)
	}
	if !strings.Contains(content, "conversationID=7") {
		t.Errorf("conversation attribute missing from log:\n%s", content)
	}
}

func TestConcurrentLogging(t *testing.T) {
	setupTestLogger(t)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 100; j++ {
				Info("concurrent %d-%d", n, j)
			}
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestReset_SwitchesFiles(t *testing.T) {
	tmpDir := t.TempDir()
	Reset()
	t.Cleanup(Reset)

	logPath1 := filepath.Join(tmpDir, "log1.log")
	if err := Init(logPath1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	Info("message to log1")

	Reset()

	logPath2 := filepath.Join(tmpDir, "log2.log")
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}
	Info("message to log2")

	content1 := readLog(t, logPath1)
	content2 := readLog(t, logPath2)
	if !strings.Contains(content1, "message to log1") || strings.Contains(content1, "message to log2") {
		t.Errorf("log1 has wrong contents:\n%s", content1)
	}
	if !strings.Contains(content2, "message to log2") || strings.Contains(content2, "message to log1") {
		t.Errorf("log2 has wrong contents:\n%s", content2)
	}
}

func TestRemoveAll(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.log")
	b := filepath.Join(dir, "b.log")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	n, err := removeAll([]string{a, b, filepath.Join(dir, "missing.log")})
	if err != nil {
		t.Fatalf("removeAll returned error: %v", err)
	}
	if n != 2 {
		t.Errorf("removeAll removed %d files, want 2", n)
	}
}

func TestDemoLogPath(t *testing.T) {
	if got := DemoLogPath("basic"); got != "/tmp/dialogo-demo-basic.log" {
		t.Errorf("DemoLogPath = %q", got)
	}
}

func TestLoggers_DiscardWithoutLogFile(t *testing.T) {
	logPath := setupTestLogger(t)
	Close()

	loggers := map[string]func() any{
		"ComponentLogger":  func() any { return ComponentLogger("Recorder") },
		"WithConversation": func() any { return WithConversation(3) },
	}
	for name, get := range loggers {
		t.Run(name, func(t *testing.T) {
			if got := get(); got != discardLogger {
				t.Errorf("%s without a log file should discard, got %v", name, got)
			}
		})
	}

	ComponentLogger("Recorder").Error("after-close")
	if strings.Contains(readLog(t, logPath), "after-close") {
		t.Error("closed log file should not receive output")
	}
}
