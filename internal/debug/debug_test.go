package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	l := New("")
	if l.Core().Enabled(-1) {
		t.Error("empty path should produce a disabled core")
	}
}

func TestNew_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pin.log")
	l := New(path)
	l.Sugar().Debugf("pinned %d", 3)
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `"msg":"pinned 3"`) {
		t.Errorf("log file = %q, want message", data)
	}
}
