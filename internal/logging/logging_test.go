package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := Logger{Out: &out, Err: &errOut}

	l.Infof("hidden %d", 1)
	l.Debugf("hidden %d", 2)
	l.Warnf("careful")
	l.Errorf("broken")

	if out.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", out.String())
	}
	if got := errOut.String(); got != "[warn] careful\n[error] broken\n" {
		t.Fatalf("stderr=%q", got)
	}

	out.Reset()
	l.Debug = true
	l.Infof("shown")
	l.Debugf("shown too")
	if got := out.String(); got != "[info] shown\n[debug] shown too\n" {
		t.Fatalf("stdout=%q", got)
	}
}

func TestErrorfAndReturn(t *testing.T) {
	var errOut bytes.Buffer
	err := Logger{Err: &errOut}.ErrorfAndReturn("failed: %s", "x")
	if err == nil || err.Error() != "failed: x" {
		t.Fatalf("err=%v", err)
	}
	if !strings.Contains(errOut.String(), "failed: x") {
		t.Fatalf("stderr=%q", errOut.String())
	}
}

func TestFileReceivesEveryLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dev-settings.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	var sink bytes.Buffer
	l := Logger{Verbose: true, Out: &sink, Err: &sink, File: f}
	l.Infof("one")
	l.Warnf("two")
	_ = f.Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "[info] one") || !strings.Contains(string(b), "[warn] two") {
		t.Fatalf("log file=%q", b)
	}
}
