package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerboseGating(t *testing.T) {
	var out, errOut bytes.Buffer
	l := New(&out, &errOut, false)

	l.Infof("hidden info")
	l.Successf("hidden success")
	l.Warningf("hidden warning")
	l.Progressf("hidden progress")
	l.Errorf("hidden error")

	if out.Len() != 0 {
		t.Errorf("expected no stdout output when not verbose, got %q", out.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("expected no stderr output when not verbose, got %q", errOut.String())
	}
}

func TestCriticalAlwaysPrints(t *testing.T) {
	var out, errOut bytes.Buffer
	l := New(&out, &errOut, false)

	l.Criticalf("token missing: %s", "ALCF_ACCESS_TOKEN")

	if !strings.Contains(errOut.String(), "token missing: ALCF_ACCESS_TOKEN") {
		t.Errorf("critical message not written to error writer: %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("critical message leaked to stdout: %q", out.String())
	}
}

func TestVerboseOutputRouting(t *testing.T) {
	var out, errOut bytes.Buffer
	l := New(&out, &errOut, true)

	l.Infof("fetching %d endpoints", 3)
	l.Errorf("fetch failed")

	if !strings.Contains(out.String(), "fetching 3 endpoints") {
		t.Errorf("info message missing from stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "fetch failed") {
		t.Errorf("error message missing from stderr: %q", errOut.String())
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Infof("ignored")
	l.Criticalf("also ignored")
	if l.Verbose() {
		t.Error("nop logger should not be verbose")
	}
}
