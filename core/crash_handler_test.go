package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type fakeRestorer struct {
	calls int
	err   error
}

func (f *fakeRestorer) Restore() error {
	f.calls++
	return f.err
}

func TestWriteCrashRestoresRegisteredTerminal(t *testing.T) {
	r := &fakeRestorer{}
	RegisterTerminal(r)
	defer RegisterTerminal(nil)

	var buf bytes.Buffer
	writeCrash(&buf, "boom", []byte("line1\nline2\n"))

	if r.calls != 1 {
		t.Errorf("Expected 1 restore, got %d", r.calls)
	}
	out := buf.String()
	if !strings.Contains(out, "CRASH DETECTED: boom") {
		t.Errorf("Expected crash banner, got %q", out)
	}
	if !strings.Contains(out, "line1\r\nline2\r\n") {
		t.Errorf("Expected CRLF stack lines, got %q", out)
	}
}

func TestHandleCrashExitsNonZero(t *testing.T) {
	RegisterTerminal(&fakeRestorer{})
	defer RegisterTerminal(nil)

	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = osExit }()

	HandleCrash(errors.New("bad"))
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = osExit }()

	HandleCrash(nil)
	if code != -1 {
		t.Errorf("Expected no exit for nil panic value, got %d", code)
	}
}

func TestGoRecoversPanic(t *testing.T) {
	r := &fakeRestorer{}
	RegisterTerminal(r)
	defer RegisterTerminal(nil)

	done := make(chan int, 1)
	exit = func(c int) { done <- c }
	defer func() { exit = osExit }()

	Go(func() { panic("worker") })

	if code := <-done; code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if r.calls != 1 {
		t.Errorf("Expected terminal restored once, got %d", r.calls)
	}
}
