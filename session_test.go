package vtcore

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

// fakeShell is an in-process shellHandle used to test Session without a
// real PTY or child process.
type fakeShell struct {
	chunks    chan []byte
	written   [][]byte
	resized   [2]int
	closed    bool
	writeErr  error
}

func newFakeShell() *fakeShell {
	return &fakeShell{chunks: make(chan []byte, 16)}
}

func (f *fakeShell) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	cp := append([]byte(nil), p...)
	f.written = append(f.written, cp)
	return len(p), nil
}

func (f *fakeShell) Resize(cols, rows int) error {
	f.resized = [2]int{cols, rows}
	return nil
}

func (f *fakeShell) Close() error {
	f.closed = true
	close(f.chunks)
	return nil
}

func (f *fakeShell) Chunks() <-chan []byte { return f.chunks }

var _ shellHandle = (*fakeShell)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionPumpFeedsEmulator(t *testing.T) {
	sh := newFakeShell()
	sess := newSession(sh, 80, 24, testLogger())

	sh.chunks <- []byte("Hello")

	status, err := sess.Pump()
	if err != nil {
		t.Fatalf("Pump() error = %v", err)
	}
	if status != Running {
		t.Fatalf("status = %v, want Running", status)
	}
	if sess.Emulator.Cursor.Col != 5 {
		t.Fatalf("cursor col = %d, want 5", sess.Emulator.Cursor.Col)
	}
}

func TestSessionPumpFlushesResponses(t *testing.T) {
	sh := newFakeShell()
	sess := newSession(sh, 80, 24, testLogger())

	sh.chunks <- []byte("\x1b[6n")

	if _, err := sess.Pump(); err != nil {
		t.Fatalf("Pump() error = %v", err)
	}
	if len(sh.written) != 1 {
		t.Fatalf("expected one flushed response, got %d", len(sh.written))
	}
	if string(sh.written[0]) != "\x1b[1;1R" {
		t.Fatalf("response = %q, want %q", sh.written[0], "\x1b[1;1R")
	}
}

func TestSessionSetResponseSinkRedirectsFlush(t *testing.T) {
	sh := newFakeShell()
	sess := newSession(sh, 80, 24, testLogger())

	var captured [][]byte
	sess.SetResponseSink(recordingSink{out: &captured})

	sh.chunks <- []byte("\x1b[6n")
	if _, err := sess.Pump(); err != nil {
		t.Fatalf("Pump() error = %v", err)
	}
	if len(sh.written) != 0 {
		t.Fatalf("expected nothing written to the shell, got %d", len(sh.written))
	}
	if len(captured) != 1 || string(captured[0]) != "\x1b[1;1R" {
		t.Fatalf("captured = %v, want one CPR response", captured)
	}

	sess.SetResponseSink(nil)
	sh.chunks <- []byte("\x1b[6n")
	if _, err := sess.Pump(); err != nil {
		t.Fatalf("Pump() error = %v", err)
	}
	if len(sh.written) != 1 {
		t.Fatalf("expected SetResponseSink(nil) to restore the shell sink, got %d writes", len(sh.written))
	}
}

type recordingSink struct {
	out *[][]byte
}

func (r recordingSink) Write(p []byte) (int, error) {
	*r.out = append(*r.out, append([]byte(nil), p...))
	return len(p), nil
}

func TestSessionPumpExitsOnEOF(t *testing.T) {
	sh := newFakeShell()
	sess := newSession(sh, 80, 24, testLogger())
	close(sh.chunks)

	status, err := sess.Pump()
	if err != nil {
		t.Fatalf("Pump() error = %v", err)
	}
	if status != Exited {
		t.Fatalf("status = %v, want Exited", status)
	}
}

func TestSessionWriteInputFailure(t *testing.T) {
	sh := newFakeShell()
	sh.writeErr = errors.New("boom")
	sess := newSession(sh, 80, 24, testLogger())

	if err := sess.WriteInput([]byte("x")); err == nil {
		t.Fatalf("expected error from WriteInput")
	}
}

func TestSessionResize(t *testing.T) {
	sh := newFakeShell()
	sess := newSession(sh, 80, 24, testLogger())

	if err := sess.Resize(100, 30); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if sess.Emulator.Grid.Width != 100 || sess.Emulator.Grid.ViewportHeight != 30 {
		t.Fatalf("emulator grid not resized")
	}
	if sh.resized != [2]int{100, 30} {
		t.Fatalf("pty winsize not updated, got %v", sh.resized)
	}
}
