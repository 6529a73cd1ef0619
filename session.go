package vtcore

import (
	"fmt"
	"log/slog"
)

// Status is the outcome of a Pump call.
type Status int

const (
	Running Status = iota
	Exited
)

// Session owns a PTY-attached child shell and drives an Emulator from it.
// Grounded on original_source/src/session.rs's TerminalSession
// (process_output: drain -> viewport_to_end -> flush responses).
type Session struct {
	Emulator *Emulator

	shell        shellHandle
	responseSink ResponseSink
	logger       *slog.Logger
}

// Open forks the user's shell attached to a new PTY of the given size and
// returns a Session driving a fresh Emulator of the same size.
func Open(cols, rows int, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	sh, err := startShell(cols, rows)
	if err != nil {
		return nil, err
	}
	return newSession(sh, cols, rows, logger), nil
}

func newSession(sh shellHandle, cols, rows int, logger *slog.Logger) *Session {
	return &Session{
		Emulator:     NewEmulator(cols, rows, logger),
		shell:        sh,
		responseSink: sh,
		logger:       logger,
	}
}

// SetResponseSink redirects where queued emulator responses (CPR, DA, DECRQM
// replies, ...) are written, in place of the shell itself — useful for
// tests or for recording/mirroring responses. Passing nil restores the
// default of writing straight back to the shell.
func (s *Session) SetResponseSink(sink ResponseSink) {
	if sink == nil {
		sink = s.shell
	}
	s.responseSink = sink
}

// Pump is non-blocking: it drains every chunk currently available from the
// shell into the emulator, moves the viewport to the end so fresh output is
// visible, and flushes any responses the emulator queued back to the
// shell. It returns Exited once the reader has observed end-of-stream.
func (s *Session) Pump() (Status, error) {
	for {
		select {
		case chunk, ok := <-s.shell.Chunks():
			if !ok {
				s.Emulator.Grid.ViewportToEnd()
				_ = s.flushResponses()
				return Exited, nil
			}
			s.Emulator.Feed(chunk)
		default:
			s.Emulator.Grid.ViewportToEnd()
			err := s.flushResponses()
			return Running, err
		}
	}
}

// flushResponses writes every response the emulator queued, in order, to
// the response sink (the shell, by default). A write failure is logged (I/O
// transient, per spec §7) rather than returned as session-fatal, except
// that it is surfaced to the caller so the session can be treated as
// terminated if desired.
func (s *Session) flushResponses() error {
	for _, resp := range s.Emulator.State.DrainResponses() {
		if _, err := s.responseSink.Write(resp); err != nil {
			s.logger.Warn("vtcore: write response failed", "error", err)
			return fmt.Errorf("vtcore: write response: %w", err)
		}
	}
	return nil
}

// WriteInput writes bytes verbatim to the shell.
func (s *Session) WriteInput(data []byte) error {
	_, err := s.shell.Write(data)
	if err != nil {
		s.logger.Warn("vtcore: write input to shell failed", "error", err)
	}
	return err
}

// Resize resizes the emulator's grid (preserving content, clamping the
// cursor) and then the PTY window size. A winsize failure is logged, not
// fatal.
func (s *Session) Resize(cols, rows int) error {
	s.Emulator.Resize(cols, rows)
	if err := s.shell.Resize(cols, rows); err != nil {
		s.logger.Warn("vtcore: set pty winsize failed", "error", err)
		return fmt.Errorf("vtcore: resize pty: %w", err)
	}
	return nil
}

// Close terminates the child shell and releases the PTY.
func (s *Session) Close() error {
	return s.shell.Close()
}
