package vtcore

import "io"

// ResponseSink is where Session.flushResponses writes shell-bound response
// bytes drained from the emulator's queue. It is just an io.Writer —
// adapted from the teacher's provider-interface idiom (ResponseProvider/
// NoopResponse), generalized down to the one collaborator spec actually
// names for the core: everything else the teacher injected (bell, title,
// APC/PM/SOS, clipboard, scrollback, recording) has no response-queue or
// grid effect spec requires, so those providers are not carried forward.
// Session defaults to writing straight back to the shell; SetResponseSink
// swaps in something else (a recorder, a test spy, ...).
type ResponseSink interface {
	io.Writer
}

// NoopResponseSink discards every write. Useful for tests that drive an
// Emulator directly without a live Session, or for a Session that should
// silently swallow responses.
type NoopResponseSink struct{}

func (NoopResponseSink) Write(p []byte) (int, error) { return len(p), nil }

var _ ResponseSink = NoopResponseSink{}
