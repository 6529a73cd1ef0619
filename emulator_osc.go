package vtcore

// OscDispatch implements Perform. No OSC sequence is in scope for this
// emulator core (title/clipboard/hyperlink/shell-integration OSCs are all
// external-collaborator or Non-goal surface per spec §1/§6) — every OSC is
// acknowledged with a diagnostic and otherwise ignored, matching §4.3.7's
// "unknown ... unimplemented sequence: emit a diagnostic and discard".
func (e *Emulator) OscDispatch(params [][]byte, bellTerminated bool) {
	if len(params) == 0 {
		return
	}
	e.diagnostic("unimplemented OSC command=%s", string(params[0]))
}
