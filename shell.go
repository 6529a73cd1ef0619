package vtcore

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// shellHandle is the PTY-facing half of a Session: the thing it writes
// input to, resizes, and reads chunks from. It is an interface so Session
// can be driven by a fake in tests without spawning a real shell.
type shellHandle interface {
	Write(p []byte) (int, error)
	Resize(cols, rows int) error
	Close() error
	Chunks() <-chan []byte
}

// shellProcess owns a real child shell attached to a PTY, grounded on
// original_source/src/shell.rs's openpty/fork/setsid/TIOCSCTTY/execvp
// sequence and adapted to Go via github.com/creack/pty, following the
// reader-goroutine idiom in
// Tonksthebear-trybotster/go-hub/internal/agent/agent.go.
type shellProcess struct {
	cmd    *exec.Cmd
	master *os.File
	chunks chan []byte
}

// startShell execs the user's login shell ($SHELL, falling back to
// /bin/sh) attached to a freshly allocated PTY of the given size, and
// starts a reader goroutine pushing 4 KiB chunks into a channel.
func startShell(cols, rows int) (*shellProcess, error) {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		shellPath = "/bin/sh"
	}

	cmd := exec.Command(shellPath)
	cmd.Env = os.Environ()

	master, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, fmt.Errorf("vtcore: start shell %q: %w", shellPath, err)
	}

	sp := &shellProcess{
		cmd:    cmd,
		master: master,
		chunks: make(chan []byte, 64),
	}
	go sp.readLoop()
	return sp, nil
}

func (sp *shellProcess) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := sp.master.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			sp.chunks <- chunk
		}
		if err != nil {
			close(sp.chunks)
			return
		}
	}
}

func (sp *shellProcess) Write(p []byte) (int, error) { return sp.master.Write(p) }

func (sp *shellProcess) Resize(cols, rows int) error {
	return pty.Setsize(sp.master, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

func (sp *shellProcess) Close() error {
	_ = sp.master.Close()
	if sp.cmd.Process == nil {
		return nil
	}
	_ = sp.cmd.Process.Kill()
	_, err := sp.cmd.Process.Wait()
	return err
}

func (sp *shellProcess) Chunks() <-chan []byte { return sp.chunks }
