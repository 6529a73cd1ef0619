// Command vtdemo opens a real PTY-backed shell session, runs a couple of
// commands through it, and prints the resulting grid content and cursor
// position. It is a driving example for vtcore.Session, analogous to the
// teacher's examples/basic demo but exercising a live shell instead of
// writing ANSI strings directly.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/arinal/vtcore"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	sess, err := vtcore.Open(80, 24, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo: open session:", err)
		os.Exit(1)
	}
	defer sess.Close()

	commands := []string{
		"echo '\\033[32mHello from vtdemo\\033[0m'\n",
		"printf 'cursor test'\n",
	}
	for _, cmd := range commands {
		if err := sess.WriteInput([]byte(cmd)); err != nil {
			fmt.Fprintln(os.Stderr, "vtdemo: write input:", err)
			os.Exit(1)
		}
		drainFor(sess, 200*time.Millisecond)
	}

	fmt.Println("=== grid content ===")
	for _, row := range sess.Emulator.Grid.Viewport() {
		fmt.Println(renderRow(row))
	}
	fmt.Printf("cursor: row=%d col=%d\n", sess.Emulator.Cursor.Row, sess.Emulator.Cursor.Col)
}

// drainFor pumps the session repeatedly for the given duration, giving the
// shell time to produce and flush output.
func drainFor(sess *vtcore.Session, d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		status, err := sess.Pump()
		if err != nil {
			fmt.Fprintln(os.Stderr, "vtdemo: pump:", err)
			return
		}
		if status == vtcore.Exited {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func renderRow(row []vtcore.Cell) string {
	var b strings.Builder
	for _, cell := range row {
		b.WriteRune(cell.Ch)
	}
	return strings.TrimRight(b.String(), " ")
}
