// interactive.go - Line-based command loop over a session registry
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// runInteractive reads one command per line from in until EOF or quit.
// Command errors are printed and the loop carries on.
func runInteractive(cfg *config.Config, in io.Reader) error {
	manager := session.NewManager(cfg)
	out := cfg.OutputFile

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if fields[0] == "quit" {
			break
		}
		if err := dispatch(manager, out, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}

	cfg.Logf(1, "%d games, %d distinct positions\n", manager.Len(), manager.PositionsSeen())
	return scanner.Err()
}

func dispatch(m *session.Manager, out io.Writer, command string, args []string) error {
	switch command {
	case "new":
		if len(args) == 0 {
			fmt.Fprintln(out, m.Create())
			return nil
		}
		id, err := m.CreateFromFEN(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, id)
	case "move":
		if len(args) != 2 {
			return fmt.Errorf("usage: move <id> <move>")
		}
		snap, err := m.Move(args[0], args[1])
		if err != nil {
			return err
		}
		writeSnapshot(out, snap)
	case "legal":
		if len(args) != 1 {
			return fmt.Errorf("usage: legal <id>")
		}
		moves, err := m.LegalMoves(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "legal (%d): %s\n", len(moves), strings.Join(moves, " "))
	case "show":
		if len(args) != 1 {
			return fmt.Errorf("usage: show <id>")
		}
		snap, err := m.Get(args[0])
		if err != nil {
			return err
		}
		writeSnapshot(out, snap)
	case "drop":
		if len(args) != 1 {
			return fmt.Errorf("usage: drop <id>")
		}
		return m.Remove(args[0])
	case "list":
		for _, id := range m.IDs() {
			fmt.Fprintln(out, id)
		}
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

// writeSnapshot prints "<id> <status> <fen>", followed by the result once
// the game is over.
func writeSnapshot(out io.Writer, snap session.Snapshot) {
	fmt.Fprintf(out, "%s %s %s\n", snap.ID, snap.Status, snap.FEN)
	if snap.Result != nil {
		fmt.Fprintf(out, "%s result: %s\n", snap.ID, snap.Result)
	}
}
