package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer decides whether a lossy conversion may proceed. The
// decision source is injectable so tests can script both answers
// without a terminal.
type Confirmer interface {
	// Confirm presents the dimensions the conversion would drop and
	// blocks for a yes/no decision. false means abort without writing.
	Confirm(lost []string) (bool, error)
}

// TerminalConfirmer asks on a terminal: it prints the loss set to Out
// and reads one line from In. Only "y" or "yes" (case-insensitive)
// proceed; anything else, including EOF, declines.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c TerminalConfirmer) Confirm(lost []string) (bool, error) {
	fmt.Fprintf(c.Out, "Converting will lose: %s\n", strings.Join(lost, ", "))
	fmt.Fprint(c.Out, "Continue? [y/N] ")

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
