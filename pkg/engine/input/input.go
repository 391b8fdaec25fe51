// Package input reads player commands from a terminal or a script and maps
// them to intents.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Reader reads command codes, one per call
type Reader struct {
	r   *bufio.Reader
	raw bool
	fd  int
}

// NewReader returns a line-based reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// NewTerminalReader reads single keys from stdin in raw mode when stdin is
// a terminal, and lines otherwise.
func NewTerminalReader() *Reader {
	fd := int(os.Stdin.Fd())
	return &Reader{
		r:   bufio.NewReader(os.Stdin),
		raw: term.IsTerminal(fd),
		fd:  fd,
	}
}

// Next returns the next command code
func (rd *Reader) Next() (string, error) {
	if rd.raw {
		return rd.nextKey()
	}
	line, err := rd.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// nextKey reads one key press, translating arrow escape sequences
func (rd *Reader) nextKey() (string, error) {
	oldState, err := term.MakeRaw(rd.fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(rd.fd, oldState)

	b1, err := rd.r.ReadByte()
	if err != nil {
		return "", err
	}

	// Ctrl+C
	if b1 == 3 {
		return "quit", nil
	}
	if b1 != 0x1b {
		return string(b1), nil
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	b2, err := rd.r.ReadByte()
	if err != nil || (b2 != '[' && b2 != 'O') {
		return "escape", nil
	}
	b3, err := rd.r.ReadByte()
	if err != nil {
		return "escape", nil
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence
	return "", nil
}
