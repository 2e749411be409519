package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/myauthapp/internal/common"
	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing line break is dropped but other whitespace is kept, so the
// screens can tell "  " from "". If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

// GetPassword prints a password prompt to w and reads the password. When fd
// is a terminal the input is read from it without echo; otherwise (pipes,
// tests, fd < 0) the next line of reader is used.
func GetPassword(reader *bufio.Reader, fd int, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}

	if fd < 0 || !isTerminal(fd) {
		return readLine(reader)
	}

	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// inputFD returns the descriptor behind in, or -1 when in is not a file.
func inputFD(in io.Reader) int {
	f, ok := in.(interface{ Fd() uintptr })
	if !ok {
		return -1
	}
	return int(f.Fd())
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// prompter asks the user for field values. Screens depend on it instead of
// on the terminal directly.
type prompter interface {
	Text(label string) (string, error)
	// Secret reads a password; visible asks for echoed input.
	Secret(label string, visible bool) (string, error)
}

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

type terminalPrompter struct {
	reader *bufio.Reader
	fd     int
	w      io.Writer
}

func (p *terminalPrompter) Text(label string) (string, error) {
	return getSimpleText(p.reader, "Enter "+strings.ToLower(label), p.w)
}

func (p *terminalPrompter) Secret(label string, visible bool) (string, error) {
	if visible {
		return getSimpleText(p.reader, "Enter "+strings.ToLower(label), p.w)
	}
	return getPassword(p.reader, p.fd, "Enter "+strings.ToLower(label), p.w)
}
