package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/myauthapp/internal/common"
	"github.com/dmitrijs2005/myauthapp/internal/logging"
)

// shell is what the REPL needs from the navigator.
type shell interface {
	Current() Screen
}

// runREPL renders the current screen, reads one command and hands it to the
// screen, until EOF or "exit"/"quit".
//
// Prompt & Commands
//
//	Every screen:
//	  - help           show available commands
//	  - exit | quit    leave the program
//
//	Login:   email, password, toggle, login, signup
//	Signup:  name, email, password, toggle, signup, login
//	Home:    logout
//
// Prompt read errors other than EOF are logged and the loop goes on. The loop
// ends as soon as ctx is cancelled, even while waiting for a command.
func runREPL(ctx context.Context, nav shell, reader *bufio.Reader, w io.Writer, log logging.Logger, statusFn func() string) {
	for {
		if ctx.Err() != nil {
			return
		}

		screen := nav.Current()
		fmt.Fprintln(w)
		screen.Render(w)
		fmt.Fprintf(w, "myauth%s> ", statusFn())

		line, err := readLineContext(ctx, reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			fmt.Fprintln(w, "Available commands:", strings.Join(append(screen.Commands(), "help", "exit"), ", "))

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			err := screen.Handle(ctx, cmd)
			switch {
			case err == nil:
			case errors.Is(err, common.ErrUnknownCommand):
				fmt.Fprintln(w, "Unknown command:", cmd)
			case errors.Is(err, io.EOF):
				fmt.Fprintln(w)
				return
			default:
				log.Error(ctx, "command failed", "screen", string(screen.Name()), "command", cmd, "err", err)
			}
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readLineContext is readLine that gives up when ctx is done. The abandoned
// read keeps its goroutine until the input yields a line or closes.
func readLineContext(ctx context.Context, reader *bufio.Reader) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := readLine(reader)
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return r.line, r.err
	}
}
