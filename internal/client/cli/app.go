package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/myauthapp/internal/client/services"
	"github.com/dmitrijs2005/myauthapp/internal/logging"
)

// App owns the auth service for the lifetime of one interactive session.
type App struct {
	auth   services.AuthService
	nav    *Navigator
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp wires the navigation shell over auth, reading commands from in and
// rendering to out.
func NewApp(auth services.AuthService, log logging.Logger, in io.Reader, out io.Writer) *App {
	reader := bufio.NewReader(in)
	p := &terminalPrompter{reader: reader, fd: inputFD(in), w: out}

	return &App{
		auth:   auth,
		nav:    NewNavigator(auth, p),
		reader: reader,
		out:    out,
		log:    log,
	}
}

// Run shows the loading screen until the stored session is read, then runs
// the REPL. On return the auth service is closed so queued writes reach the
// store.
func (a *App) Run(ctx context.Context) error {
	defer a.nav.Close()

	a.nav.Current().Render(a.out)

	select {
	case <-a.auth.Ready():
		runREPL(ctx, a.nav, a.reader, a.out, a.log, a.getStatus)
	case <-ctx.Done():
	}

	return a.auth.Close(context.WithoutCancel(ctx))
}

func (a *App) getStatus() string {
	user := a.auth.State().User
	if user == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", user.DisplayName())
}
