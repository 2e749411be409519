package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Route names a screen. The names double as screen titles.
type Route string

const (
	RouteLoading Route = "Loading"
	RouteLogin   Route = "Login"
	RouteSignup  Route = "Signup"
	RouteHome    Route = "Welcome to myAuthApp"
)

const (
	appTitle       = "MyAuthApp"
	loadingMessage = "Waiting for your auth state..."
)

// Screen is one view of the app. Handle returns common.ErrUnknownCommand
// for commands the screen does not know.
type Screen interface {
	Name() Route
	Render(w io.Writer)
	Commands() []string
	Handle(ctx context.Context, cmd string) error
}

// loadingScreen is shown until the stored session has been read.
type loadingScreen struct{}

func (loadingScreen) Name() Route        { return RouteLoading }
func (loadingScreen) Commands() []string { return nil }

func (loadingScreen) Render(w io.Writer) {
	fmt.Fprintln(w, loadingMessage)
}

func (loadingScreen) Handle(context.Context, string) error {
	return nil
}

func renderHeader(w io.Writer, description string, title Route) {
	fmt.Fprintln(w, appTitle)
	fmt.Fprintln(w, description)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "== %s ==\n", title)
}

func renderField(w io.Writer, label, value, errMsg string) {
	fmt.Fprintf(w, "%s: %s\n", label, value)
	if errMsg != "" {
		fmt.Fprintf(w, "  ! %s\n", errMsg)
	}
}

// passwordField is a password input with a visibility toggle.
type passwordField struct {
	value   string
	visible bool
}

func (p *passwordField) Toggle() {
	p.visible = !p.visible
}

// Display returns the value as the user sees it: masked unless visible.
func (p *passwordField) Display() string {
	eye := "hidden"
	shown := strings.Repeat("*", len([]rune(p.value)))
	if p.visible {
		eye = "visible"
		shown = p.value
	}
	return fmt.Sprintf("%s [%s]", shown, eye)
}

func (p *passwordField) Read(pr prompter) error {
	v, err := pr.Secret("Password", p.visible)
	if err != nil {
		return err
	}
	p.value = v
	return nil
}
