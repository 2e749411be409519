package cli

import (
	"context"
	"io"

	"github.com/dmitrijs2005/myauthapp/internal/client/services"
	"github.com/dmitrijs2005/myauthapp/internal/client/validation"
	"github.com/dmitrijs2005/myauthapp/internal/common"
)

// LoginScreen is the email/password form of the unauthenticated stack.
type LoginScreen struct {
	auth     services.AuthService
	prompt   prompter
	navigate func(Route) error

	email    string
	password passwordField

	emailError    string
	passwordError string
}

func NewLoginScreen(auth services.AuthService, p prompter, navigate func(Route) error) *LoginScreen {
	return &LoginScreen{auth: auth, prompt: p, navigate: navigate}
}

func (s *LoginScreen) Name() Route { return RouteLogin }

func (s *LoginScreen) Commands() []string {
	return []string{"email", "password", "toggle", "login", "signup"}
}

func (s *LoginScreen) Handle(ctx context.Context, cmd string) error {
	switch cmd {
	case "email":
		v, err := s.prompt.Text("Email")
		if err != nil {
			return err
		}
		s.email = v
	case "password":
		return s.password.Read(s.prompt)
	case "toggle":
		s.password.Toggle()
	case "login":
		s.Submit(ctx)
	case "signup":
		return s.navigate(RouteSignup)
	default:
		return common.ErrUnknownCommand
	}
	return nil
}

// Submit validates the form and, when it is clean, logs in. A rejected login
// leaves the form as it is without a message.
func (s *LoginScreen) Submit(ctx context.Context) {
	s.emailError = ""
	s.passwordError = ""

	errs := validation.ValidateLogin(s.email, s.password.value)
	s.emailError = errs.Message(validation.FieldEmail)
	s.passwordError = errs.Message(validation.FieldPassword)
	if !errs.Valid() {
		return
	}

	_ = s.auth.Login(ctx, s.email, s.password.value)
}

func (s *LoginScreen) Render(w io.Writer) {
	renderHeader(w, "Please enter your email and password to login", s.Name())
	renderField(w, "Email", s.email, s.emailError)
	renderField(w, "Password", s.password.Display(), s.passwordError)
}
