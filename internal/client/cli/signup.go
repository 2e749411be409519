package cli

import (
	"context"
	"io"

	"github.com/dmitrijs2005/myauthapp/internal/client/services"
	"github.com/dmitrijs2005/myauthapp/internal/client/validation"
	"github.com/dmitrijs2005/myauthapp/internal/common"
)

const signupFailedMessage = "Signup failed. Try again."

// SignupScreen is the name/email/password form of the unauthenticated stack.
type SignupScreen struct {
	auth     services.AuthService
	prompt   prompter
	navigate func(Route) error

	name     string
	email    string
	password passwordField

	nameError     string
	emailError    string
	passwordError string
}

func NewSignupScreen(auth services.AuthService, p prompter, navigate func(Route) error) *SignupScreen {
	return &SignupScreen{auth: auth, prompt: p, navigate: navigate}
}

func (s *SignupScreen) Name() Route { return RouteSignup }

func (s *SignupScreen) Commands() []string {
	return []string{"name", "email", "password", "toggle", "signup", "login"}
}

func (s *SignupScreen) Handle(ctx context.Context, cmd string) error {
	switch cmd {
	case "name":
		v, err := s.prompt.Text("Name")
		if err != nil {
			return err
		}
		s.name = v
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
	case "signup":
		s.Submit(ctx)
	case "login":
		return s.navigate(RouteLogin)
	default:
		return common.ErrUnknownCommand
	}
	return nil
}

// Submit validates the form and, when it is clean, signs up. If the auth
// service still refuses, the password field reports a generic failure.
func (s *SignupScreen) Submit(ctx context.Context) {
	s.nameError = ""
	s.emailError = ""
	s.passwordError = ""

	errs := validation.ValidateSignup(s.name, s.email, s.password.value)
	s.nameError = errs.Message(validation.FieldName)
	s.emailError = errs.Message(validation.FieldEmail)
	s.passwordError = errs.Message(validation.FieldPassword)
	if !errs.Valid() {
		return
	}

	if !s.auth.Signup(ctx, s.name, s.email, s.password.value) {
		s.passwordError = signupFailedMessage
	}
}

func (s *SignupScreen) Render(w io.Writer) {
	renderHeader(w, "Please enter your name, email and password to signup", s.Name())
	renderField(w, "Name", s.name, s.nameError)
	renderField(w, "Email", s.email, s.emailError)
	renderField(w, "Password", s.password.Display(), s.passwordError)
}
