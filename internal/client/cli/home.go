package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/myauthapp/internal/client/services"
	"github.com/dmitrijs2005/myauthapp/internal/common"
)

// HomeScreen is the only screen of the authenticated stack.
type HomeScreen struct {
	auth services.AuthService
}

func NewHomeScreen(auth services.AuthService) *HomeScreen {
	return &HomeScreen{auth: auth}
}

func (s *HomeScreen) Name() Route { return RouteHome }

func (s *HomeScreen) Commands() []string {
	return []string{"logout"}
}

func (s *HomeScreen) Handle(ctx context.Context, cmd string) error {
	if cmd != "logout" {
		return common.ErrUnknownCommand
	}
	s.auth.Logout(ctx)
	return nil
}

func (s *HomeScreen) Render(w io.Writer) {
	fmt.Fprintf(w, "== %s ==\n", s.Name())
	fmt.Fprintln(w, "Welcome, Dear!")

	user := s.auth.State().User
	if user == nil {
		return
	}
	if user.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", user.Name)
	}
	fmt.Fprintf(w, "Email: %s\n", user.Email)
}
