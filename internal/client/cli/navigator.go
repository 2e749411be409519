package cli

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/myauthapp/internal/client/services"
	"github.com/dmitrijs2005/myauthapp/internal/common"
)

// Navigator is the navigation shell. It shows the loading screen until the
// session is read, the home screen while someone is signed in, and the
// login/signup stack otherwise.
//
// Whenever the signed-in user changes the login/signup stack is rebuilt
// starting at Login, so nothing typed before a login survives a logout.
type Navigator struct {
	auth   services.AuthService
	prompt prompter

	mu          sync.Mutex
	current     Screen
	lastEmail   string
	signedIn    bool
	unsubscribe func()
}

func NewNavigator(auth services.AuthService, p prompter) *Navigator {
	n := &Navigator{auth: auth, prompt: p}
	n.current = n.build(RouteLogin)

	st := auth.State()
	n.signedIn = st.User != nil
	if st.User != nil {
		n.lastEmail = st.User.Email
	}
	n.unsubscribe = auth.Subscribe(n.onAuthChange)
	return n
}

func (n *Navigator) onAuthChange(st services.AuthState) {
	n.mu.Lock()
	defer n.mu.Unlock()

	signedIn := st.User != nil
	email := ""
	if signedIn {
		email = st.User.Email
	}
	if signedIn == n.signedIn && email == n.lastEmail {
		return
	}
	n.signedIn, n.lastEmail = signedIn, email
	n.current = n.build(RouteLogin)
}

func (n *Navigator) build(route Route) Screen {
	switch route {
	case RouteLogin:
		return NewLoginScreen(n.auth, n.prompt, n.Navigate)
	case RouteSignup:
		return NewSignupScreen(n.auth, n.prompt, n.Navigate)
	}
	return nil
}

// Navigate switches the unauthenticated stack to a fresh instance of route.
// Only Login and Signup can be navigated to.
func (n *Navigator) Navigate(route Route) error {
	screen := n.build(route)
	if screen == nil {
		return fmt.Errorf("%w: %s", common.ErrUnknownScreen, route)
	}

	n.mu.Lock()
	n.current = screen
	n.mu.Unlock()
	return nil
}

// Current returns the screen to render for the present auth state.
func (n *Navigator) Current() Screen {
	st := n.auth.State()
	switch {
	case st.IsLoading:
		return loadingScreen{}
	case st.User != nil:
		return NewHomeScreen(n.auth)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Close detaches the navigator from the auth service.
func (n *Navigator) Close() {
	if n.unsubscribe != nil {
		n.unsubscribe()
	}
}
