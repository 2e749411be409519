package cli

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/myauthapp/internal/client/models"
	"github.com/dmitrijs2005/myauthapp/internal/client/services"
)

type loginCall struct {
	email, password string
}

type signupCall struct {
	name, email, password string
}

var _ services.AuthService = (*fakeAuth)(nil)

// fakeAuth is an in-memory services.AuthService with scripted results.
type fakeAuth struct {
	mu sync.Mutex

	state services.AuthState
	ready chan struct{}
	subs  []func(services.AuthState)

	loginRet  bool
	signupRet bool

	loginCalls  []loginCall
	signupCalls []signupCall
	logoutCalls int
	closed      bool
}

func newFakeAuth() *fakeAuth {
	f := &fakeAuth{ready: make(chan struct{})}
	close(f.ready)
	return f
}

func (f *fakeAuth) State() services.AuthState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeAuth) Ready() <-chan struct{} { return f.ready }

func (f *fakeAuth) set(st services.AuthState) {
	f.mu.Lock()
	f.state = st
	subs := append([]func(services.AuthState){}, f.subs...)
	f.mu.Unlock()
	for _, fn := range subs {
		fn(st)
	}
}

func (f *fakeAuth) Login(_ context.Context, email, password string) bool {
	f.mu.Lock()
	f.loginCalls = append(f.loginCalls, loginCall{email, password})
	ok := f.loginRet
	f.mu.Unlock()
	if ok {
		f.set(services.AuthState{User: &models.User{Email: email}})
	}
	return ok
}

func (f *fakeAuth) Signup(_ context.Context, name, email, password string) bool {
	f.mu.Lock()
	f.signupCalls = append(f.signupCalls, signupCall{name, email, password})
	ok := f.signupRet
	f.mu.Unlock()
	if ok {
		f.set(services.AuthState{User: &models.User{Name: name, Email: email}})
	}
	return ok
}

func (f *fakeAuth) Logout(context.Context) {
	f.mu.Lock()
	f.logoutCalls++
	f.mu.Unlock()
	f.set(services.AuthState{})
}

func (f *fakeAuth) Subscribe(fn func(services.AuthState)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, fn)
	idx := len(f.subs) - 1
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.subs[idx] = func(services.AuthState) {}
	}
}

func (f *fakeAuth) Close(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// fakePrompter answers prompts from a queue.
type fakePrompter struct {
	answers []string
	labels  []string
	visible []bool
}

func (p *fakePrompter) next(label string) (string, error) {
	p.labels = append(p.labels, label)
	if len(p.answers) == 0 {
		return "", errors.New("no more answers")
	}
	v := p.answers[0]
	p.answers = p.answers[1:]
	return v, nil
}

func (p *fakePrompter) Text(label string) (string, error) {
	return p.next(label)
}

func (p *fakePrompter) Secret(label string, visible bool) (string, error) {
	p.visible = append(p.visible, visible)
	return p.next(label)
}

func noNavigate(Route) error { return nil }
