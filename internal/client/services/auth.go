// Package services contains application services for the MyAuthApp client.
// This file defines the auth state container: the current user, the start-up
// loading flag, login/signup/logout and background persistence of the session
// snapshot.
package services

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dmitrijs2005/myauthapp/internal/client/models"
	"github.com/dmitrijs2005/myauthapp/internal/logging"
)

const minPasswordLength = 6

// SessionStore is the persistence the container delegates to. Implementations
// are best effort and report failures by logging, never to the caller.
type SessionStore interface {
	Load(ctx context.Context) *models.User
	Save(ctx context.Context, user models.User)
	Clear(ctx context.Context)
}

// AuthState is a point-in-time view of the container.
type AuthState struct {
	// User is nil while nobody is signed in.
	User *models.User
	// IsLoading stays true until the stored session has been read.
	IsLoading bool
}

// AuthService defines the auth operations the screens use.
//
// Contract:
//   - State: current user and loading flag.
//   - Ready: closed once the initial session load finished and subscribers
//     were told about it.
//   - Login / Signup: apply the service's own minimal checks, switch the
//     user and queue the snapshot write; report whether they did.
//   - Logout: drop the user and queue removal of the snapshot.
//   - Subscribe: get every new state; the returned func unsubscribes.
//     Deliveries are serialized and each carries the state current at
//     delivery time, so the last one seen is always the latest state.
//     Callbacks may call State but must not call Login, Signup or Logout.
//   - Close: stop accepting writes and drain the queue.
//
// Login, Signup and Logout return before persistence completes.
type AuthService interface {
	State() AuthState
	Ready() <-chan struct{}
	Login(ctx context.Context, email, password string) bool
	Signup(ctx context.Context, name, email, password string) bool
	Logout(ctx context.Context)
	Subscribe(fn func(AuthState)) (unsubscribe func())
	Close(ctx context.Context) error
}

type opKind int

const (
	opSave opKind = iota
	opClear
)

type persistOp struct {
	kind opKind
	user models.User
}

// authService keeps state under mu. Writes to the store go through ops and
// are applied by a single worker goroutine in the order they were queued;
// qmu keeps queue order equal to mutation order.
type authService struct {
	store SessionStore
	log   logging.Logger

	mu        sync.Mutex
	user      *models.User
	isLoading bool
	mutated   bool
	subs      map[int]func(AuthState)
	nextSubID int

	// nmu serializes deliveries to subscribers.
	nmu sync.Mutex

	qmu    sync.Mutex
	closed bool
	ops    chan persistOp

	ready chan struct{}
	done  chan struct{}
}

// NewAuthService starts the container: the worker loads the stored session
// first and then serves queued writes. queueSize bounds how many writes may
// be pending before Login/Signup/Logout block.
func NewAuthService(store SessionStore, log logging.Logger, queueSize int) AuthService {
	if queueSize < 1 {
		queueSize = 1
	}
	a := &authService{
		store:     store,
		log:       log,
		isLoading: true,
		subs:      make(map[int]func(AuthState)),
		ops:       make(chan persistOp, queueSize),
		ready:     make(chan struct{}),
		done:      make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *authService) run() {
	defer close(a.done)
	ctx := context.Background()

	a.finishLoading(a.store.Load(ctx))

	for op := range a.ops {
		switch op.kind {
		case opSave:
			a.store.Save(ctx, op.user)
		case opClear:
			a.store.Clear(ctx)
		}
	}
}

// finishLoading publishes the loaded user unless a login, signup or logout
// already happened while the load was in flight.
func (a *authService) finishLoading(loaded *models.User) {
	a.mu.Lock()
	a.isLoading = false
	if !a.mutated {
		a.user = loaded
	}
	a.mu.Unlock()

	if loaded != nil {
		a.log.Info(context.Background(), "session restored", "email", loaded.Email)
	}
	a.publish()
	close(a.ready)
}

func (a *authService) State() AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	st, _ := a.snapshotLocked()
	return st
}

func (a *authService) Ready() <-chan struct{} {
	return a.ready
}

func (a *authService) Login(ctx context.Context, email, password string) bool {
	if !strings.Contains(email, "@") || utf8.RuneCountInString(password) < minPasswordLength {
		a.log.Info(ctx, "login rejected")
		return false
	}

	user := models.User{Email: email}
	a.apply(ctx, &user, persistOp{kind: opSave, user: user})
	a.log.Info(ctx, "login successful", "email", email)
	return true
}

func (a *authService) Signup(ctx context.Context, name, email, password string) bool {
	if name == "" || !strings.Contains(email, "@") || utf8.RuneCountInString(password) < minPasswordLength {
		a.log.Info(ctx, "signup rejected")
		return false
	}

	user := models.User{Name: name, Email: email}
	a.apply(ctx, &user, persistOp{kind: opSave, user: user})
	a.log.Info(ctx, "signup successful", "email", email)
	return true
}

func (a *authService) Logout(ctx context.Context) {
	a.apply(ctx, nil, persistOp{kind: opClear})
	a.log.Info(ctx, "logged out")
}

// apply swaps the user, queues op and notifies subscribers.
func (a *authService) apply(ctx context.Context, user *models.User, op persistOp) {
	a.qmu.Lock()

	a.mu.Lock()
	a.user = user
	a.mutated = true
	a.mu.Unlock()

	if a.closed {
		a.log.Warn(ctx, "auth service closed, change not persisted")
	} else {
		a.ops <- op
	}
	a.qmu.Unlock()

	a.publish()
}

// publish hands the current state to every subscriber. The snapshot is taken
// under nmu, so concurrent publishers cannot deliver an older state last.
func (a *authService) publish() {
	a.nmu.Lock()
	defer a.nmu.Unlock()

	a.mu.Lock()
	st, subs := a.snapshotLocked()
	a.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}

func (a *authService) Subscribe(fn func(AuthState)) func() {
	a.mu.Lock()
	id := a.nextSubID
	a.nextSubID++
	a.subs[id] = fn
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		delete(a.subs, id)
		a.mu.Unlock()
	}
}

// Close stops accepting writes and waits until queued ones reach the store
// or ctx is done. It is safe to call more than once.
func (a *authService) Close(ctx context.Context) error {
	a.qmu.Lock()
	if !a.closed {
		a.closed = true
		close(a.ops)
	}
	a.qmu.Unlock()

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *authService) snapshotLocked() (AuthState, []func(AuthState)) {
	st := AuthState{IsLoading: a.isLoading}
	if a.user != nil {
		u := *a.user
		st.User = &u
	}
	subs := make([]func(AuthState), 0, len(a.subs))
	for _, fn := range a.subs {
		subs = append(subs, fn)
	}
	return st, subs
}
