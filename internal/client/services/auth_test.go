package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/myauthapp/internal/client/models"
	"github.com/dmitrijs2005/myauthapp/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- fake store ----

type fakeStore struct {
	mu sync.Mutex

	loadRet  *models.User
	loadGate chan struct{} // when set, Load waits for it to be closed

	calls []string
	saved []models.User
}

func (f *fakeStore) Load(context.Context) *models.User {
	if f.loadGate != nil {
		<-f.loadGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "load")
	return f.loadRet
}

func (f *fakeStore) Save(_ context.Context, u models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "save:"+u.Email)
	f.saved = append(f.saved, u)
}

func (f *fakeStore) Clear(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "clear")
}

func (f *fakeStore) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// ---- helpers ----

func newService(t *testing.T, store *fakeStore) AuthService {
	t.Helper()
	svc := NewAuthService(store, logging.Nop(), 4)
	t.Cleanup(func() { _ = svc.Close(context.Background()) })
	return svc
}

func waitReady(t *testing.T, svc AuthService) {
	t.Helper()
	select {
	case <-svc.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("auth service never finished loading")
	}
}

// ---- tests ----

func TestNewAuthService_StartsLoadingThenRestoresUser(t *testing.T) {
	gate := make(chan struct{})
	store := &fakeStore{loadGate: gate, loadRet: &models.User{Name: "Jane", Email: "jane@example.com"}}
	svc := newService(t, store)

	st := svc.State()
	require.True(t, st.IsLoading)
	require.Nil(t, st.User)

	close(gate)
	waitReady(t, svc)

	st = svc.State()
	require.False(t, st.IsLoading)
	require.Equal(t, &models.User{Name: "Jane", Email: "jane@example.com"}, st.User)
}

func TestNewAuthService_NothingStored(t *testing.T) {
	svc := newService(t, &fakeStore{})
	waitReady(t, svc)

	st := svc.State()
	require.False(t, st.IsLoading)
	require.Nil(t, st.User)
}

func TestLogin_Gate(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		ok       bool
	}{
		{name: "valid", email: "test@example.com", password: "password123", ok: true},
		{name: "no at sign", email: "invalid-email", password: "password123"},
		{name: "short password", email: "test@example.com", password: "12345"},
		// looser than the screen: no dot needed
		{name: "at sign is enough", email: "a@b", password: "123456", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			svc := newService(t, store)
			waitReady(t, svc)

			got := svc.Login(context.Background(), tt.email, tt.password)
			require.Equal(t, tt.ok, got)

			st := svc.State()
			if tt.ok {
				require.Equal(t, &models.User{Email: tt.email}, st.User)
			} else {
				require.Nil(t, st.User, "failed login must leave state unchanged")
			}

			require.NoError(t, svc.Close(context.Background()))
			if tt.ok {
				require.Equal(t, []string{"load", "save:" + tt.email}, store.Calls())
			} else {
				require.Equal(t, []string{"load"}, store.Calls())
			}
		})
	}
}

func TestSignup_Gate(t *testing.T) {
	store := &fakeStore{}
	svc := newService(t, store)
	waitReady(t, svc)
	ctx := context.Background()

	require.False(t, svc.Signup(ctx, "", "jane@example.com", "secret"))
	require.False(t, svc.Signup(ctx, "Jane", "jane.example.com", "secret"))
	require.False(t, svc.Signup(ctx, "Jane", "jane@example.com", "short"))
	require.Nil(t, svc.State().User)

	// the service does not trim: a blank-looking name is still a name
	require.True(t, svc.Signup(ctx, " ", "jane@example.com", "secret"))

	require.True(t, svc.Signup(ctx, "Jane", "jane@example.com", "secret"))
	require.Equal(t, &models.User{Name: "Jane", Email: "jane@example.com"}, svc.State().User)

	require.NoError(t, svc.Close(ctx))
	require.Equal(t, []models.User{
		{Name: " ", Email: "jane@example.com"},
		{Name: "Jane", Email: "jane@example.com"},
	}, store.saved)
}

func TestLogout_ClearsUserAndSnapshot(t *testing.T) {
	store := &fakeStore{loadRet: &models.User{Email: "test@example.com"}}
	svc := newService(t, store)
	waitReady(t, svc)
	require.NotNil(t, svc.State().User)

	svc.Logout(context.Background())
	require.Nil(t, svc.State().User)

	require.NoError(t, svc.Close(context.Background()))
	require.Equal(t, []string{"load", "clear"}, store.Calls())
}

func TestPersistence_FollowsCallOrder(t *testing.T) {
	store := &fakeStore{}
	svc := newService(t, store)
	waitReady(t, svc)
	ctx := context.Background()

	require.True(t, svc.Login(ctx, "one@example.com", "password"))
	svc.Logout(ctx)
	require.True(t, svc.Signup(ctx, "Two", "two@example.com", "password"))
	require.True(t, svc.Login(ctx, "three@example.com", "password"))

	require.NoError(t, svc.Close(ctx))
	require.Equal(t, []string{
		"load",
		"save:one@example.com",
		"clear",
		"save:two@example.com",
		"save:three@example.com",
	}, store.Calls())
}

func TestMutationDuringLoad_WinsOverSnapshot(t *testing.T) {
	gate := make(chan struct{})
	store := &fakeStore{loadGate: gate, loadRet: &models.User{Email: "old@example.com"}}
	svc := newService(t, store)

	require.True(t, svc.Login(context.Background(), "new@example.com", "password"))

	close(gate)
	waitReady(t, svc)

	st := svc.State()
	require.False(t, st.IsLoading)
	require.Equal(t, &models.User{Email: "new@example.com"}, st.User)

	require.NoError(t, svc.Close(context.Background()))
	require.Equal(t, []string{"load", "save:new@example.com"}, store.Calls())
}

func TestSubscribe_ReceivesEveryChange(t *testing.T) {
	gate := make(chan struct{})
	svc := newService(t, &fakeStore{loadGate: gate})

	var (
		mu     sync.Mutex
		states []AuthState
	)
	unsubscribe := svc.Subscribe(func(st AuthState) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, st)
	})

	close(gate)
	waitReady(t, svc)

	ctx := context.Background()
	require.True(t, svc.Login(ctx, "test@example.com", "password123"))
	require.False(t, svc.Login(ctx, "bad", "x"))
	svc.Logout(ctx)

	unsubscribe()
	require.True(t, svc.Login(ctx, "test@example.com", "password123"))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, states, 3)
	require.Equal(t, AuthState{}, states[0])
	require.Equal(t, AuthState{User: &models.User{Email: "test@example.com"}}, states[1])
	require.Equal(t, AuthState{}, states[2])
}

func TestState_ReturnsCopy(t *testing.T) {
	svc := newService(t, &fakeStore{})
	waitReady(t, svc)
	require.True(t, svc.Login(context.Background(), "test@example.com", "password123"))

	st := svc.State()
	st.User.Email = "changed@example.com"
	require.Equal(t, "test@example.com", svc.State().User.Email)
}

func TestClose_IsIdempotentAndDropsLaterWrites(t *testing.T) {
	store := &fakeStore{}
	svc := NewAuthService(store, logging.Nop(), 1)
	waitReady(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.Close(ctx))
	require.NoError(t, svc.Close(ctx))

	// state still changes, persistence does not
	require.True(t, svc.Login(ctx, "late@example.com", "password123"))
	require.Equal(t, "late@example.com", svc.State().User.Email)
	require.Equal(t, []string{"load"}, store.Calls())
}

func TestClose_RespectsContext(t *testing.T) {
	gate := make(chan struct{})
	svc := NewAuthService(&fakeStore{loadGate: gate}, logging.Nop(), 1)
	defer close(gate)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, svc.Close(ctx), context.DeadlineExceeded)
}

func TestSubscribe_LastDeliveryIsLatestState(t *testing.T) {
	gate := make(chan struct{})
	svc := NewAuthService(&fakeStore{loadGate: gate, loadRet: &models.User{Email: "stored@example.com"}}, logging.Nop(), 64)
	t.Cleanup(func() { _ = svc.Close(context.Background()) })

	var (
		mu   sync.Mutex
		last AuthState
		seen int
	)
	svc.Subscribe(func(st AuthState) {
		mu.Lock()
		defer mu.Unlock()
		last = st
		seen++
	})

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				if (i+j)%3 == 0 {
					svc.Logout(ctx)
				} else {
					svc.Login(ctx, "user@example.com", "password123")
				}
			}
		}(i)
		if i == 4 {
			close(gate)
		}
	}
	wg.Wait()
	waitReady(t, svc)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, svc.State(), last)
	require.Greater(t, seen, 0)
}
