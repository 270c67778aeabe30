package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/aliaa11/userboard/internal/api"
	"github.com/aliaa11/userboard/internal/logging"
	"github.com/aliaa11/userboard/internal/models"
)

// apiStub implements api.Client with per-method hooks. Unset hooks fail the
// test so commands cannot silently reach the API when they should not.
type apiStub struct {
	t *testing.T

	registerFn    func(ctx context.Context, req api.RegisterRequest) (*models.User, error)
	loginFn       func(ctx context.Context, creds api.Credentials) (string, error)
	logoutFn      func(ctx context.Context) error
	listUsersFn   func(ctx context.Context, page int) (*models.UserPage, error)
	getUserFn     func(ctx context.Context, id int64) (*models.User, error)
	createUserFn  func(ctx context.Context, data api.UserData) (*models.User, error)
	updateUserFn  func(ctx context.Context, id int64, data api.UserData) (*models.User, error)
	deleteUserFn  func(ctx context.Context, id int64) error
	currentUserFn func(ctx context.Context) (*models.User, error)
}

func (s *apiStub) Register(ctx context.Context, req api.RegisterRequest) (*models.User, error) {
	if s.registerFn == nil {
		s.t.Fatal("unexpected Register call")
	}
	return s.registerFn(ctx, req)
}

func (s *apiStub) Login(ctx context.Context, creds api.Credentials) (string, error) {
	if s.loginFn == nil {
		s.t.Fatal("unexpected Login call")
	}
	return s.loginFn(ctx, creds)
}

func (s *apiStub) Logout(ctx context.Context) error {
	if s.logoutFn == nil {
		s.t.Fatal("unexpected Logout call")
	}
	return s.logoutFn(ctx)
}

func (s *apiStub) ListUsers(ctx context.Context, page int) (*models.UserPage, error) {
	if s.listUsersFn == nil {
		s.t.Fatal("unexpected ListUsers call")
	}
	return s.listUsersFn(ctx, page)
}

func (s *apiStub) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if s.getUserFn == nil {
		s.t.Fatal("unexpected GetUser call")
	}
	return s.getUserFn(ctx, id)
}

func (s *apiStub) CreateUser(ctx context.Context, data api.UserData) (*models.User, error) {
	if s.createUserFn == nil {
		s.t.Fatal("unexpected CreateUser call")
	}
	return s.createUserFn(ctx, data)
}

func (s *apiStub) UpdateUser(ctx context.Context, id int64, data api.UserData) (*models.User, error) {
	if s.updateUserFn == nil {
		s.t.Fatal("unexpected UpdateUser call")
	}
	return s.updateUserFn(ctx, id, data)
}

func (s *apiStub) DeleteUser(ctx context.Context, id int64) error {
	if s.deleteUserFn == nil {
		s.t.Fatal("unexpected DeleteUser call")
	}
	return s.deleteUserFn(ctx, id)
}

func (s *apiStub) CurrentUser(ctx context.Context) (*models.User, error) {
	if s.currentUserFn == nil {
		return nil, nil
	}
	return s.currentUserFn(ctx)
}

func (s *apiStub) CurrentUserID(ctx context.Context) (int64, error) {
	u, _ := s.CurrentUser(ctx)
	if u == nil {
		return 0, api.ErrNotLoggedIn
	}
	return u.ID, nil
}

// sessionStub implements sessionState with recorded calls.
type sessionStub struct {
	user *models.User

	loginToken    string
	logoutCalled  bool
	refreshCalled bool
}

func (s *sessionStub) Init(ctx context.Context) error { return nil }
func (s *sessionStub) Login(ctx context.Context, token string) error {
	s.loginToken = token
	return nil
}
func (s *sessionStub) Logout(ctx context.Context) error {
	s.logoutCalled = true
	s.user = nil
	return nil
}
func (s *sessionStub) Refresh(ctx context.Context) error {
	s.refreshCalled = true
	return nil
}
func (s *sessionStub) CurrentUser() *models.User { return s.user }
func (s *sessionStub) Loading() bool             { return false }

// captureOutput replaces printlnFn for the duration of the test and returns
// a function that yields everything printed so far.
func captureOutput(t *testing.T) func() string {
	t.Helper()
	var b strings.Builder
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		return fmt.Fprintln(&b, a...)
	}
	t.Cleanup(func() { printlnFn = orig })
	return b.String
}

func newTestApp(t *testing.T, stub *apiStub, sess *sessionStub) *App {
	t.Helper()
	stub.t = t
	return &App{
		api:     stub,
		session: sess,
		dash:    newDashboard(stub),
		log:     logging.NewDiscardLogger(),
	}
}

func stubPrompts(t *testing.T, answers map[string]string, password string) {
	t.Helper()
	origST, origGP, origTD := getSimpleText, getPassword, getTextDefault
	getSimpleText = func(_ *App, prompt string) (string, error) {
		v, ok := answers[prompt]
		if !ok {
			t.Fatalf("unexpected prompt %q", prompt)
		}
		return v, nil
	}
	getPassword = func(_ *App) ([]byte, error) { return []byte(password), nil }
	getTextDefault = func(_ *App, prompt, current string) (string, error) {
		v, ok := answers[prompt]
		if !ok {
			return current, nil
		}
		return v, nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
		getTextDefault = origTD
	})
}

func stubConfirm(t *testing.T, answer bool) {
	t.Helper()
	orig := confirmFn
	confirmFn = func(_ *App, _ string) (bool, error) { return answer, nil }
	t.Cleanup(func() { confirmFn = orig })
}
