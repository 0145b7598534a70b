package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quirklo/storefront/internal/core/domain"
	"github.com/quirklo/storefront/internal/core/port"
)

var _ port.Authenticator = (*Auth)(nil)

// SentinelWrongPassword simulates the wrong-password case: logins with this
// exact password always fail with ErrInvalidCredentials.
const SentinelWrongPassword = "wrongpassword"

const minPasswordLen = 6

// Error copy shown to the user, kept from the storefront this simulates.
const (
	msgFieldsMissingLogin  = "Oof! Fill out all fields bestie! 🙄"
	msgWrongPassword       = "Bro... Wrong password. Wanna try again or cry? 😢"
	msgFieldsMissingSignup = "Fill in the blanks! Don't leave us hanging! 😫"
	msgWeakPassword        = "Weak password energy! Make it 6+ characters! 💪"
)

// Auth is the simulated auth store: Anonymous or Authenticated, nothing
// durable. Login and Signup block for a configured artificial latency
// before validating. A second call while one is pending is rejected with
// ErrAuthPending. Subscribers are notified synchronously after every
// authentication-state change, strictly after the session swap completes.
type Auth struct {
	mu          sync.Mutex
	session     *domain.Session
	lastErr     string
	pending     bool
	latency     time.Duration
	subscribers []func(authenticated bool)
}

func NewAuth(latency time.Duration) *Auth {
	return &Auth{latency: latency}
}

// Login validates the credentials after the simulated latency and creates a
// session on success. The display name defaults to the local part of the
// email. On failure the session stays absent and AuthError carries the
// user-facing message.
func (a *Auth) Login(ctx context.Context, email, password string) error {
	const op = "Auth.Login"

	if err := a.begin(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer a.end()

	if err := a.wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		a.fail(msgFieldsMissingLogin)
		return fmt.Errorf("%s: empty email or password: %w",
			op, domain.ErrValidation)
	}
	if password == SentinelWrongPassword {
		a.fail(msgWrongPassword)
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
	}

	a.establish(domain.Session{
		UserID: uuid.NewString(),
		Email:  email,
		Name:   emailLocalPart(email),
	})
	slog.Info("logged in", "op", op, "email", email)
	return nil
}

// Signup mirrors Login with a minimum password length instead of the
// wrong-password sentinel. The given name wins over the email-derived one.
func (a *Auth) Signup(ctx context.Context, email, password, name string) error {
	const op = "Auth.Signup"

	if err := a.begin(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer a.end()

	if err := a.wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		a.fail(msgFieldsMissingSignup)
		return fmt.Errorf("%s: empty email or password: %w",
			op, domain.ErrValidation)
	}
	if len(password) < minPasswordLen {
		a.fail(msgWeakPassword)
		return fmt.Errorf("%s: %w", op, domain.ErrWeakPassword)
	}

	if name == "" {
		name = emailLocalPart(email)
	}
	a.establish(domain.Session{
		UserID: uuid.NewString(),
		Email:  email,
		Name:   name,
	})
	slog.Info("signed up", "op", op, "email", email)
	return nil
}

// Logout unconditionally drops the session.
func (a *Auth) Logout() {
	a.mu.Lock()
	was := a.session != nil
	a.session = nil
	a.mu.Unlock()

	if was {
		a.notify(false)
	}
}

// Session returns the current session, if any.
func (a *Auth) Session() (domain.Session, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return domain.Session{}, false
	}
	return *a.session, true
}

func (a *Auth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil
}

// AuthError returns the stored user-facing error message, empty when none.
func (a *Auth) AuthError() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// ClearAuthError clears the stored message without touching the session.
func (a *Auth) ClearAuthError() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastErr = ""
}

// Subscribe registers a listener for authentication-state changes. The
// listener runs synchronously after each transition commits.
func (a *Auth) Subscribe(fn func(authenticated bool)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.subscribers = append(a.subscribers, fn)
}

func (a *Auth) begin() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending {
		return domain.ErrAuthPending
	}
	a.pending = true
	return nil
}

func (a *Auth) end() {
	a.mu.Lock()
	a.pending = false
	a.mu.Unlock()
}

// wait simulates network latency. ctx cancels the wait.
func (a *Auth) wait(ctx context.Context) error {
	if a.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(a.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (a *Auth) fail(msg string) {
	a.mu.Lock()
	a.lastErr = msg
	a.mu.Unlock()
}

func (a *Auth) establish(s domain.Session) {
	a.mu.Lock()
	a.session = &s
	a.lastErr = ""
	a.mu.Unlock()

	a.notify(true)
}

func (a *Auth) notify(authenticated bool) {
	a.mu.Lock()
	subs := make([]func(bool), len(a.subscribers))
	copy(subs, a.subscribers)
	a.mu.Unlock()

	for _, fn := range subs {
		fn(authenticated)
	}
}

func emailLocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
