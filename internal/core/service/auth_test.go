package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quirklo/storefront/internal/core/domain"
	"github.com/quirklo/storefront/internal/core/service"
)

func TestAuthLogin(t *testing.T) {
	t.Run("EmptyEmailFailsValidation", func(t *testing.T) {
		auth := service.NewAuth(0)

		err := auth.Login(t.Context(), "", "secret123")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.False(t, auth.IsAuthenticated())
		assert.NotEmpty(t, auth.AuthError())
	})

	t.Run("EmptyPasswordFailsValidation", func(t *testing.T) {
		auth := service.NewAuth(0)

		err := auth.Login(t.Context(), "x@x.com", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.False(t, auth.IsAuthenticated())
	})

	t.Run("SentinelPasswordFailsCredentials", func(t *testing.T) {
		auth := service.NewAuth(0)

		err := auth.Login(t.Context(), "a@b.com", service.SentinelWrongPassword)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.False(t, auth.IsAuthenticated())
		assert.NotEmpty(t, auth.AuthError())
	})

	t.Run("SuccessCreatesSession", func(t *testing.T) {
		auth := service.NewAuth(0)

		require.NoError(t, auth.Login(t.Context(), "ripley@weyland.com", "secret123"))

		require.True(t, auth.IsAuthenticated())
		sess, ok := auth.Session()
		require.True(t, ok)
		assert.Equal(t, "ripley@weyland.com", sess.Email)
		assert.Equal(t, "ripley", sess.Name)
		assert.NotEmpty(t, sess.UserID)
		assert.Empty(t, auth.AuthError())
	})

	t.Run("FailureClearedByNextSuccess", func(t *testing.T) {
		auth := service.NewAuth(0)

		require.Error(t, auth.Login(t.Context(), "a@b.com", service.SentinelWrongPassword))
		require.NotEmpty(t, auth.AuthError())

		require.NoError(t, auth.Login(t.Context(), "a@b.com", "secret123"))
		assert.Empty(t, auth.AuthError())
	})
}

func TestAuthSignup(t *testing.T) {
	t.Run("ShortPasswordFailsWeak", func(t *testing.T) {
		auth := service.NewAuth(0)

		err := auth.Signup(t.Context(), "a@b.com", "12345", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrWeakPassword)
		assert.False(t, auth.IsAuthenticated())
	})

	t.Run("SixCharPasswordSucceeds", func(t *testing.T) {
		auth := service.NewAuth(0)

		require.NoError(t, auth.Signup(t.Context(), "a@b.com", "123456", ""))
		assert.True(t, auth.IsAuthenticated())
	})

	t.Run("BlankFieldsFailValidation", func(t *testing.T) {
		auth := service.NewAuth(0)

		err := auth.Signup(t.Context(), "  ", "123456", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("GivenNameWinsOverEmail", func(t *testing.T) {
		auth := service.NewAuth(0)

		require.NoError(t, auth.Signup(t.Context(), "a@b.com", "123456", "Ellen"))
		sess, ok := auth.Session()
		require.True(t, ok)
		assert.Equal(t, "Ellen", sess.Name)
	})

	t.Run("NameDefaultsToEmailLocalPart", func(t *testing.T) {
		auth := service.NewAuth(0)

		require.NoError(t, auth.Signup(t.Context(), "newt@lv426.org", "123456", ""))
		sess, ok := auth.Session()
		require.True(t, ok)
		assert.Equal(t, "newt", sess.Name)
	})
}

func TestAuthLogout(t *testing.T) {
	auth := service.NewAuth(0)
	require.NoError(t, auth.Login(t.Context(), "a@b.com", "secret123"))

	auth.Logout()

	assert.False(t, auth.IsAuthenticated())
	_, ok := auth.Session()
	assert.False(t, ok)
}

func TestAuthClearError(t *testing.T) {
	auth := service.NewAuth(0)
	require.Error(t, auth.Login(t.Context(), "", ""))
	require.NotEmpty(t, auth.AuthError())

	auth.ClearAuthError()

	assert.Empty(t, auth.AuthError())
	assert.False(t, auth.IsAuthenticated())
}

func TestAuthPendingGuard(t *testing.T) {
	auth := service.NewAuth(100 * time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = auth.Login(context.Background(), "a@b.com", "secret123")
	}()

	// Let the first call enter its latency window.
	time.Sleep(20 * time.Millisecond)

	err := auth.Login(t.Context(), "other@b.com", "secret123")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthPending)

	wg.Wait()
	require.True(t, auth.IsAuthenticated())
	sess, _ := auth.Session()
	assert.Equal(t, "a@b.com", sess.Email)
}

func TestAuthLatencyCanceledByContext(t *testing.T) {
	auth := service.NewAuth(5 * time.Second)

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	err := auth.Login(ctx, "a@b.com", "secret123")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, auth.IsAuthenticated())
}

func TestAuthSubscribers(t *testing.T) {
	auth := service.NewAuth(0)

	var events []bool
	auth.Subscribe(func(authenticated bool) {
		// The listener must observe the committed state.
		assert.Equal(t, authenticated, auth.IsAuthenticated())
		events = append(events, authenticated)
	})

	require.NoError(t, auth.Login(t.Context(), "a@b.com", "secret123"))
	auth.Logout()

	assert.Equal(t, []bool{true, false}, events)
}

func TestAuthFailureDoesNotNotify(t *testing.T) {
	auth := service.NewAuth(0)

	var notified bool
	auth.Subscribe(func(bool) { notified = true })

	require.Error(t, auth.Login(t.Context(), "a@b.com", service.SentinelWrongPassword))
	assert.False(t, notified)
}
