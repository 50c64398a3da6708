package kinnosuke

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		client, err := NewClient(ClientOptions{
			CompanyId: "foo",
			LoginId:   "bar",
			Password:  "p@ssw0rd",
		})
		require.NoError(t, err)
		require.Equal(t, DefaultBaseUrl, client.BaseUrl.String())
		require.Equal(t, DefaultTimeout, client.Http.GetClient().Timeout)
	})

	t.Run("Overrides", func(t *testing.T) {
		client, err := NewClient(ClientOptions{
			CompanyId: "foo",
			LoginId:   "bar",
			Password:  "p@ssw0rd",
			BaseUrl:   "https://example.com",
			Timeout:   time.Second,
		})
		require.NoError(t, err)
		require.Equal(t, "https://example.com", client.BaseUrl.String())
		require.Equal(t, time.Second, client.Http.GetClient().Timeout)
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		_, err := NewClient(ClientOptions{CompanyId: "foo", LoginId: "bar"})
		require.Error(t, err)
	})
}

func TestForms(t *testing.T) {
	client, err := NewClient(ClientOptions{
		CompanyId: "foo",
		LoginId:   "bar",
		Password:  "p@ssw0rd",
	})
	require.NoError(t, err)

	require.Equal(
		t,
		"module=login&y_companycd=foo&y_logincd=bar&password=p%40ssw0rd",
		client.loginForm(),
	)
	require.Equal(
		t,
		"module=timerecorder&action=timerecorder&scrollbody=0&timerecorder_stamping_type=1&__sectag_123456=abcdef",
		clockForm(ClockIn, CsrfToken{Key: "__sectag_123456", Value: "abcdef"}),
	)
}

func TestLogin(t *testing.T) {
	t.Run("AlreadyLoggedIn", func(t *testing.T) {
		portal := (&fakePortal{}).OnPost(topPage)
		client := newTestClient(t, portal)

		_, err := client.Login(context.Background())
		require.NoError(t, err)
		body, err := client.Login(context.Background())
		require.NoError(t, err)
		require.NotContains(t, string(body), loginButton)

		posts := portal.Posts()
		require.Len(t, posts, 2)
		require.Equal(t, client.loginForm(), posts[0])
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		portal := (&fakePortal{}).OnPost(loginPage)
		client := newTestClient(t, portal)

		_, err := client.Login(context.Background())
		require.ErrorIs(t, err, InvalidCredentials)
	})

	t.Run("UnexpectedStatus", func(t *testing.T) {
		portal := (&fakePortal{}).OnPostStatus(http.StatusInternalServerError, "")
		client := newTestClient(t, portal)

		_, err := client.Login(context.Background())
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, http.StatusInternalServerError, statusErr.Code)
	})
}

func TestGetWithLogin(t *testing.T) {
	t.Run("SessionExpired", func(t *testing.T) {
		portal := (&fakePortal{}).
			OnGet(loginPage).
			OnGet(totalOnlyPage).
			OnPost(topPage)
		client := newTestClient(t, portal)

		body, err := client.GetWithLogin(context.Background(), timeSheetPath)
		require.NoError(t, err)
		require.Contains(t, string(body), "total_list0")
		require.NotContains(t, string(body), loginButton)

		require.Equal(t, []string{timeSheetPath, timeSheetPath}, portal.Gets())
		require.Len(t, portal.Posts(), 1)
	})

	t.Run("SessionAlive", func(t *testing.T) {
		portal := (&fakePortal{}).OnGet(totalOnlyPage)
		client := newTestClient(t, portal)

		_, err := client.GetWithLogin(context.Background(), timeSheetPath)
		require.NoError(t, err)
		require.Len(t, portal.Gets(), 1)
		require.Empty(t, portal.Posts())
	})

	t.Run("RetryStillLoggedOut", func(t *testing.T) {
		portal := (&fakePortal{}).
			OnGet(loginPage).
			OnPost(topPage)
		client := newTestClient(t, portal)

		body, err := client.GetWithLogin(context.Background(), timeSheetPath)
		require.NoError(t, err)
		require.True(t, HasLoginPrompt(body))
		require.Len(t, portal.Gets(), 2)
		require.Len(t, portal.Posts(), 1)
	})

	t.Run("LoginRejected", func(t *testing.T) {
		portal := (&fakePortal{}).
			OnGet(loginPage).
			OnPost(loginPage)
		client := newTestClient(t, portal)

		_, err := client.GetWithLogin(context.Background(), timeSheetPath)
		require.ErrorIs(t, err, InvalidCredentials)
		require.Len(t, portal.Gets(), 1)
	})
}
