package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/fun2learn/fun2learn-web/internal/session"
)

func TestCookieStoreRoundTrip(t *testing.T) {
	store := session.NewCookieStore("accessToken", false)
	app := fiber.New()

	app.Get("/set", func(c *fiber.Ctx) error {
		store.Set(c, "tok-123")
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/read", func(c *fiber.Ctx) error {
		return c.SendString(store.Token(c))
	})
	app.Get("/clear", func(c *fiber.Ctx) error {
		store.Clear(c)
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil))
	require.NoError(t, err)

	var tokenCookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "accessToken" {
			tokenCookie = ck
		}
	}
	require.NotNil(t, tokenCookie)
	require.Equal(t, "tok-123", tokenCookie.Value)
	require.True(t, tokenCookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(tokenCookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	body := make([]byte, 7)
	_, _ = resp.Body.Read(body)
	require.Equal(t, "tok-123", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/clear", nil))
	require.NoError(t, err)
	var cleared *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "accessToken" {
			cleared = ck
		}
	}
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)
}

func TestCookieStoreAnonymous(t *testing.T) {
	store := session.NewCookieStore("", false)
	app := fiber.New()
	app.Get("/read", func(c *fiber.Ctx) error {
		if store.Token(c) == "" {
			return c.SendStatus(http.StatusNoContent)
		}
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/read", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}
