package session

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Store abstracts the session token lifecycle so the access gate and the
// backend client never touch cookie storage directly.
type Store interface {
	Token(c *fiber.Ctx) string
	Set(c *fiber.Ctx, token string)
	Clear(c *fiber.Ctx)
}

// CookieStore keeps the session token in a single HttpOnly cookie. The token
// is opaque to the client; the backend validates it on every API call.
type CookieStore struct {
	name   string
	secure bool
}

// NewCookieStore constructs a cookie-backed session store.
func NewCookieStore(name string, secure bool) *CookieStore {
	if strings.TrimSpace(name) == "" {
		name = "accessToken"
	}
	return &CookieStore{name: name, secure: secure}
}

// Token returns the current session token, or "" when the caller is anonymous.
func (s *CookieStore) Token(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies(s.name))
}

// Set stores the token. Called only from the login handler.
func (s *CookieStore) Set(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Clear removes the token. Called only from the logout handler.
func (s *CookieStore) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
