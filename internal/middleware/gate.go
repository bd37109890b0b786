package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fun2learn/fun2learn-web/internal/session"
)

// GateDecision is the outcome of classifying one request path.
type GateDecision int

const (
	// GateOpen paths are served to everyone.
	GateOpen GateDecision = iota
	// GateAuthOnly paths are for anonymous visitors; a signed-in user is
	// redirected to their home screen instead.
	GateAuthOnly
	// GateProtected paths require a session token.
	GateProtected
)

// openPrefixes are served without any session check.
var openPrefixes = []string{"/static", "/metrics", "/healthz"}

// authOnlyPaths are the anonymous entry points, matched exactly.
var authOnlyPaths = map[string]struct{}{
	"/login":  {},
	"/signup": {},
}

// ClassifyPath maps a request path to its gate decision. Every path falls
// into exactly one class; unknown paths are protected.
func ClassifyPath(path string) GateDecision {
	// Anything with a file extension is a static asset.
	if strings.Contains(path, ".") {
		return GateOpen
	}
	for _, prefix := range openPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return GateOpen
		}
	}
	if _, ok := authOnlyPaths[path]; ok {
		return GateAuthOnly
	}
	return GateProtected
}

// Gate enforces session presence on every route in one place. It checks only
// that a token exists; the backend rejects stale or forged tokens on the
// first data fetch.
func Gate(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := store.Token(c)

		switch ClassifyPath(c.Path()) {
		case GateOpen:
			return c.Next()
		case GateAuthOnly:
			if token != "" {
				return c.Redirect("/home", fiber.StatusSeeOther)
			}
			return c.Next()
		default:
			if token == "" {
				return c.Redirect("/login", fiber.StatusSeeOther)
			}
			return c.Next()
		}
	}
}
