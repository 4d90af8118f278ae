// Package viewer carries the resolved identity of the current request's
// member. Handlers and services receive it explicitly instead of reading
// tokens or roles from ambient storage.
package viewer

import "github.com/gofiber/fiber/v2"

const localsKey = "viewer"

// Viewer is the authenticated member behind a request, including the game-API
// bearer token the gateway forwards on their behalf.
type Viewer struct {
	MemberID int64
	Nickname string
	Roles    []string
	Token    string
}

// IsAdmin reports whether the viewer carries the admin role.
func (v *Viewer) IsAdmin() bool {
	for _, role := range v.Roles {
		if role == "ADMIN" {
			return true
		}
	}
	return false
}

// Store attaches the viewer to the request context.
func Store(c *fiber.Ctx, v *Viewer) {
	c.Locals(localsKey, v)
}

// FromCtx extracts the viewer set by the session middleware. The second
// return is false for anonymous requests.
func FromCtx(c *fiber.Ctx) (*Viewer, bool) {
	v, ok := c.Locals(localsKey).(*Viewer)
	return v, ok && v != nil
}
