package auth

import (
	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
)

// AuthMiddleware resolves who the request belongs to and stores it for the
// handlers and templates. A request without a portal session is Anonymous
// without asking the backend.
func AuthMiddleware(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := session.Identity{State: session.Anonymous}
		if cred := env.Sessions.Credential(c); !cred.Empty() {
			id = env.Resolver.Resolve(web.Ctx(c), env.Backend(c))
		}
		session.Store(c, id)
		return c.Next()
	}
}

// RequireRole admits only the given role. Anonymous visitors are sent to the
// login page; signed-in users of the other role get a 403.
func RequireRole(role session.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := session.FromCtx(c)
		if id.State == role {
			return c.Next()
		}
		if !id.Authenticated() {
			if web.IsAPI(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not signed in"})
			}
			return c.Redirect("/auth/login")
		}
		return fiber.NewError(fiber.StatusForbidden, "You don't have permission to access this page.")
	}
}
