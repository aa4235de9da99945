package auth

import (
	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/client"
	"hostel-portal/app/forms"
	"hostel-portal/app/logger"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
)

func SetupAuthRoutes(app *fiber.App, env *web.Env) {
	auth := app.Group("/auth")

	auth.Get("/login", showLoginPage)
	auth.Post("/login", loginHandler(env))
	auth.Post("/logout", logoutHandler(env))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(session.FromCtx(c).HomePath())
	})
}

func showLoginPage(c *fiber.Ctx) error {
	if id := session.FromCtx(c); id.Authenticated() {
		return c.Redirect(id.HomePath())
	}
	return renderLogin(c, fiber.StatusOK, forms.LoginDraft{Role: forms.RoleStudent}, "")
}

func renderLogin(c *fiber.Ctx, status int, draft forms.LoginDraft, errMsg string) error {
	return c.Status(status).Render("auth/login", fiber.Map{
		"Title": web.Title("Login"),
		"Draft": draft,
		"Error": errMsg,
	}, "layouts/bare")
}

func loginHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		draft := forms.BindLogin(c)
		if err := draft.Validate(); err != nil {
			return renderLogin(c, fiber.StatusBadRequest, draft, client.UserMessage(err, ""))
		}

		var (
			cred client.Credential
			err  error
			home string
		)
		if draft.Role == forms.RoleAdmin {
			cred, err = env.Client.LoginAdmin(web.Ctx(c), draft.Identifier, draft.Password)
			home = "/admin/dashboard"
		} else {
			cred, err = env.Client.LoginStudent(web.Ctx(c), draft.Identifier, draft.Password)
			home = "/student/dashboard"
		}
		if err == nil {
			err = env.Sessions.SetCookie(c, draft.Identifier, cred)
		}
		if err != nil {
			logger.Info().Str("role", draft.Role).Str("user", draft.Identifier).Err(err).Msg("login failed")
			draft.Password = ""
			status := fiber.StatusUnauthorized
			if e, ok := client.AsError(err); ok && e.Kind != client.KindServer {
				status = fiber.StatusBadGateway
			}
			return renderLogin(c, status, draft, client.UserMessage(err, "Login failed. Please try again."))
		}

		logger.Info().Str("role", draft.Role).Str("user", draft.Identifier).Msg("login")
		return c.Redirect(home, fiber.StatusSeeOther)
	}
}

// logoutHandler only forgets the portal session; the backend has no logout
// endpoint, so its session lives on until it expires.
func logoutHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		env.Sessions.ClearCookie(c)
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
}
