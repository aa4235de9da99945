package profile

import (
	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/routes/auth"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
)

func SetupProfileRoutes(app *fiber.App, env *web.Env) {
	student := app.Group("/student/profile", auth.RequireRole(session.Student))
	student.Get("/", profilePage(env))
	student.Post("/password", changePasswordHandler(env))
}
