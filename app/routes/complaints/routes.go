package complaints

import (
	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/routes/auth"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
)

func SetupComplaintsRoutes(app *fiber.App, env *web.Env) {
	admin := app.Group("/admin/complaints", auth.RequireRole(session.Admin))
	admin.Get("/", adminComplaintsPage(env))
	admin.Post("/:id/status", updateStatusHandler(env))

	student := app.Group("/student/complaints", auth.RequireRole(session.Student))
	student.Get("/", studentComplaintsPage(env))
	student.Post("/", submitComplaintHandler(env))
}
