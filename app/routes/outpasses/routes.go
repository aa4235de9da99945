package outpasses

import (
	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/models"
	"hostel-portal/app/routes/auth"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
)

func SetupOutpassRoutes(app *fiber.App, env *web.Env) {
	admin := app.Group("/admin/outpasses", auth.RequireRole(session.Admin))
	admin.Get("/", adminOutpassesPage(env))
	admin.Post("/:id/approve", decideHandler(env, models.OutpassApproved))
	admin.Post("/:id/reject", decideHandler(env, models.OutpassRejected))

	student := app.Group("/student/outpass", auth.RequireRole(session.Student))
	student.Get("/", studentOutpassPage(env))
	student.Post("/", submitOutpassHandler(env))
	student.Get("/:id/print", printOutpassPage(env))
}
