package students

import (
	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/routes/auth"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
)

func SetupStudentsRoutes(app *fiber.App, env *web.Env) {
	students := app.Group("/admin/students", auth.RequireRole(session.Admin))

	students.Get("/", studentsPage(env))
	students.Get("/print", printStudentsPage(env))
	students.Post("/add", addStudentHandler(env))
	students.Post("/upload", uploadStudentsHandler(env))
	students.Get("/:id/edit", editStudentPage(env))
	students.Post("/:id/edit", updateStudentHandler(env))
	students.Post("/:id/delete", deleteStudentHandler(env))
}
