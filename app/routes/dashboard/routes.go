package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/routes/auth"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
)

func SetupDashboardRoutes(app *fiber.App, env *web.Env) {
	app.Get("/admin/dashboard", auth.RequireRole(session.Admin), adminDashboardPage(env))
	app.Get("/student/dashboard", auth.RequireRole(session.Student), studentDashboardPage)

	api := app.Group("/api/dashboard", auth.RequireRole(session.Admin))
	api.Get("/", statsAPI(env))
	api.Get("/occupancy", occupancyAPI(env))
	api.Get("/complaints", complaintsAPI(env))
	api.Get("/students", studentsAPI(env))
	api.Get("/outpasses", outpassesAPI(env))
}
