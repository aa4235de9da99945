package announcements

import (
	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/routes/auth"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
)

func SetupAnnouncementsRoutes(app *fiber.App, env *web.Env) {
	admin := app.Group("/admin/announcements", auth.RequireRole(session.Admin))
	admin.Get("/", adminAnnouncementsPage(env))
	admin.Post("/", postAnnouncementHandler(env))

	app.Get("/student/announcements", auth.RequireRole(session.Student), studentAnnouncementsPage(env))
}
