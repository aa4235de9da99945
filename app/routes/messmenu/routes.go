package messmenu

import (
	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/routes/auth"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
)

func SetupMessMenuRoutes(app *fiber.App, env *web.Env) {
	app.Get("/student/mess-menu", auth.RequireRole(session.Student), messMenuPage(env))
}

func messMenuPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		week, err := Weekly()
		if err != nil {
			return err
		}
		return web.Page(c, "student/mess_menu", "Weekly Mess Menu", "mess-menu", fiber.Map{
			"Week":  week,
			"Today": env.Today().Weekday().String(),
		})
	}
}
