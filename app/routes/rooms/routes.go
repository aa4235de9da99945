package rooms

import (
	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/routes/auth"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
)

func SetupRoomsRoutes(app *fiber.App, env *web.Env) {
	rooms := app.Group("/admin/rooms", auth.RequireRole(session.Admin))

	rooms.Get("/", roomsPage(env))
	rooms.Get("/print", printRoomsPage(env))
	rooms.Post("/add", addRoomHandler(env))
	rooms.Post("/upload", uploadRoomsHandler(env))
	rooms.Post("/:id/capacity", updateCapacityHandler(env))
	rooms.Post("/:id/delete", deleteRoomHandler(env))
}
