package dashboard

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"hostel-portal/app/client"
	"hostel-portal/app/models"
	"hostel-portal/app/routes/web"
	"hostel-portal/app/session"
	"hostel-portal/app/summary"
)

// loadStats fetches every collection the admin dashboard needs in parallel.
// Any failed fetch fails the whole dashboard.
func loadStats(ctx context.Context, backend *client.Client) (models.DashboardStats, error) {
	var (
		rooms      []models.Room
		students   []models.Student
		complaints []models.Complaint
		outpasses  []models.Outpass
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rooms, err = backend.Rooms(ctx)
		return err
	})
	g.Go(func() (err error) {
		students, err = backend.Students(ctx)
		return err
	})
	g.Go(func() (err error) {
		complaints, err = backend.Complaints(ctx)
		return err
	})
	g.Go(func() (err error) {
		outpasses, err = backend.Outpasses(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	return summary.Dashboard(rooms, students, complaints, outpasses), nil
}

func adminDashboardPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := loadStats(web.Ctx(c), env.Backend(c))
		data := fiber.Map{"Stats": stats}
		if err != nil {
			data["LoadError"] = client.UserMessage(err, "Failed to load dashboard data.")
		}
		return web.Page(c, "admin/dashboard", "Dashboard", "dashboard", data)
	}
}

func studentDashboardPage(c *fiber.Ctx) error {
	id := session.FromCtx(c)
	return web.Page(c, "student/dashboard", "Dashboard", "dashboard", fiber.Map{
		"Profile": id.Student,
	})
}

func apiError(c *fiber.Ctx, err error, fallback string) error {
	status := fiber.StatusBadGateway
	if e, ok := client.AsError(err); ok && e.Kind == client.KindTimeout {
		status = fiber.StatusGatewayTimeout
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   client.UserMessage(err, fallback),
	})
}

func statsAPI(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := loadStats(web.Ctx(c), env.Backend(c))
		if err != nil {
			return apiError(c, err, "Failed to fetch dashboard statistics")
		}
		return c.JSON(fiber.Map{"success": true, "data": stats})
	}
}

// The widget endpoints each fetch one collection, so one failing widget
// leaves the others intact.

func occupancyAPI(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rooms, err := env.Backend(c).Rooms(web.Ctx(c))
		if err != nil {
			return apiError(c, err, "Failed to fetch room data")
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"floors":   summary.OccupancyByFloor(rooms),
				"statuses": summary.CountRoomStatuses(rooms),
			},
		})
	}
}

func complaintsAPI(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := env.Backend(c).Complaints(web.Ctx(c))
		if err != nil {
			return apiError(c, err, "Failed to fetch complaints")
		}
		return c.JSON(fiber.Map{"success": true, "data": summary.Complaints(list)})
	}
}

func studentsAPI(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := env.Backend(c).Students(web.Ctx(c))
		if err != nil {
			return apiError(c, err, "Failed to fetch students")
		}
		return c.JSON(fiber.Map{"success": true, "data": summary.StudentsByYear(list)})
	}
}

func outpassesAPI(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := env.Backend(c).Outpasses(web.Ctx(c))
		if err != nil {
			return apiError(c, err, "Failed to fetch out pass requests")
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    summary.PendingOutpasses(list, summary.DashboardPendingLimit),
		})
	}
}
