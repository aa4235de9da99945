package announcements

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/forms"
	"hostel-portal/app/listview"
	"hostel-portal/app/models"
	"hostel-portal/app/routes/web"
)

const adminPath = "/admin/announcements"

// Item is an announcement as rendered, with the fee notice window resolved
// against today.
type Item struct {
	models.Announcement
	Active bool
}

func items(list []models.Announcement, today time.Time) []Item {
	out := make([]Item, 0, len(list))
	for _, a := range list {
		out = append(out, Item{Announcement: a, Active: a.Notice != nil && a.Notice.ActiveOn(today)})
	}
	return out
}

func load(c *fiber.Ctx, env *web.Env) fiber.Map {
	view := &listview.View[models.Announcement]{}
	_ = view.Load(web.Ctx(c), env.Backend(c).Announcements)
	list := view.Derive()
	return fiber.Map{
		"List":      list,
		"Items":     items(list.Rows, env.Today()),
		"ListError": web.LoadError(list.Err, "Failed to fetch announcements."),
	}
}

func adminAnnouncementsPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data := load(c, env)
		data["Draft"] = forms.AnnouncementDraft{Kind: forms.AnnouncementPlain}
		return web.Page(c, "admin/announcements", "Announcements", "announcements", data)
	}
}

func postAnnouncementHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		backend := env.Backend(c)
		out := forms.Submit(web.Ctx(c), forms.BindAnnouncement(c), "Failed to post announcement.", func(ctx context.Context, d forms.AnnouncementDraft) (models.Message, error) {
			body, err := d.Body()
			if err != nil {
				return models.Message{}, err
			}
			return backend.CreateAnnouncement(ctx, d.Title, body)
		})
		if out.Closed {
			return web.Redirect(c, adminPath, out.Message)
		}
		data := load(c, env)
		data["Draft"] = out.Draft
		data["FormError"] = out.Error
		c.Status(web.FailureStatus(out.Err))
		return web.Page(c, "admin/announcements", "Announcements", "announcements", data)
	}
}

func studentAnnouncementsPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return web.Page(c, "student/announcements", "Announcements", "announcements", load(c, env))
	}
}
