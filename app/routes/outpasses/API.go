package outpasses

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"hostel-portal/app/client"
	"hostel-portal/app/forms"
	"hostel-portal/app/listview"
	"hostel-portal/app/models"
	"hostel-portal/app/printable"
	"hostel-portal/app/routes/web"
)

const (
	adminPath   = "/admin/outpasses"
	studentPath = "/student/outpass"
)

func statusOptions() []string {
	return []string{
		listview.AllCategories,
		string(models.OutpassPending),
		string(models.OutpassApproved),
		string(models.OutpassRejected),
	}
}

func adminOutpassesPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view := &listview.View[models.Outpass]{
			Search: c.Query("q"),
			Fields: func(o models.Outpass) []string {
				return []string{o.StudentName, o.RoomNo, o.Reason}
			},
			Category:   c.Query("status"),
			CategoryOf: func(o models.Outpass) string { return string(o.Status) },
		}
		_ = view.Load(web.Ctx(c), env.Backend(c).Outpasses)
		list := view.Derive()
		return web.Page(c, "admin/outpasses", "Out Pass Requests", "outpasses", fiber.Map{
			"List":          list,
			"ListError":     web.LoadError(list.Err, "Failed to fetch out pass requests."),
			"FilterOptions": statusOptions(),
		})
	}
}

// decideHandler approves or rejects a request. Only Pending requests can be decided.
func decideHandler(env *web.Env, status models.OutpassStatus) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.ParamID(c)
		if err != nil {
			return err
		}
		backend := env.Backend(c)
		list, err := backend.Outpasses(web.Ctx(c))
		if err != nil {
			return web.RedirectError(c, adminPath, client.UserMessage(err, "Failed to fetch out pass requests."))
		}
		var current *models.Outpass
		for i := range list {
			if list[i].ID == id {
				current = &list[i]
				break
			}
		}
		if current == nil {
			return fiber.NewError(fiber.StatusNotFound, "Out pass not found")
		}
		if current.Status.Terminal() {
			return web.RedirectError(c, adminPath, fmt.Sprintf("This request has already been %s.", pastTense(current.Status)))
		}

		msg, err := backend.UpdateOutpassStatus(web.Ctx(c), id, status)
		if err != nil {
			return web.RedirectError(c, adminPath, client.UserMessage(err, fmt.Sprintf("Failed to %s request.", verb(status))))
		}
		return web.Redirect(c, adminPath, msg.Message)
	}
}

func pastTense(s models.OutpassStatus) string {
	switch s {
	case models.OutpassApproved:
		return "approved"
	case models.OutpassRejected:
		return "rejected"
	default:
		return "decided"
	}
}

func verb(s models.OutpassStatus) string {
	if s == models.OutpassApproved {
		return "approve"
	}
	return "reject"
}

func renderStudent(c *fiber.Ctx, env *web.Env, status int, draft forms.OutpassDraft, formErr string) error {
	view := &listview.View[models.Outpass]{}
	_ = view.Load(web.Ctx(c), env.Backend(c).MyOutpasses)
	list := view.Derive()
	c.Status(status)
	return web.Page(c, "student/outpass", "Out Pass", "outpass", fiber.Map{
		"List":      list,
		"ListError": web.LoadError(list.Err, "Failed to fetch your out pass history."),
		"Draft":     draft,
		"FormError": formErr,
	})
}

func studentOutpassPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return renderStudent(c, env, fiber.StatusOK, forms.NewOutpassDraft(env.Today()), "")
	}
}

func submitOutpassHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		backend := env.Backend(c)
		out := forms.Submit(web.Ctx(c), forms.BindOutpass(c), "Failed to submit out pass request.", func(ctx context.Context, d forms.OutpassDraft) (models.Message, error) {
			req, err := d.Request()
			if err != nil {
				return models.Message{}, err
			}
			return backend.SubmitOutpass(ctx, req)
		})
		if out.Closed {
			return web.Redirect(c, studentPath, out.Message)
		}
		return renderStudent(c, env, web.FailureStatus(out.Err), out.Draft, out.Error)
	}
}

// slip is the printable out-pass: the request plus the student's profile.
type slip struct {
	Outpass *models.Outpass
	Profile models.Student
}

func printOutpassPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.ParamID(c)
		if err != nil {
			return err
		}
		backend := env.Backend(c)
		printer := &printable.PagePrinter{}
		view := &printable.View[slip]{
			Load: func(ctx context.Context) (slip, error) {
				var (
					doc  slip
					list []models.Outpass
				)
				g, ctx := errgroup.WithContext(ctx)
				g.Go(func() (err error) {
					list, err = backend.MyOutpasses(ctx)
					return err
				})
				g.Go(func() (err error) {
					doc.Profile, err = backend.StudentProfile(ctx)
					return err
				})
				if err := g.Wait(); err != nil {
					return slip{}, err
				}
				for i := range list {
					if list[i].ID == id {
						doc.Outpass = &list[i]
						break
					}
				}
				return doc, nil
			},
			Ready:   func(s slip) bool { return s.Outpass != nil },
			Printer: printer,
		}
		res := view.Run(web.Ctx(c))

		data := fiber.Map{
			"Slip":      res.Doc,
			"AutoPrint": printer.Script(),
		}
		switch {
		case res.Err != nil:
			data["LoadError"] = client.UserMessage(res.Err, "Could not load out pass data.")
		case !res.Ready:
			c.Status(fiber.StatusNotFound)
			data["LoadError"] = "Could not load out pass data."
		}
		return web.Print(c, "print/outpass", "Out Pass", data)
	}
}
