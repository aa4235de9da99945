package complaints

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/forms"
	"hostel-portal/app/listview"
	"hostel-portal/app/models"
	"hostel-portal/app/routes/web"
)

const (
	adminPath   = "/admin/complaints"
	studentPath = "/student/complaints"
)

func statusOptions() []string {
	opts := []string{listview.AllCategories}
	for _, s := range models.ComplaintStatuses {
		opts = append(opts, string(s))
	}
	return opts
}

func renderAdmin(c *fiber.Ctx, status int, view *listview.View[models.Complaint], rowID int, rowErr string) error {
	list := view.Derive()
	c.Status(status)
	return web.Page(c, "admin/complaints", "Complaints", "complaints", fiber.Map{
		"List":          list,
		"ListError":     web.LoadError(list.Err, "Failed to fetch complaints. Please log in again."),
		"Statuses":      models.ComplaintStatuses,
		"FilterOptions": statusOptions(),
		"RowID":         rowID,
		"RowError":      rowErr,
	})
}

func adminView(c *fiber.Ctx) *listview.View[models.Complaint] {
	return &listview.View[models.Complaint]{
		Search: c.Query("q"),
		Fields: func(cm models.Complaint) []string {
			return []string{cm.StudentName, cm.RoomNo, cm.Description}
		},
		Category:   c.Query("status"),
		CategoryOf: func(cm models.Complaint) string { return string(cm.Status) },
	}
}

func adminComplaintsPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view := adminView(c)
		_ = view.Load(web.Ctx(c), env.Backend(c).Complaints)
		return renderAdmin(c, fiber.StatusOK, view, 0, "")
	}
}

// updateStatusHandler allows any transition between the known statuses; the
// backend decides whether it is legal.
func updateStatusHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.ParamID(c)
		if err != nil {
			return err
		}
		backend := env.Backend(c)
		out := forms.Submit(web.Ctx(c), forms.BindComplaintStatus(c, id), "Failed to update status.", func(ctx context.Context, d forms.ComplaintStatusDraft) (models.Message, error) {
			return backend.UpdateComplaintStatus(ctx, d.ComplaintID, d.Status)
		})
		if out.Closed {
			return web.Redirect(c, adminPath, out.Message)
		}
		view := adminView(c)
		_ = view.Load(web.Ctx(c), backend.Complaints)
		return renderAdmin(c, web.FailureStatus(out.Err), view, id, out.Error)
	}
}

func renderStudent(c *fiber.Ctx, status int, view *listview.View[models.Complaint], draft forms.ComplaintDraft, formErr string) error {
	list := view.Derive()
	c.Status(status)
	return web.Page(c, "student/complaints", "My Complaints", "complaints", fiber.Map{
		"List":      list,
		"ListError": web.LoadError(list.Err, "Failed to fetch your complaints. Please log in again."),
		"Draft":     draft,
		"FormError": formErr,
	})
}

func studentComplaintsPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view := &listview.View[models.Complaint]{}
		_ = view.Load(web.Ctx(c), env.Backend(c).MyComplaints)
		return renderStudent(c, fiber.StatusOK, view, forms.ComplaintDraft{}, "")
	}
}

func submitComplaintHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		backend := env.Backend(c)
		out := forms.Submit(web.Ctx(c), forms.BindComplaint(c), "Failed to submit complaint.", func(ctx context.Context, d forms.ComplaintDraft) (models.Message, error) {
			return backend.SubmitComplaint(ctx, d.Description)
		})
		if out.Closed {
			return web.Redirect(c, studentPath, out.Message)
		}
		view := &listview.View[models.Complaint]{}
		_ = view.Load(web.Ctx(c), backend.MyComplaints)
		return renderStudent(c, web.FailureStatus(out.Err), view, out.Draft, out.Error)
	}
}
