package students

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/client"
	"hostel-portal/app/forms"
	"hostel-portal/app/listview"
	"hostel-portal/app/models"
	"hostel-portal/app/printable"
	"hostel-portal/app/routes/web"
)

const listPath = "/admin/students"

func newView(c *fiber.Ctx) *listview.View[models.Student] {
	return &listview.View[models.Student]{
		Search: c.Query("q"),
		Fields: func(s models.Student) []string { return []string{s.Name, s.RollNo} },
	}
}

// studentForm is the add/edit form state rendered above the list.
type studentForm struct {
	Open   bool
	Action string
	Draft  forms.StudentDraft
	Error  string
}

func render(c *fiber.Ctx, status int, view *listview.View[models.Student], form studentForm, uploadErr string) error {
	list := view.Derive()
	c.Status(status)
	return web.Page(c, "admin/students", "Students", "students", fiber.Map{
		"List":          list,
		"ListError":     web.LoadError(list.Err, "Failed to fetch students. Please log in again."),
		"Form":          form,
		"UploadError":   uploadErr,
		"YearOptions":   models.YearOptions,
		"GenderOptions": models.GenderOptions,
	})
}

func studentsPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view := newView(c)
		backend := env.Backend(c)
		_ = view.Load(web.Ctx(c), backend.Students)

		form := studentForm{Action: listPath + "/add", Draft: forms.NewStudentDraft()}
		form.Open = c.Query("add") != ""
		return render(c, fiber.StatusOK, view, form, "")
	}
}

func findStudent(list []models.Student, id int) (models.Student, bool) {
	for _, s := range list {
		if s.ID == id {
			return s, true
		}
	}
	return models.Student{}, false
}

func editStudentPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.ParamID(c)
		if err != nil {
			return err
		}
		view := newView(c)
		if err := view.Load(web.Ctx(c), env.Backend(c).Students); err != nil {
			return web.Fail(c, err, "Failed to fetch students.")
		}
		existing, ok := findStudent(view.Items(), id)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		form := studentForm{
			Open:   true,
			Action: listPath + "/" + strconv.Itoa(id) + "/edit",
			Draft:  forms.EditStudentDraft(existing),
		}
		return render(c, fiber.StatusOK, view, form, "")
	}
}

func addStudentHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		backend := env.Backend(c)
		draft := forms.BindStudent(c, forms.NewStudentDraft())
		out := forms.Submit(web.Ctx(c), draft, "Failed to save student.", func(ctx context.Context, d forms.StudentDraft) (models.Message, error) {
			return backend.AddStudent(ctx, d.Student)
		})
		if out.Closed {
			return web.Redirect(c, listPath, out.Message)
		}
		view := newView(c)
		_ = view.Load(web.Ctx(c), backend.Students)
		return render(c, web.FailureStatus(out.Err), view, studentForm{
			Open:   true,
			Action: listPath + "/add",
			Draft:  out.Draft,
			Error:  out.Error,
		}, "")
	}
}

func updateStudentHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.ParamID(c)
		if err != nil {
			return err
		}
		backend := env.Backend(c)
		view := newView(c)
		if err := view.Load(web.Ctx(c), backend.Students); err != nil {
			return web.Fail(c, err, "Failed to fetch students.")
		}
		existing, ok := findStudent(view.Items(), id)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}

		draft := forms.BindStudent(c, forms.EditStudentDraft(existing))
		out := forms.Submit(web.Ctx(c), draft, "Failed to save student.", func(ctx context.Context, d forms.StudentDraft) (models.Message, error) {
			return backend.UpdateStudent(ctx, id, d.Student)
		})
		if out.Closed {
			return web.Redirect(c, listPath, out.Message)
		}
		return render(c, web.FailureStatus(out.Err), view, studentForm{
			Open:   true,
			Action: listPath + "/" + strconv.Itoa(id) + "/edit",
			Draft:  out.Draft,
			Error:  out.Error,
		}, "")
	}
}

func deleteStudentHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.ParamID(c)
		if err != nil {
			return err
		}
		msg, err := env.Backend(c).DeleteStudent(web.Ctx(c), id)
		if err != nil {
			return web.RedirectError(c, listPath, client.UserMessage(err, "Failed to delete student."))
		}
		return web.Redirect(c, listPath, msg.Message)
	}
}

func uploadStudentsHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		backend := env.Backend(c)
		msg, err := web.Upload(c, backend.UploadStudentsCSV)
		if err == nil {
			return web.Redirect(c, listPath, msg.Message)
		}
		view := newView(c)
		_ = view.Load(web.Ctx(c), backend.Students)
		form := studentForm{Action: listPath + "/add", Draft: forms.NewStudentDraft()}
		return render(c, web.FailureStatus(err), view, form, client.UserMessage(err, "Failed to upload file."))
	}
}

func printStudentsPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		printer := &printable.PagePrinter{}
		view := &printable.View[[]models.Student]{
			Load:    env.Backend(c).Students,
			Ready:   printable.NonEmpty[models.Student],
			Printer: printer,
		}
		res := view.Run(web.Ctx(c))
		data := fiber.Map{
			"Students":  res.Doc,
			"AutoPrint": printer.Script(),
			"Printed":   web.FormatDate(env.Today()),
		}
		if res.Err != nil {
			data["LoadError"] = client.UserMessage(res.Err, "Failed to load students for printing.")
		}
		return web.Print(c, "print/students", "Student List", data)
	}
}
