package fees

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/forms"
	"hostel-portal/app/listview"
	"hostel-portal/app/models"
	"hostel-portal/app/routes/web"
)

const adminPath = "/admin/fees"

// TotalPaid sums a payment ledger.
func TotalPaid(list []models.FeePayment) float64 {
	var total float64
	for _, p := range list {
		total += float64(p.AmountPaid)
	}
	return total
}

type paymentForm struct {
	Open  bool
	Draft forms.FeeDraft
	Error string
}

// renderAdmin shows the student selector, the selected student's ledger and
// the record-payment form.
func renderAdmin(c *fiber.Ctx, env *web.Env, status int, selected int, form paymentForm) error {
	backend := env.Backend(c)
	ctx := web.Ctx(c)

	students := &listview.View[models.Student]{}
	_ = students.Load(ctx, backend.Students)

	data := fiber.Map{
		"Students":     students.Items(),
		"StudentError": web.LoadError(students.Derive().Err, "Failed to fetch students."),
		"SelectedID":   selected,
		"Form":         form,
	}
	if selected > 0 {
		for _, s := range students.Items() {
			if s.ID == selected {
				data["Selected"] = s
			}
		}
		history := &listview.View[models.FeePayment]{}
		_ = history.Load(ctx, func(ctx context.Context) ([]models.FeePayment, error) {
			return backend.StudentFeeHistory(ctx, selected)
		})
		list := history.Derive()
		data["History"] = list
		data["HistoryError"] = web.LoadError(list.Err, "Failed to fetch fee history.")
		data["Total"] = TotalPaid(list.Rows)
	}
	c.Status(status)
	return web.Page(c, "admin/fees", "Fee Management", "fees", data)
}

func adminFeesPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		selected, _ := strconv.Atoi(c.Query("student"))
		form := paymentForm{Open: c.Query("record") != "", Draft: forms.NewFeeDraft(selected, env.Today())}
		return renderAdmin(c, env, fiber.StatusOK, selected, form)
	}
}

func recordPaymentHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		backend := env.Backend(c)
		draft := forms.BindFee(c)
		out := forms.Submit(web.Ctx(c), draft, "Failed to add payment.", func(ctx context.Context, d forms.FeeDraft) (models.Message, error) {
			p, err := d.Payment()
			if err != nil {
				return models.Message{}, err
			}
			return backend.AddFeePayment(ctx, p)
		})
		selected, _ := strconv.Atoi(draft.StudentID)
		if out.Closed {
			return web.Redirect(c, adminPath+"?student="+strconv.Itoa(selected), out.Message)
		}
		return renderAdmin(c, env, web.FailureStatus(out.Err), selected, paymentForm{Open: true, Draft: out.Draft, Error: out.Error})
	}
}

func studentFeesPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view := &listview.View[models.FeePayment]{}
		_ = view.Load(web.Ctx(c), env.Backend(c).MyFees)
		list := view.Derive()
		return web.Page(c, "student/fees", "My Fees", "fees", fiber.Map{
			"List":      list,
			"ListError": web.LoadError(list.Err, "Failed to fetch your fee history."),
			"Total":     TotalPaid(list.Rows),
		})
	}
}
