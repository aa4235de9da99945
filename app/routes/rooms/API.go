package rooms

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/client"
	"hostel-portal/app/forms"
	"hostel-portal/app/listview"
	"hostel-portal/app/models"
	"hostel-portal/app/printable"
	"hostel-portal/app/routes/web"
)

const listPath = "/admin/rooms"

func newView(c *fiber.Ctx) *listview.View[models.Room] {
	return &listview.View[models.Room]{
		Search:     c.Query("q"),
		Category:   c.Query("status"),
		Fields:     func(r models.Room) []string { return []string{r.RoomNumber} },
		CategoryOf: func(r models.Room) string { return string(r.Status()) },
	}
}

type roomForm struct {
	Open  bool
	Draft forms.RoomDraft
	Error string
}

// pageState carries the inline error of a failed row action or upload.
type pageState struct {
	form       roomForm
	capacityID int
	capacity   forms.CapacityDraft
	rowError   string
	uploadErr  string
}

func render(c *fiber.Ctx, status int, view *listview.View[models.Room], st pageState) error {
	list := view.Derive()
	c.Status(status)
	return web.Page(c, "admin/rooms", "Rooms", "rooms", fiber.Map{
		"List":          list,
		"ListError":     web.LoadError(list.Err, "Failed to fetch rooms. Please log in again."),
		"FilterOptions": models.RoomFilterOptions,
		"Form":          st.form,
		"CapacityID":    st.capacityID,
		"Capacity":      st.capacity,
		"RowError":      st.rowError,
		"UploadError":   st.uploadErr,
	})
}

func load(c *fiber.Ctx, backend *client.Client) *listview.View[models.Room] {
	view := newView(c)
	_ = view.Load(web.Ctx(c), backend.Rooms)
	return view
}

func roomsPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view := load(c, env.Backend(c))
		return render(c, fiber.StatusOK, view, pageState{form: roomForm{Open: c.Query("add") != ""}})
	}
}

func addRoomHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		backend := env.Backend(c)
		out := forms.Submit(web.Ctx(c), forms.BindRoom(c), "Failed to save room.", func(ctx context.Context, d forms.RoomDraft) (models.Message, error) {
			capacity, err := d.CapacityValue()
			if err != nil {
				return models.Message{}, err
			}
			return backend.AddRoom(ctx, d.RoomNumber, capacity)
		})
		if out.Closed {
			return web.Redirect(c, listPath, out.Message)
		}
		return render(c, web.FailureStatus(out.Err), load(c, backend), pageState{
			form: roomForm{Open: true, Draft: out.Draft, Error: out.Error},
		})
	}
}

func updateCapacityHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.ParamID(c)
		if err != nil {
			return err
		}
		backend := env.Backend(c)
		out := forms.Submit(web.Ctx(c), forms.BindCapacity(c, id), "Failed to update capacity.", func(ctx context.Context, d forms.CapacityDraft) (models.Message, error) {
			capacity, err := d.Value()
			if err != nil {
				return models.Message{}, err
			}
			return backend.UpdateRoomCapacity(ctx, d.RoomID, capacity)
		})
		if out.Closed {
			return web.Redirect(c, listPath, out.Message)
		}
		return render(c, web.FailureStatus(out.Err), load(c, backend), pageState{
			capacityID: id,
			capacity:   out.Draft,
			rowError:   out.Error,
		})
	}
}

func deleteRoomHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.ParamID(c)
		if err != nil {
			return err
		}
		msg, err := env.Backend(c).DeleteRoom(web.Ctx(c), id)
		if err != nil {
			return web.RedirectError(c, listPath, client.UserMessage(err, "Failed to delete room."))
		}
		return web.Redirect(c, listPath, msg.Message)
	}
}

func uploadRoomsHandler(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		backend := env.Backend(c)
		msg, err := web.Upload(c, backend.UploadRoomsCSV)
		if err == nil {
			return web.Redirect(c, listPath, msg.Message)
		}
		return render(c, web.FailureStatus(err), load(c, backend), pageState{
			uploadErr: client.UserMessage(err, "Failed to upload file."),
		})
	}
}

func printRoomsPage(env *web.Env) fiber.Handler {
	return func(c *fiber.Ctx) error {
		printer := &printable.PagePrinter{}
		view := &printable.View[[]models.Room]{
			Load:    env.Backend(c).Rooms,
			Ready:   printable.NonEmpty[models.Room],
			Printer: printer,
		}
		res := view.Run(web.Ctx(c))
		data := fiber.Map{
			"Rooms":     res.Doc,
			"AutoPrint": printer.Script(),
			"Printed":   web.FormatDate(env.Today()),
		}
		if res.Err != nil {
			data["LoadError"] = client.UserMessage(res.Err, "Failed to load rooms for printing.")
		}
		return web.Print(c, "print/rooms", "Room List", data)
	}
}
