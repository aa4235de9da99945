// Package web holds what every page handler shares: the backend client bound
// to the caller's session, rendering helpers and redirects.
package web

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/client"
	"hostel-portal/app/session"
)

// AppName prefixes every page title.
const AppName = "Hostel Portal"

// Env is the shared state handed to each feature's Setup function.
type Env struct {
	Client   *client.Client
	Sessions *session.Manager
	Resolver *session.Resolver
	Now      func() time.Time
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Today is the current time as the portal sees it.
func (e *Env) Today() time.Time { return e.now() }

// Backend returns a client carrying the caller's backend session cookies.
func (e *Env) Backend(c *fiber.Ctx) *client.Client {
	if b, ok := c.Locals("backend").(*client.Client); ok {
		return b
	}
	b := e.Client.As(e.Sessions.Credential(c))
	c.Locals("backend", b)
	return b
}

// Ctx is the request context, bounded by the backend timeout middleware.
func Ctx(c *fiber.Ctx) context.Context {
	return c.UserContext()
}

// IsAPI reports whether the request is for a JSON endpoint.
func IsAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api")
}

// Title builds a page title.
func Title(page string) string {
	if page == "" {
		return AppName
	}
	return page + " - " + AppName
}

// Page renders a template in the main layout. Notice and Error query values
// left by a previous redirect are passed through.
func Page(c *fiber.Ctx, name, title, current string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = Title(title)
	data["CurrentPage"] = current
	if _, ok := data["Notice"]; !ok {
		data["Notice"] = c.Query("notice")
	}
	if _, ok := data["Error"]; !ok {
		data["Error"] = c.Query("error")
	}
	return c.Render(name, data)
}

// Print renders a template in the print layout.
func Print(c *fiber.Ctx, name, title string, data fiber.Map) error {
	data["Title"] = Title(title)
	return c.Render(name, data, "layouts/print")
}

// Redirect sends the browser to path after a form post, carrying a flash
// notice when msg is not empty.
func Redirect(c *fiber.Ctx, path, msg string) error {
	return redirect(c, path, "notice", msg)
}

// RedirectError is Redirect for failures shown on the target page.
func RedirectError(c *fiber.Ctx, path, msg string) error {
	return redirect(c, path, "error", msg)
}

func redirect(c *fiber.Ctx, path, key, msg string) error {
	if msg != "" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		path += sep + key + "=" + url.QueryEscape(msg)
	}
	return c.Redirect(path, fiber.StatusSeeOther)
}

// ParamID reads the :id route parameter. Anything but a positive integer is a 404.
func ParamID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusNotFound, "Page not found")
	}
	return id, nil
}

// Fail is the error page shown when a page's primary data cannot be loaded.
func Fail(c *fiber.Ctx, err error, fallback string) error {
	status := fiber.StatusBadGateway
	if e, ok := client.AsError(err); ok && e.Kind == client.KindTimeout {
		status = fiber.StatusGatewayTimeout
	}
	if client.IsUnauthorized(err) {
		return c.Redirect("/auth/login")
	}
	return fiber.NewError(status, client.UserMessage(err, fallback))
}

// FailureStatus is the status a page re-rendered after a failed form post
// answers with.
func FailureStatus(err error) int {
	e, ok := client.AsError(err)
	switch {
	case !ok:
		return fiber.StatusInternalServerError
	case e.Kind == client.KindValidation:
		return fiber.StatusUnprocessableEntity
	case e.Kind == client.KindServer && e.Status >= 400 && e.Status < 500:
		return e.Status
	case e.Kind == client.KindTimeout:
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusBadGateway
	}
}

// LoadError is the inline message for a failed fetch, empty when err is nil.
func LoadError(err error, fallback string) string {
	if err == nil {
		return ""
	}
	return client.UserMessage(err, fallback)
}
