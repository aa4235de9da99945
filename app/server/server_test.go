package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hostel-portal/app/client"
	"hostel-portal/app/config"
	"hostel-portal/app/devbackend"
	"hostel-portal/app/session"
)

type harness struct {
	t       *testing.T
	app     *fiber.App
	backend string
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	store := devbackend.NewStore(bcrypt.MinCost)
	require.NoError(t, store.Seed())
	baseURL, stop, err := devbackend.NewServer(store).Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop() })

	cfg := config.Default()
	cfg.Backend.BaseURL = baseURL
	cfg.Backend.Timeout = 5 * time.Second
	cfg.Session.Secret = "portal-test-secret"

	return &harness{t: t, app: New(cfg, opts...), backend: baseURL}
}

func (h *harness) do(req *http.Request, cookie *http.Cookie) (*http.Response, string) {
	h.t.Helper()
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(h.t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)
	return resp, string(body)
}

func (h *harness) get(path string, cookie *http.Cookie) (*http.Response, string) {
	return h.do(httptest.NewRequest(fiber.MethodGet, path, nil), cookie)
}

func (h *harness) post(path string, form url.Values, cookie *http.Cookie) (*http.Response, string) {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return h.do(req, cookie)
}

func (h *harness) login(role, identifier, password string) *http.Cookie {
	h.t.Helper()
	resp, _ := h.post("/auth/login", url.Values{
		"role":       {role},
		"identifier": {identifier},
		"password":   {password},
	}, nil)
	require.Equal(h.t, fiber.StatusSeeOther, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	h.t.Fatal("login did not set the session cookie")
	return nil
}

func (h *harness) admin() *http.Cookie {
	return h.login("admin", devbackend.DemoAdminUsername, devbackend.DemoAdminPassword)
}

func (h *harness) student() *http.Cookie {
	return h.login("student", devbackend.DemoStudentRollNo, devbackend.DemoStudentRollNo)
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	resp, body := h.get("/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestAnonymousVisitors(t *testing.T) {
	h := newHarness(t)

	resp, _ := h.get("/admin/rooms", nil)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get(fiber.HeaderLocation))

	resp, body := h.get("/api/dashboard/occupancy", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Not signed in")

	resp, body = h.get("/auth/login", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="identifier"`)
}

func TestLoginRedirectsByRole(t *testing.T) {
	h := newHarness(t)

	resp, _ := h.post("/auth/login", url.Values{
		"role":       {"admin"},
		"identifier": {devbackend.DemoAdminUsername},
		"password":   {devbackend.DemoAdminPassword},
	}, nil)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/dashboard", resp.Header.Get(fiber.HeaderLocation))

	resp, _ = h.get("/", h.student())
	assert.Equal(t, "/student/dashboard", resp.Header.Get(fiber.HeaderLocation))
}

func TestLoginFailureShowsBackendMessage(t *testing.T) {
	h := newHarness(t)
	resp, body := h.post("/auth/login", url.Values{
		"role":       {"admin"},
		"identifier": {"admin"},
		"password":   {"wrong"},
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Invalid username or password")
	for _, c := range resp.Cookies() {
		assert.NotEqual(t, session.CookieName, c.Name)
	}
}

func TestLoginRequiresFields(t *testing.T) {
	h := newHarness(t)
	resp, body := h.post("/auth/login", url.Values{"role": {"student"}}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Please fill in")
}

func TestRoleGating(t *testing.T) {
	h := newHarness(t)

	resp, body := h.get("/admin/rooms", h.student())
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body, "Access Forbidden")

	resp, _ = h.get("/student/complaints", h.admin())
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestLogoutClearsSession(t *testing.T) {
	h := newHarness(t)
	resp, _ := h.post("/auth/logout", nil, h.student())
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestStudentSubmitsComplaint(t *testing.T) {
	h := newHarness(t)
	cookie := h.student()

	resp, _ := h.post("/student/complaints", url.Values{"description": {"Leaking tap in room 204"}}, cookie)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderLocation), "/student/complaints"))

	resp, body := h.get("/student/complaints", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Leaking tap in room 204")
	assert.Contains(t, body, "Pending")
}

func TestEmptyComplaintIsNotSent(t *testing.T) {
	h := newHarness(t)
	resp, body := h.post("/student/complaints", url.Values{"description": {"  "}}, h.student())
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Please fill in")
}

func TestRoomFilters(t *testing.T) {
	h := newHarness(t)
	cookie := h.admin()

	_, body := h.get("/admin/rooms?q=999", cookie)
	assert.Contains(t, body, "No rooms found for &#34;999&#34;")

	_, body = h.get("/admin/rooms?status=Full", cookie)
	assert.Contains(t, body, "<td>101</td>")
	assert.NotContains(t, body, "<td>202</td>")

	_, body = h.get("/admin/rooms?q=10&status=Full", cookie)
	assert.Contains(t, body, "<td>101</td>")
	assert.NotContains(t, body, "<td>102</td>")
}

func TestRoomCapacityBelowOccupancyShowsBackendMessage(t *testing.T) {
	h := newHarness(t)
	cookie := h.admin()

	id := roomID(t, h, "101")
	resp, body := h.post("/admin/rooms/"+strconv.Itoa(id)+"/capacity", url.Values{"capacity": {"1"}}, cookie)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, `class="inline-error"`)
}

func TestPrintRoomsArmsAutoPrint(t *testing.T) {
	h := newHarness(t)
	resp, body := h.get("/admin/rooms/print", h.admin())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `addEventListener("load"`)
	assert.Contains(t, body, "<td>101</td>")
}

func TestOutpassPrint(t *testing.T) {
	h := newHarness(t)
	cookie := h.student()

	resp, _ := h.post("/student/outpass", url.Values{
		"reason":               {"Sister's wedding"},
		"departure_time":       {"2026-03-20T08:00"},
		"expected_return_time": {"2026-03-23T20:00"},
	}, cookie)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	mine, err := backendAs(t, h, "student", devbackend.DemoStudentRollNo).MyOutpasses(context.Background())
	require.NoError(t, err)
	require.Len(t, mine, 1)

	resp, body := h.get("/student/outpass/"+strconv.Itoa(mine[0].ID)+"/print", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Asha Rao")
	assert.Contains(t, body, "Sister&#39;s wedding")
	assert.Contains(t, body, `addEventListener("load"`)

	resp, body = h.get("/student/outpass/99999/print", cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Could not load out pass data.")
	assert.NotContains(t, body, `addEventListener("load"`)
}

func TestOutpassDecisionIsFinal(t *testing.T) {
	h := newHarness(t)
	cookie := h.admin()

	list, err := backendAs(t, h, "admin", devbackend.DemoAdminUsername).Outpasses(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, list)
	path := "/admin/outpasses/" + strconv.Itoa(list[0].ID)

	resp, _ := h.post(path+"/approve", nil, cookie)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderLocation), "notice=")

	resp, _ = h.post(path+"/reject", nil, cookie)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	loc, err := url.Parse(resp.Header.Get(fiber.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "This request has already been approved.", loc.Query().Get("error"))

	_, body := h.get(loc.String(), cookie)
	assert.NotContains(t, body, path+"/approve")
}

func TestDashboardAPI(t *testing.T) {
	h := newHarness(t)
	resp, body := h.get("/api/dashboard/occupancy", h.admin())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			Floors []struct {
				Floor      string `json:"floor"`
				Percentage int    `json:"percentage"`
			} `json:"floors"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.True(t, payload.Success)
	require.Len(t, payload.Data.Floors, 2)
	assert.Equal(t, "1", payload.Data.Floors[0].Floor)
	assert.Equal(t, 43, payload.Data.Floors[0].Percentage)
	assert.Equal(t, "2", payload.Data.Floors[1].Floor)
	assert.Equal(t, 17, payload.Data.Floors[1].Percentage)
}

func TestDashboardsRender(t *testing.T) {
	h := newHarness(t)

	resp, body := h.get("/admin/dashboard", h.admin())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Occupancy by Floor")

	resp, body = h.get("/student/dashboard", h.student())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Asha Rao")
}

func TestStudentPages(t *testing.T) {
	h := newHarness(t)
	cookie := h.student()

	for _, path := range []string{"/student/profile", "/student/fees", "/student/announcements", "/student/outpass", "/student/mess-menu"} {
		resp, _ := h.get(path, cookie)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}

	_, body := h.get("/student/announcements", cookie)
	assert.Less(t, strings.Index(body, "Mess fee payment"), strings.Index(body, "Water supply maintenance"))
	assert.Contains(t, body, "Payment window open")
}

func TestMessMenuMarksToday(t *testing.T) {
	saturday := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	h := newHarness(t, WithClock(func() time.Time { return saturday }))

	_, body := h.get("/student/mess-menu", h.student())
	assert.Contains(t, body, `Saturday <span class="badge badge-blue">Today</span>`)
	assert.NotContains(t, body, `Sunday <span class="badge badge-blue">Today</span>`)
}

func TestAdminPages(t *testing.T) {
	h := newHarness(t)
	cookie := h.admin()

	for _, path := range []string{"/admin/students", "/admin/complaints", "/admin/fees", "/admin/announcements", "/admin/outpasses", "/admin/students/print"} {
		resp, _ := h.get(path, cookie)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestUnknownPage(t *testing.T) {
	h := newHarness(t)
	resp, body := h.get("/nowhere", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "404")

	resp, body = h.get("/api/nowhere", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, `"success":false`)
}

func backendAs(t *testing.T, h *harness, role, identifier string) *client.Client {
	t.Helper()
	c := client.New(h.backend)
	var (
		cred client.Credential
		err  error
	)
	if role == "admin" {
		cred, err = c.LoginAdmin(context.Background(), identifier, devbackend.DemoAdminPassword)
	} else {
		cred, err = c.LoginStudent(context.Background(), identifier, identifier)
	}
	require.NoError(t, err)
	return c.As(cred)
}

func roomID(t *testing.T, h *harness, number string) int {
	t.Helper()
	rooms, err := backendAs(t, h, "admin", devbackend.DemoAdminUsername).Rooms(context.Background())
	require.NoError(t, err)
	for _, r := range rooms {
		if r.RoomNumber == number {
			return r.ID
		}
	}
	t.Fatalf("room %s not seeded", number)
	return 0
}
