// Package devbackend is an in-memory implementation of the hostel REST API,
// used to run the portal locally and in tests.
package devbackend

import (
	"net"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"hostel-portal/app/logger"
)

// SessionCookie is the cookie the backend issues at login.
const SessionCookie = "token"

// Server serves the REST API over a Store.
type Server struct {
	store *Store
}

func NewServer(store *Store) *Server {
	return &Server{store: store}
}

// App builds the Fiber application.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
		BodyLimit:             8 * 1024 * 1024,
	})
	app.Use(recover.New())

	app.Post("/admin/login", s.adminLogin)
	app.Post("/auth/student/login", s.studentLogin)

	admin := s.require(roleAdmin)
	student := s.require(roleStudent)
	anyone := s.require(roleAdmin, roleStudent)

	app.Get("/admin/profile", admin, s.adminProfile)
	app.Get("/student/profile", student, s.studentProfile)
	app.Post("/auth/student/change-password", student, s.changePassword)

	app.Get("/students", admin, s.listStudents)
	app.Post("/students/add", admin, s.addStudent)
	app.Put("/students/update/:id", admin, s.updateStudent)
	app.Delete("/students/delete/:id", admin, s.deleteStudent)
	app.Post("/students/upload", admin, s.uploadStudents)

	app.Get("/rooms", admin, s.listRooms)
	app.Post("/rooms/add", admin, s.addRoom)
	app.Put("/rooms/update/:id", admin, s.updateRoom)
	app.Delete("/rooms/delete/:id", admin, s.deleteRoom)
	app.Post("/rooms/upload", admin, s.uploadRooms)

	app.Get("/complaints", admin, s.listComplaints)
	app.Put("/complaints/update/:id", admin, s.updateComplaint)
	app.Get("/student/complaint", student, s.myComplaints)
	app.Post("/student/complaint", student, s.submitComplaint)

	app.Get("/fees/student/:id", admin, s.studentFees)
	app.Post("/fees/add", admin, s.addFee)
	app.Get("/student/fees", student, s.myFees)

	app.Get("/announcements", anyone, s.listAnnouncements)
	app.Post("/announcements/add", admin, s.addAnnouncement)

	app.Get("/outpasses", admin, s.listOutpasses)
	app.Put("/outpasses/update/:id", admin, s.updateOutpass)
	app.Get("/student/outpass", student, s.myOutpasses)
	app.Post("/student/outpass", student, s.submitOutpass)

	return app
}

// require admits requests whose session cookie belongs to one of roles.
func (s *Server) require(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acct, ok := s.store.session(c.Cookies(SessionCookie))
		if !ok {
			return errUnauthorized
		}
		for _, r := range roles {
			if acct.role == r {
				c.Locals("account", acct)
				return c.Next()
			}
		}
		return &apiError{status: fiber.StatusForbidden, message: "Forbidden"}
	}
}

func current(c *fiber.Ctx) account {
	acct, _ := c.Locals("account").(account)
	return acct
}

func (s *Server) startSession(c *fiber.Ctx, acct account) {
	token := uuid.NewString()
	s.store.openSession(token, acct)
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
	logger.Info().Str("role", acct.role).Str("user", acct.username).Msg("backend login")
}

func paramID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, badRequest("Invalid id")
	}
	return id, nil
}

func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// Start serves the API on a random loopback port and returns its base URL
// and a function that stops it.
func (s *Server) Start() (string, func() error, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, err
	}
	app := s.App()
	go func() {
		if err := app.Listener(ln); err != nil {
			logger.Error().Err(err).Msg("dev backend stopped")
		}
	}()
	return "http://" + ln.Addr().String(), app.Shutdown, nil
}
