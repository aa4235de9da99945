package devbackend

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (s *Store) session(token string) (account, bool) {
	if token == "" {
		return account{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	acct, ok := s.sessions[token]
	return acct, ok
}

func (s *Store) openSession(token string, acct account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = acct
}

// loginAdmin checks credentials outside the lock; bcrypt is slow.
func (s *Store) loginAdmin(username, password string) (account, bool) {
	s.mu.RLock()
	rec, ok := s.admins[username]
	s.mu.RUnlock()
	if !ok || !checkPassword(rec.hash, password) {
		return account{}, false
	}
	return account{role: roleAdmin, id: rec.profile.ID, username: username}, true
}

func (s *Store) loginStudent(rollNo, password string) (account, bool) {
	s.mu.RLock()
	var rec *studentRecord
	for _, r := range s.students {
		if strings.EqualFold(r.student.RollNo, rollNo) {
			rec = r
			break
		}
	}
	s.mu.RUnlock()
	if rec == nil || !checkPassword(rec.hash, password) {
		return account{}, false
	}
	return account{role: roleStudent, id: rec.student.ID, username: rec.student.RollNo}, true
}

func (s *Store) changePassword(studentID int, oldPassword, newPassword string) error {
	s.mu.RLock()
	rec, ok := s.students[studentID]
	s.mu.RUnlock()
	if !ok {
		return notFound("Student not found")
	}
	if !checkPassword(rec.hash, oldPassword) {
		return badRequest("Incorrect old password")
	}
	h, err := s.hash(newPassword)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.hash = h
	return nil
}

func (s *Server) adminLogin(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Invalid request")
	}
	acct, ok := s.store.loginAdmin(req.Username, req.Password)
	if !ok {
		return message(c, fiber.StatusUnauthorized, "Invalid username or password")
	}
	s.startSession(c, acct)
	return message(c, fiber.StatusOK, "Login successful")
}

func (s *Server) studentLogin(c *fiber.Ctx) error {
	var req struct {
		RollNo   string `json:"roll_no"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Invalid request")
	}
	acct, ok := s.store.loginStudent(req.RollNo, req.Password)
	if !ok {
		return message(c, fiber.StatusUnauthorized, "Invalid roll number or password")
	}
	s.startSession(c, acct)
	return message(c, fiber.StatusOK, "Login successful")
}

func (s *Server) adminProfile(c *fiber.Ctx) error {
	acct := current(c)
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	rec, ok := s.store.admins[acct.username]
	if !ok {
		return errUnauthorized
	}
	return c.JSON(rec.profile)
}

func (s *Server) studentProfile(c *fiber.Ctx) error {
	st, err := s.store.student(current(c).id)
	if err != nil {
		return err
	}
	return c.JSON(st)
}

func (s *Server) changePassword(c *fiber.Ctx) error {
	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Invalid request")
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		return badRequest("Old and new password are required")
	}
	if err := s.store.changePassword(current(c).id, req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return message(c, fiber.StatusOK, "Password changed successfully")
}
