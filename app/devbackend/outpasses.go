package devbackend

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/models"
)

func (s *Store) outpassesWhere(keep func(*outpassRecord) bool) []models.Outpass {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := sortedKeys(s.outpasses)
	out := make([]models.Outpass, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		rec := s.outpasses[keys[i]]
		if keep(rec) {
			out = append(out, rec.Outpass)
		}
	}
	return out
}

// SubmitOutpass files a Pending out-pass request for a student.
func (s *Store) SubmitOutpass(studentID int, req models.OutpassRequest) (models.Outpass, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return models.Outpass{}, badRequest("Reason is required")
	}
	if req.DepartureTime.IsZero() || req.ExpectedReturnTime.IsZero() {
		return models.Outpass{}, badRequest("Departure and return times are required")
	}
	if req.ExpectedReturnTime.Before(req.DepartureTime) {
		return models.Outpass{}, badRequest("Expected return time must be after departure time")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.students[studentID]
	if !ok {
		return models.Outpass{}, notFound("Student not found")
	}
	rec := &outpassRecord{
		Outpass: models.Outpass{
			ID:                 s.id(),
			StudentName:        st.student.Name,
			RoomNo:             st.student.RoomNo,
			Reason:             strings.TrimSpace(req.Reason),
			DepartureTime:      req.DepartureTime,
			ExpectedReturnTime: req.ExpectedReturnTime,
			Status:             models.OutpassPending,
		},
		studentID: studentID,
	}
	s.outpasses[rec.ID] = rec
	return rec.Outpass, nil
}

// decideOutpass approves or rejects a Pending request. Decisions are final.
func (s *Store) decideOutpass(id int, status models.OutpassStatus) error {
	if !status.Terminal() {
		return badRequest("Status must be Approved or Rejected")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.outpasses[id]
	if !ok {
		return notFound("Out pass not found")
	}
	if rec.Status.Terminal() {
		return conflict("This out pass has already been " + strings.ToLower(string(rec.Status)))
	}
	rec.Status = status
	return nil
}

func (s *Server) listOutpasses(c *fiber.Ctx) error {
	return c.JSON(s.store.outpassesWhere(func(*outpassRecord) bool { return true }))
}

func (s *Server) myOutpasses(c *fiber.Ctx) error {
	id := current(c).id
	return c.JSON(s.store.outpassesWhere(func(r *outpassRecord) bool { return r.studentID == id }))
}

func (s *Server) submitOutpass(c *fiber.Ctx) error {
	var req models.OutpassRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Invalid request")
	}
	if _, err := s.store.SubmitOutpass(current(c).id, req); err != nil {
		return err
	}
	return message(c, fiber.StatusCreated, "Out pass request submitted")
}

func (s *Server) updateOutpass(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req struct {
		Status models.OutpassStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Invalid request")
	}
	if err := s.store.decideOutpass(id, req.Status); err != nil {
		return err
	}
	return message(c, fiber.StatusOK, "Out pass "+strings.ToLower(string(req.Status)))
}
