package devbackend

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/models"
)

func (s *Store) complaintsWhere(keep func(*complaintRecord) bool) []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := sortedKeys(s.complaints)
	out := make([]models.Complaint, 0, len(keys))
	// newest first
	for i := len(keys) - 1; i >= 0; i-- {
		rec := s.complaints[keys[i]]
		if keep(rec) {
			out = append(out, rec.Complaint)
		}
	}
	return out
}

// SubmitComplaint files a Pending complaint for a student.
func (s *Store) SubmitComplaint(studentID int, description string) (models.Complaint, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Complaint{}, badRequest("Description is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.students[studentID]
	if !ok {
		return models.Complaint{}, notFound("Student not found")
	}
	rec := &complaintRecord{
		Complaint: models.Complaint{
			ID:          s.id(),
			StudentName: st.student.Name,
			RoomNo:      st.student.RoomNo,
			Description: description,
			Status:      models.ComplaintPending,
			CreatedAt:   s.now(),
		},
		studentID: studentID,
	}
	s.complaints[rec.ID] = rec
	return rec.Complaint, nil
}

func (s *Store) updateComplaint(id int, status models.ComplaintStatus) error {
	if !status.Valid() {
		return badRequest("Invalid status")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.complaints[id]
	if !ok {
		return notFound("Complaint not found")
	}
	rec.Status = status
	return nil
}

func (s *Server) listComplaints(c *fiber.Ctx) error {
	return c.JSON(s.store.complaintsWhere(func(*complaintRecord) bool { return true }))
}

func (s *Server) myComplaints(c *fiber.Ctx) error {
	id := current(c).id
	return c.JSON(s.store.complaintsWhere(func(r *complaintRecord) bool { return r.studentID == id }))
}

func (s *Server) submitComplaint(c *fiber.Ctx) error {
	var req struct {
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Invalid request")
	}
	if _, err := s.store.SubmitComplaint(current(c).id, req.Description); err != nil {
		return err
	}
	return message(c, fiber.StatusCreated, "Complaint submitted successfully")
}

func (s *Server) updateComplaint(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req struct {
		Status models.ComplaintStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Invalid request")
	}
	if err := s.store.updateComplaint(id, req.Status); err != nil {
		return err
	}
	return message(c, fiber.StatusOK, "Complaint status updated")
}
