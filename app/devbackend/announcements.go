package devbackend

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/models"
)

func (s *Store) listAnnouncements() []models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Announcement, 0, len(s.announcements))
	for i := len(s.announcements) - 1; i >= 0; i-- {
		out = append(out, s.announcements[i])
	}
	return out
}

// AddAnnouncement stores an announcement verbatim; the backend does not
// interpret fee notices.
func (s *Store) AddAnnouncement(title, content string) (models.Announcement, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return models.Announcement{}, badRequest("Title and content are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a := models.Announcement{ID: s.id(), Title: title, Content: content, CreatedAt: s.now()}
	s.announcements = append(s.announcements, a)
	return a, nil
}

func (s *Server) listAnnouncements(c *fiber.Ctx) error {
	return c.JSON(s.store.listAnnouncements())
}

func (s *Server) addAnnouncement(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Invalid request")
	}
	if _, err := s.store.AddAnnouncement(req.Title, req.Content); err != nil {
		return err
	}
	return message(c, fiber.StatusCreated, "Announcement posted successfully")
}
