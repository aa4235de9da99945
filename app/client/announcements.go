package client

import (
	"context"
	"net/http"

	"hostel-portal/app/models"
)

// Announcements returns every announcement with fee notices decoded and pinned first.
func (c *Client) Announcements(ctx context.Context) ([]models.Announcement, error) {
	var list []models.Announcement
	if err := c.get(ctx, "/announcements", &list); err != nil {
		return nil, err
	}
	return models.ClassifyAll(list), nil
}

func (c *Client) CreateAnnouncement(ctx context.Context, title, content string) (models.Message, error) {
	return c.send(ctx, http.MethodPost, "/announcements/add", map[string]string{
		"title":   title,
		"content": content,
	})
}
