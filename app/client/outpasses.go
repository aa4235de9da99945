package client

import (
	"context"
	"net/http"

	"hostel-portal/app/models"
)

// Outpasses lists every out-pass request (admin).
func (c *Client) Outpasses(ctx context.Context) ([]models.Outpass, error) {
	var list []models.Outpass
	err := c.get(ctx, "/outpasses", &list)
	return list, err
}

// UpdateOutpassStatus approves or rejects a request.
func (c *Client) UpdateOutpassStatus(ctx context.Context, id int, status models.OutpassStatus) (models.Message, error) {
	if !status.Terminal() {
		return models.Message{}, Validation("An out-pass can only be approved or rejected.")
	}
	return c.send(ctx, http.MethodPut, pathID("/outpasses/update", id), map[string]string{
		"status": string(status),
	})
}

func (c *Client) MyOutpasses(ctx context.Context) ([]models.Outpass, error) {
	var list []models.Outpass
	err := c.get(ctx, "/student/outpass", &list)
	return list, err
}

func (c *Client) SubmitOutpass(ctx context.Context, req models.OutpassRequest) (models.Message, error) {
	return c.send(ctx, http.MethodPost, "/student/outpass", req)
}
