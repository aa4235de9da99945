package client

import (
	"context"
	"net/http"

	"hostel-portal/app/models"
)

// Complaints lists every complaint (admin).
func (c *Client) Complaints(ctx context.Context) ([]models.Complaint, error) {
	var list []models.Complaint
	err := c.get(ctx, "/complaints", &list)
	return list, err
}

func (c *Client) UpdateComplaintStatus(ctx context.Context, id int, status models.ComplaintStatus) (models.Message, error) {
	if !status.Valid() {
		return models.Message{}, Validation("Unknown complaint status.")
	}
	return c.send(ctx, http.MethodPut, pathID("/complaints/update", id), map[string]string{
		"status": string(status),
	})
}

// MyComplaints lists the signed-in student's complaints.
func (c *Client) MyComplaints(ctx context.Context) ([]models.Complaint, error) {
	var list []models.Complaint
	err := c.get(ctx, "/student/complaint", &list)
	return list, err
}

func (c *Client) SubmitComplaint(ctx context.Context, description string) (models.Message, error) {
	return c.send(ctx, http.MethodPost, "/student/complaint", map[string]string{
		"description": description,
	})
}
