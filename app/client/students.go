package client

import (
	"context"
	"io"
	"net/http"

	"hostel-portal/app/models"
)

func (c *Client) Students(ctx context.Context) ([]models.Student, error) {
	var list []models.Student
	err := c.get(ctx, "/students", &list)
	return list, err
}

func (c *Client) AddStudent(ctx context.Context, s models.Student) (models.Message, error) {
	return c.send(ctx, http.MethodPost, "/students/add", s)
}

// UpdateStudent replaces the whole record; the backend ignores roll_no changes.
func (c *Client) UpdateStudent(ctx context.Context, id int, s models.Student) (models.Message, error) {
	return c.send(ctx, http.MethodPut, pathID("/students/update", id), s)
}

func (c *Client) DeleteStudent(ctx context.Context, id int) (models.Message, error) {
	return c.send(ctx, http.MethodDelete, pathID("/students/delete", id), nil)
}

// UploadStudentsCSV forwards a CSV file for bulk import. Parsing is the backend's job.
func (c *Client) UploadStudentsCSV(ctx context.Context, filename string, r io.Reader) (models.Message, error) {
	return c.upload(ctx, "/students/upload", filename, r)
}
