package client

import (
	"context"
	"fmt"
	"net/http"

	"hostel-portal/app/models"
)

// StudentFeeHistory lists the payments recorded for one student (admin).
func (c *Client) StudentFeeHistory(ctx context.Context, studentID int) ([]models.FeePayment, error) {
	var list []models.FeePayment
	err := c.get(ctx, fmt.Sprintf("/fees/student/%d", studentID), &list)
	return list, err
}

func (c *Client) AddFeePayment(ctx context.Context, p models.FeePayment) (models.Message, error) {
	return c.send(ctx, http.MethodPost, "/fees/add", p)
}

// MyFees lists the signed-in student's payments.
func (c *Client) MyFees(ctx context.Context) ([]models.FeePayment, error) {
	var list []models.FeePayment
	err := c.get(ctx, "/student/fees", &list)
	return list, err
}
