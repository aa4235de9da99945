package client

import (
	"context"
	"net/http"

	"hostel-portal/app/models"
)

// LoginAdmin signs in an administrator and returns the backend session cookies.
func (c *Client) LoginAdmin(ctx context.Context, username, password string) (Credential, error) {
	return c.login(ctx, "/admin/login", map[string]string{
		"username": username,
		"password": password,
	})
}

// LoginStudent signs in a student by roll number.
func (c *Client) LoginStudent(ctx context.Context, rollNo, password string) (Credential, error) {
	return c.login(ctx, "/auth/student/login", map[string]string{
		"roll_no":  rollNo,
		"password": password,
	})
}

func (c *Client) login(ctx context.Context, path string, payload interface{}) (Credential, error) {
	r, err := jsonRequest(http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}
	cookies, err := c.call(ctx, r, &models.Message{})
	if err != nil {
		return nil, err
	}
	cred := Credential{}
	for name, value := range c.credential {
		cred[name] = value
	}
	for _, ck := range cookies {
		if ck.MaxAge < 0 || ck.Value == "" {
			delete(cred, ck.Name)
			continue
		}
		cred[ck.Name] = ck.Value
	}
	return cred, nil
}

// AdminProfile probes the admin session.
func (c *Client) AdminProfile(ctx context.Context) (models.AdminProfile, error) {
	var p models.AdminProfile
	err := c.get(ctx, "/admin/profile", &p)
	return p, err
}

// StudentProfile probes the student session and returns the full record.
func (c *Client) StudentProfile(ctx context.Context) (models.Student, error) {
	var s models.Student
	err := c.get(ctx, "/student/profile", &s)
	return s, err
}

// ChangeStudentPassword changes the signed-in student's password.
func (c *Client) ChangeStudentPassword(ctx context.Context, oldPassword, newPassword string) (models.Message, error) {
	return c.send(ctx, http.MethodPost, "/auth/student/change-password", map[string]string{
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	})
}
