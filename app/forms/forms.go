// Package forms binds submitted form values into drafts, checks required
// fields and runs the mutation the draft belongs to.
package forms

import (
	"context"
	"strings"

	"hostel-portal/app/client"
	"hostel-portal/app/models"
)

// Values is the subset of *fiber.Ctx used to read submitted form fields.
type Values interface {
	FormValue(key string, defaultValue ...string) string
}

func field(v Values, key string) string {
	return strings.TrimSpace(v.FormValue(key))
}

// Draft is a form's pending input.
type Draft interface {
	Validate() error
}

// Outcome is the state of a form after a submission. Either the form closed
// and the owning list must be fetched again, or it stays open with the
// submitted draft and an error message.
type Outcome[D Draft] struct {
	Closed  bool
	Refetch bool
	Open    bool
	Draft   D
	// Message is the backend's success message, if any.
	Message string
	// Error is the text shown inside the open form.
	Error string
	Err   error
}

// Submit validates draft and, when valid, runs mutate. Validation failures
// never reach the backend.
func Submit[D Draft](ctx context.Context, draft D, fallback string, mutate func(context.Context, D) (models.Message, error)) Outcome[D] {
	if err := draft.Validate(); err != nil {
		return failed(draft, fallback, err)
	}
	msg, err := mutate(ctx, draft)
	if err != nil {
		return failed(draft, fallback, err)
	}
	return Outcome[D]{Closed: true, Refetch: true, Draft: draft, Message: msg.Message}
}

func failed[D Draft](draft D, fallback string, err error) Outcome[D] {
	return Outcome[D]{Open: true, Draft: draft, Error: client.UserMessage(err, fallback), Err: err}
}
