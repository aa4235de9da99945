package models

import "time"

// OutpassStatus is the state of a leave request. Approved and Rejected are terminal.
type OutpassStatus string

const (
	OutpassPending  OutpassStatus = "Pending"
	OutpassApproved OutpassStatus = "Approved"
	OutpassRejected OutpassStatus = "Rejected"
)

// Terminal reports whether no further action can be taken on the request.
func (s OutpassStatus) Terminal() bool {
	return s == OutpassApproved || s == OutpassRejected
}

// Badge returns the CSS class used for the status badge.
func (s OutpassStatus) Badge() string {
	switch s {
	case OutpassPending:
		return "badge-yellow"
	case OutpassApproved:
		return "badge-green"
	case OutpassRejected:
		return "badge-red"
	default:
		return "badge-gray"
	}
}

// Outpass is a student's request for temporary leave from the hostel.
type Outpass struct {
	ID                 int           `json:"id"`
	StudentName        string        `json:"student_name"`
	RoomNo             string        `json:"room_no"`
	Reason             string        `json:"reason"`
	DepartureTime      time.Time     `json:"departure_time"`
	ExpectedReturnTime time.Time     `json:"expected_return_time"`
	Status             OutpassStatus `json:"status"`
}

// OutpassRequest is the body a student submits for a new out-pass.
type OutpassRequest struct {
	Reason             string    `json:"reason" label:"Reason" validate:"required"`
	DepartureTime      time.Time `json:"departure_time" label:"Departure Time" validate:"required"`
	ExpectedReturnTime time.Time `json:"expected_return_time" label:"Expected Return Time" validate:"required"`
}
