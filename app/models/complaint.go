package models

import "time"

// ComplaintStatus is the lifecycle state of a complaint. The UI allows any
// transition; the backend decides which ones are legal.
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "Pending"
	ComplaintInProgress ComplaintStatus = "In Progress"
	ComplaintResolved   ComplaintStatus = "Resolved"
)

// ComplaintStatuses in display order.
var ComplaintStatuses = []ComplaintStatus{ComplaintPending, ComplaintInProgress, ComplaintResolved}

// Valid reports whether s is one of the known complaint statuses.
func (s ComplaintStatus) Valid() bool {
	for _, known := range ComplaintStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Badge returns the CSS class used for the status badge.
func (s ComplaintStatus) Badge() string {
	switch s {
	case ComplaintPending:
		return "badge-yellow"
	case ComplaintInProgress:
		return "badge-blue"
	case ComplaintResolved:
		return "badge-green"
	default:
		return "badge-gray"
	}
}

type Complaint struct {
	ID          int             `json:"id"`
	StudentName string          `json:"student_name"`
	RoomNo      string          `json:"room_no"`
	Description string          `json:"description"`
	Status      ComplaintStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
