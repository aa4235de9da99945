package models

// FloorOccupancy aggregates the rooms sharing a floor key.
type FloorOccupancy struct {
	Floor            string `json:"floor"`
	TotalCapacity    int    `json:"total_capacity"`
	CurrentOccupancy int    `json:"current_occupancy"`
	Percentage       int    `json:"percentage"`
}

// ComplaintSummary counts complaints by state. Open is Pending plus In Progress.
type ComplaintSummary struct {
	Open     int                     `json:"open"`
	Resolved int                     `json:"resolved"`
	ByStatus map[ComplaintStatus]int `json:"by_status"`
}

// YearCount is one bar of the student distribution chart.
type YearCount struct {
	Year  string `json:"year"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DashboardStats is the combined admin dashboard.
type DashboardStats struct {
	Occupancy        []FloorOccupancy   `json:"occupancy"`
	RoomStatuses     map[RoomStatus]int `json:"room_statuses"`
	Complaints       ComplaintSummary   `json:"complaints"`
	StudentsByYear   []YearCount        `json:"students_by_year"`
	PendingOutpasses []Outpass          `json:"pending_outpasses"`
	TotalStudents    int                `json:"total_students"`
	TotalRooms       int                `json:"total_rooms"`
}
