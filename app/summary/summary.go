// Package summary computes the dashboard widgets from fetched collections.
// Every function is pure and tolerates empty input.
package summary

import (
	"sort"
	"strconv"
	"strings"

	"hostel-portal/app/models"
)

// Percentage returns round(100*part/whole), or 0 when whole is not positive.
func Percentage(part, whole int) int {
	if whole <= 0 || part <= 0 {
		return 0
	}
	return (200*part + whole) / (2 * whole)
}

// FloorOf returns the floor key of a room number: its first character, which
// must be a digit. Room numbers without a leading digit have no floor.
func FloorOf(roomNumber string) (string, bool) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return "", false
	}
	c := roomNumber[0]
	if c < '0' || c > '9' {
		return "", false
	}
	return string(c), true
}

// OccupancyByFloor groups rooms by floor, ordered by floor key.
func OccupancyByFloor(rooms []models.Room) []models.FloorOccupancy {
	byFloor := map[string]*models.FloorOccupancy{}
	for _, r := range rooms {
		floor, ok := FloorOf(r.RoomNumber)
		if !ok {
			continue
		}
		f, seen := byFloor[floor]
		if !seen {
			f = &models.FloorOccupancy{Floor: floor}
			byFloor[floor] = f
		}
		f.TotalCapacity += r.Capacity
		f.CurrentOccupancy += r.CurrentOccupancy
	}

	out := make([]models.FloorOccupancy, 0, len(byFloor))
	for _, f := range byFloor {
		f.Percentage = Percentage(f.CurrentOccupancy, f.TotalCapacity)
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Floor < out[j].Floor })
	return out
}

// RoomStatus categorises a room by occupancy.
func RoomStatus(r models.Room) models.RoomStatus {
	return r.Status()
}

// CountRoomStatuses tallies rooms per status. Every status is present.
func CountRoomStatuses(rooms []models.Room) map[models.RoomStatus]int {
	counts := map[models.RoomStatus]int{
		models.RoomEmpty:           0,
		models.RoomPartiallyFilled: 0,
		models.RoomFull:            0,
	}
	for _, r := range rooms {
		counts[RoomStatus(r)]++
	}
	return counts
}

// Complaints counts open (Pending or In Progress) and resolved complaints.
func Complaints(list []models.Complaint) models.ComplaintSummary {
	s := models.ComplaintSummary{ByStatus: map[models.ComplaintStatus]int{}}
	for _, st := range models.ComplaintStatuses {
		s.ByStatus[st] = 0
	}
	for _, c := range list {
		s.ByStatus[c.Status]++
		switch c.Status {
		case models.ComplaintPending, models.ComplaintInProgress:
			s.Open++
		case models.ComplaintResolved:
			s.Resolved++
		}
	}
	return s
}

// MissingYear is the bucket for students without a year.
const MissingYear = "N/A"

// StudentsByYear counts students per study year. Numeric years come first in
// ascending order, then any other values, then MissingYear.
func StudentsByYear(students []models.Student) []models.YearCount {
	counts := map[string]int{}
	for _, s := range students {
		year := strings.TrimSpace(s.Year.String())
		if year == "" {
			year = MissingYear
		}
		counts[year]++
	}

	out := make([]models.YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, models.YearCount{Year: year, Label: year + "-Year", Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return yearLess(out[i].Year, out[j].Year) })
	return out
}

func yearLess(a, b string) bool {
	if a == MissingYear || b == MissingYear {
		return b == MissingYear && a != MissingYear
	}
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// PendingOutpasses returns the first limit Pending requests in backend order.
func PendingOutpasses(list []models.Outpass, limit int) []models.Outpass {
	out := []models.Outpass{}
	for _, o := range list {
		if len(out) >= limit {
			break
		}
		if o.Status == models.OutpassPending {
			out = append(out, o)
		}
	}
	return out
}

// Dashboard combines every widget into the admin dashboard.
func Dashboard(rooms []models.Room, students []models.Student, complaints []models.Complaint, outpasses []models.Outpass) models.DashboardStats {
	return models.DashboardStats{
		Occupancy:        OccupancyByFloor(rooms),
		RoomStatuses:     CountRoomStatuses(rooms),
		Complaints:       Complaints(complaints),
		StudentsByYear:   StudentsByYear(students),
		PendingOutpasses: PendingOutpasses(outpasses, DashboardPendingLimit),
		TotalStudents:    len(students),
		TotalRooms:       len(rooms),
	}
}

// DashboardPendingLimit is how many pending out-passes the dashboard lists.
const DashboardPendingLimit = 4
