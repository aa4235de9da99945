package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-portal/app/models"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, whole, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 8, 0},
		{3, 8, 38},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{8, 8, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.part, tt.whole), "%d/%d", tt.part, tt.whole)
	}
}

func TestFloorOf(t *testing.T) {
	f, ok := FloorOf("101")
	assert.True(t, ok)
	assert.Equal(t, "1", f)

	_, ok = FloorOf("A12")
	assert.False(t, ok)
	_, ok = FloorOf("")
	assert.False(t, ok)
}

func TestOccupancyByFloor(t *testing.T) {
	rooms := []models.Room{
		{RoomNumber: "205", Capacity: 4, CurrentOccupancy: 1},
		{RoomNumber: "101", Capacity: 4, CurrentOccupancy: 2},
		{RoomNumber: "150", Capacity: 4, CurrentOccupancy: 1},
		{RoomNumber: "G01", Capacity: 2, CurrentOccupancy: 2},
	}
	got := OccupancyByFloor(rooms)
	require.Len(t, got, 2)
	assert.Equal(t, models.FloorOccupancy{Floor: "1", TotalCapacity: 8, CurrentOccupancy: 3, Percentage: 38}, got[0])
	assert.Equal(t, models.FloorOccupancy{Floor: "2", TotalCapacity: 4, CurrentOccupancy: 1, Percentage: 25}, got[1])

	assert.Empty(t, OccupancyByFloor(nil))
	zero := OccupancyByFloor([]models.Room{{RoomNumber: "301"}})
	require.Len(t, zero, 1)
	assert.Equal(t, 0, zero[0].Percentage)
}

func TestRoomStatus(t *testing.T) {
	assert.Equal(t, models.RoomFull, RoomStatus(models.Room{Capacity: 4, CurrentOccupancy: 4}))
	assert.Equal(t, models.RoomEmpty, RoomStatus(models.Room{Capacity: 4, CurrentOccupancy: 0}))
	assert.Equal(t, models.RoomPartiallyFilled, RoomStatus(models.Room{Capacity: 4, CurrentOccupancy: 2}))

	counts := CountRoomStatuses([]models.Room{{Capacity: 4, CurrentOccupancy: 4}, {Capacity: 2, CurrentOccupancy: 2}})
	assert.Equal(t, 2, counts[models.RoomFull])
	assert.Equal(t, 0, counts[models.RoomEmpty])
	assert.Contains(t, counts, models.RoomPartiallyFilled)
}

func TestComplaints(t *testing.T) {
	s := Complaints([]models.Complaint{
		{Status: models.ComplaintPending},
		{Status: models.ComplaintInProgress},
		{Status: models.ComplaintResolved},
		{Status: models.ComplaintPending},
	})
	assert.Equal(t, 3, s.Open)
	assert.Equal(t, 1, s.Resolved)
	assert.Equal(t, 2, s.ByStatus[models.ComplaintPending])

	empty := Complaints(nil)
	assert.Zero(t, empty.Open)
	assert.Zero(t, empty.Resolved)
}

func TestStudentsByYear(t *testing.T) {
	got := StudentsByYear([]models.Student{
		{Year: "2"}, {Year: ""}, {Year: "1"}, {Year: "2"}, {Year: "10"},
	})
	require.Len(t, got, 4)
	assert.Equal(t, models.YearCount{Year: "1", Label: "1-Year", Count: 1}, got[0])
	assert.Equal(t, models.YearCount{Year: "2", Label: "2-Year", Count: 2}, got[1])
	assert.Equal(t, "10", got[2].Year)
	assert.Equal(t, models.YearCount{Year: "N/A", Label: "N/A-Year", Count: 1}, got[3])
}

func TestPendingOutpasses(t *testing.T) {
	var list []models.Outpass
	for i := 1; i <= 7; i++ {
		st := models.OutpassPending
		if i%3 == 0 {
			st = models.OutpassApproved
		}
		list = append(list, models.Outpass{ID: i, Status: st})
	}
	got := PendingOutpasses(list, 4)
	require.Len(t, got, 4)
	assert.Equal(t, []int{1, 2, 4, 5}, []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID})

	assert.Empty(t, PendingOutpasses(nil, 4))
}

func TestDashboard(t *testing.T) {
	d := Dashboard(
		[]models.Room{{RoomNumber: "101", Capacity: 2, CurrentOccupancy: 1}},
		[]models.Student{{Year: "1"}},
		nil,
		nil,
	)
	assert.Equal(t, 1, d.TotalRooms)
	assert.Equal(t, 1, d.TotalStudents)
	assert.Equal(t, 50, d.Occupancy[0].Percentage)
	assert.NotNil(t, d.PendingOutpasses)
}
