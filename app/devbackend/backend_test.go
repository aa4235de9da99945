package devbackend

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hostel-portal/app/client"
	"hostel-portal/app/models"
)

// newBackend runs a seeded backend and returns an admin-authenticated client.
func newBackend(t *testing.T) (*Store, *client.Client, *client.Client) {
	t.Helper()
	store := NewStore(bcrypt.MinCost)
	require.NoError(t, store.Seed())
	baseURL, stop, err := NewServer(store).Start()
	require.NoError(t, err)
	t.Cleanup(func() { stop() })

	anon := client.New(baseURL)
	cred, err := anon.LoginAdmin(context.Background(), DemoAdminUsername, DemoAdminPassword)
	require.NoError(t, err)
	return store, anon, anon.As(cred)
}

func TestAdminLogin(t *testing.T) {
	_, anon, admin := newBackend(t)
	ctx := context.Background()

	p, err := admin.AdminProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, DemoAdminUsername, p.Username)

	_, err = admin.StudentProfile(ctx)
	assert.True(t, client.IsUnauthorized(err))

	_, err = anon.LoginAdmin(ctx, DemoAdminUsername, "wrong")
	assert.Equal(t, "Invalid username or password", client.UserMessage(err, ""))
}

func TestStudentFlow(t *testing.T) {
	_, anon, _ := newBackend(t)
	ctx := context.Background()

	cred, err := anon.LoginStudent(ctx, DemoStudentRollNo, DemoStudentRollNo)
	require.NoError(t, err)
	student := anon.As(cred)

	profile, err := student.StudentProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", profile.Name)

	_, err = student.AdminProfile(ctx)
	assert.True(t, client.IsUnauthorized(err))

	_, err = student.SubmitComplaint(ctx, "Leaking tap in room 204")
	require.NoError(t, err)
	mine, err := student.MyComplaints(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, mine)
	assert.Equal(t, "Leaking tap in room 204", mine[0].Description)
	assert.Equal(t, models.ComplaintPending, mine[0].Status)

	_, err = student.ChangeStudentPassword(ctx, "wrong", "new-secret")
	assert.Equal(t, "Incorrect old password", client.UserMessage(err, ""))
	_, err = student.ChangeStudentPassword(ctx, DemoStudentRollNo, "new-secret")
	require.NoError(t, err)
	_, err = anon.LoginStudent(ctx, DemoStudentRollNo, "new-secret")
	assert.NoError(t, err)
}

func TestRoomCapacityRules(t *testing.T) {
	store, _, admin := newBackend(t)
	ctx := context.Background()

	_, err := admin.AddRoom(ctx, "301", 1)
	require.NoError(t, err)
	_, err = admin.AddRoom(ctx, "301", 2)
	assert.True(t, client.IsStatus(err, 409))

	var room models.Room
	for _, r := range store.Rooms() {
		if r.RoomNumber == "301" {
			room = r
		}
	}
	require.NotZero(t, room.ID)

	_, err = admin.AddStudent(ctx, models.Student{Name: "A", RollNo: "X1", Email: "a@x.io", RoomNo: "301"})
	require.NoError(t, err)
	_, err = admin.AddStudent(ctx, models.Student{Name: "B", RollNo: "X2", Email: "b@x.io", RoomNo: "301"})
	assert.True(t, client.IsStatus(err, 409))
	assert.Equal(t, "Room 301 is at full capacity", client.UserMessage(err, ""))

	_, err = admin.DeleteRoom(ctx, room.ID)
	assert.True(t, client.IsStatus(err, 409))

	_, err = admin.UpdateRoomCapacity(ctx, room.ID, 3)
	require.NoError(t, err)
	_, err = admin.AddStudent(ctx, models.Student{Name: "B", RollNo: "X2", Email: "b@x.io", RoomNo: "301"})
	require.NoError(t, err)
	_, err = admin.UpdateRoomCapacity(ctx, room.ID, 1)
	assert.True(t, client.IsStatus(err, 409))
}

func TestUpdateStudentKeepsRollNumber(t *testing.T) {
	_, _, admin := newBackend(t)
	ctx := context.Background()

	list, err := admin.Students(ctx)
	require.NoError(t, err)
	st := list[0]
	st.RollNo = "CHANGED"
	st.Name = "Asha R."
	_, err = admin.UpdateStudent(ctx, st.ID, st)
	require.NoError(t, err)

	list, err = admin.Students(ctx)
	require.NoError(t, err)
	assert.Equal(t, DemoStudentRollNo, list[0].RollNo)
	assert.Equal(t, "Asha R.", list[0].Name)
}

func TestOutpassDecisionsAreFinal(t *testing.T) {
	_, _, admin := newBackend(t)
	ctx := context.Background()

	list, err := admin.Outpasses(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	id := list[0].ID

	_, err = admin.UpdateOutpassStatus(ctx, id, models.OutpassApproved)
	require.NoError(t, err)
	_, err = admin.UpdateOutpassStatus(ctx, id, models.OutpassRejected)
	assert.True(t, client.IsStatus(err, 409))
}

func TestCSVUpload(t *testing.T) {
	_, _, admin := newBackend(t)
	ctx := context.Background()

	msg, err := admin.UploadRoomsCSV(ctx, "rooms.csv", strings.NewReader("room_number,capacity\n401,2\n402,x\n101,2\n"))
	require.NoError(t, err)
	assert.Equal(t, "1 rooms imported successfully, 2 skipped", msg.Message)

	msg, err = admin.UploadStudentsCSV(ctx, "students.csv", strings.NewReader("name,roll_no,email,room_no\nKiran,23CS100,kiran@x.io,401\n"))
	require.NoError(t, err)
	assert.Equal(t, "1 students imported successfully", msg.Message)
}

func TestFeesAndAnnouncements(t *testing.T) {
	_, _, admin := newBackend(t)
	ctx := context.Background()

	students, err := admin.Students(ctx)
	require.NoError(t, err)
	id := students[1].ID

	_, err = admin.AddFeePayment(ctx, models.FeePayment{StudentID: id, AmountPaid: 1200, PaymentDate: models.NewDate(time.Now())})
	require.NoError(t, err)
	history, err := admin.StudentFeeHistory(ctx, id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.InDelta(t, 1200, float64(history[0].AmountPaid), 0.001)

	_, err = admin.StudentFeeHistory(ctx, 9999)
	assert.True(t, client.IsStatus(err, 404))

	list, err := admin.Announcements(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Pinned())
}
