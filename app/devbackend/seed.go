package devbackend

import (
	"fmt"
	"time"

	"hostel-portal/app/models"
)

// Demo credentials created by Seed.
const (
	DemoAdminUsername = "admin"
	DemoAdminPassword = "admin123"
	DemoStudentRollNo = "21CS001"
)

// Seed fills the store with a small hostel: two floors of rooms, a handful of
// students (password = roll number), and one of every other record.
func (s *Store) Seed() error {
	if err := s.AddAdmin(DemoAdminUsername, DemoAdminPassword, "Hostel Warden", "warden@hostel.local"); err != nil {
		return err
	}

	for _, r := range []struct {
		number   string
		capacity int
	}{
		{"101", 2}, {"102", 3}, {"103", 2}, {"201", 4}, {"202", 2},
	} {
		if _, err := s.AddRoom(r.number, r.capacity); err != nil {
			return err
		}
	}

	seedStudents := []models.Student{
		{Name: "Asha Rao", RollNo: DemoStudentRollNo, Email: "asha@hostel.local", Phone: "9876543210", RoomNo: "101", Department: "CSE", Year: "2", Gender: "Female", DOB: "2004-05-17", GuardianName: "Meera Rao", GuardianPhone: "9123456780"},
		{Name: "Vikram Singh", RollNo: "21ME014", Email: "vikram@hostel.local", RoomNo: "101", Department: "ME", Year: "2", Gender: "Male"},
		{Name: "Nisha Patel", RollNo: "22EC007", Email: "nisha@hostel.local", RoomNo: "102", Department: "ECE", Year: "1", Gender: "Female"},
		{Name: "Rahul Das", RollNo: "20CS033", Email: "rahul@hostel.local", RoomNo: "201", Department: "CSE", Year: "3", Gender: "Male"},
	}
	var ids []int
	for _, st := range seedStudents {
		added, err := s.AddStudent(st)
		if err != nil {
			return fmt.Errorf("seed student %s: %w", st.RollNo, err)
		}
		ids = append(ids, added.ID)
	}

	if _, err := s.SubmitComplaint(ids[0], "Ceiling fan in room 101 is not working"); err != nil {
		return err
	}
	if _, err := s.SubmitComplaint(ids[3], "Wi-Fi drops every evening on the second floor"); err != nil {
		return err
	}

	now := s.now()
	if _, err := s.AddFeePayment(models.FeePayment{StudentID: ids[0], AmountPaid: 25000, PaymentDate: models.NewDate(now.AddDate(0, -1, 0)), Remarks: "Semester hostel fee"}); err != nil {
		return err
	}

	if _, err := s.AddAnnouncement("Water supply maintenance", "Water supply will be interrupted on Sunday from 9 AM to 12 PM."); err != nil {
		return err
	}
	notice := models.EncodeFeeNotice(models.FeeNotice{
		Link:      "https://payments.hostel.local/mess-fee",
		StartDate: models.NewDate(now).Time,
		EndDate:   models.NewDate(now.AddDate(0, 0, 30)).Time,
		Body:      "Mess fee for the coming month is due. Pay online before the window closes.",
	})
	if _, err := s.AddAnnouncement("Mess fee payment", notice); err != nil {
		return err
	}

	departure := now.Add(24 * time.Hour).Truncate(time.Hour)
	_, err := s.SubmitOutpass(ids[2], models.OutpassRequest{
		Reason:             "Visiting family for the weekend",
		DepartureTime:      departure,
		ExpectedReturnTime: departure.Add(48 * time.Hour),
	})
	return err
}
