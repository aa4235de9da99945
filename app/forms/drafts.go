package forms

import (
	"strconv"
	"strings"
	"time"

	"hostel-portal/app/client"
	"hostel-portal/app/models"
)

// StudentDraft is a complete student record being added or edited.
type StudentDraft struct {
	models.Student
}

// NewStudentDraft returns the blank record the add form starts from.
func NewStudentDraft() StudentDraft {
	return StudentDraft{}
}

// EditStudentDraft pre-fills the edit form from an existing record.
func EditStudentDraft(s models.Student) StudentDraft {
	s.DOB = s.DOBInput()
	return StudentDraft{Student: s}
}

// Editing reports whether the draft updates an existing student.
func (d StudentDraft) Editing() bool { return d.ID != 0 }

// BindStudent copies submitted values onto the draft field by field. The roll
// number of an existing student is kept from the draft.
func BindStudent(v Values, d StudentDraft) StudentDraft {
	s := d.Student
	s.Name = field(v, "name")
	if !d.Editing() {
		s.RollNo = field(v, "roll_no")
	}
	s.Email = field(v, "email")
	s.Phone = DigitsOnly(v.FormValue("phone"))
	s.RoomNo = field(v, "room_no")
	s.Department = field(v, "department")
	s.Year = models.FlexString(field(v, "year"))
	s.Gender = field(v, "gender")
	s.DOB = field(v, "dob")
	s.Address = field(v, "address")
	s.GuardianName = field(v, "guardian_name")
	s.GuardianPhone = DigitsOnly(v.FormValue("guardian_phone"))
	return StudentDraft{Student: s}
}

func (d StudentDraft) Validate() error {
	if err := check(d.Student); err != nil {
		return err
	}
	if d.DOB != "" {
		if _, err := models.ParseDate(d.DOB); err != nil {
			return client.Validation("Date of birth must be a valid date.")
		}
	}
	return nil
}

// RoomDraft is the add-room form.
type RoomDraft struct {
	RoomNumber string `label:"Room Number" validate:"required"`
	Capacity   string `label:"Capacity" validate:"required"`
}

func BindRoom(v Values) RoomDraft {
	return RoomDraft{RoomNumber: field(v, "room_number"), Capacity: field(v, "capacity")}
}

func (d RoomDraft) Validate() error {
	if err := check(d); err != nil {
		return err
	}
	_, err := d.CapacityValue()
	return err
}

// CapacityValue parses the capacity as a positive integer.
func (d RoomDraft) CapacityValue() (int, error) {
	return positiveInt(d.Capacity, "Invalid capacity. Please enter a positive number.")
}

// CapacityDraft changes the capacity of an existing room.
type CapacityDraft struct {
	RoomID   int
	Capacity string `label:"Capacity" validate:"required"`
}

func BindCapacity(v Values, roomID int) CapacityDraft {
	return CapacityDraft{RoomID: roomID, Capacity: field(v, "capacity")}
}

func (d CapacityDraft) Validate() error {
	if err := check(d); err != nil {
		return err
	}
	_, err := d.Value()
	return err
}

func (d CapacityDraft) Value() (int, error) {
	return positiveInt(d.Capacity, "Invalid capacity. Please enter a positive number.")
}

// ComplaintDraft is a student's new complaint.
type ComplaintDraft struct {
	Description string `label:"Description" validate:"required"`
}

func BindComplaint(v Values) ComplaintDraft {
	return ComplaintDraft{Description: field(v, "description")}
}

func (d ComplaintDraft) Validate() error { return check(d) }

// ComplaintStatusDraft moves a complaint to another status.
type ComplaintStatusDraft struct {
	ComplaintID int
	Status      models.ComplaintStatus `label:"Status" validate:"required"`
}

func BindComplaintStatus(v Values, id int) ComplaintStatusDraft {
	return ComplaintStatusDraft{ComplaintID: id, Status: models.ComplaintStatus(field(v, "status"))}
}

func (d ComplaintStatusDraft) Validate() error {
	if err := check(d); err != nil {
		return err
	}
	if !d.Status.Valid() {
		return client.Validation("Unknown complaint status.")
	}
	return nil
}

// FeeDraft records a payment against a student.
type FeeDraft struct {
	StudentID   string `label:"Student" validate:"required"`
	AmountPaid  string `label:"Amount" validate:"required"`
	PaymentDate string `label:"Payment Date"`
	Remarks     string `label:"Remarks"`
}

// NewFeeDraft starts a payment for studentID dated today.
func NewFeeDraft(studentID int, today time.Time) FeeDraft {
	d := FeeDraft{PaymentDate: today.Format(models.DateLayout)}
	if studentID > 0 {
		d.StudentID = strconv.Itoa(studentID)
	}
	return d
}

func BindFee(v Values) FeeDraft {
	return FeeDraft{
		StudentID:   field(v, "student_id"),
		AmountPaid:  field(v, "amount_paid"),
		PaymentDate: field(v, "payment_date"),
		Remarks:     field(v, "remarks"),
	}
}

func (d FeeDraft) Validate() error {
	if d.StudentID == "" || d.AmountPaid == "" {
		return client.Validation("Please select a student and enter an amount.")
	}
	_, err := d.Payment()
	return err
}

// Payment converts the draft into the payment sent to the backend.
func (d FeeDraft) Payment() (models.FeePayment, error) {
	id, err := positiveInt(d.StudentID, "Please select a student.")
	if err != nil {
		return models.FeePayment{}, err
	}
	amount, err := strconv.ParseFloat(d.AmountPaid, 64)
	if err != nil || amount <= 0 {
		return models.FeePayment{}, client.Validation("Amount must be a positive number.")
	}
	if d.PaymentDate == "" {
		return models.FeePayment{}, client.Validation("Please fill in: Payment Date.")
	}
	date, err := models.ParseDate(d.PaymentDate)
	if err != nil {
		return models.FeePayment{}, client.Validation("Payment date must be a valid date.")
	}
	p := models.FeePayment{
		StudentID:   id,
		AmountPaid:  models.FlexFloat(amount),
		PaymentDate: models.NewDate(date),
		Remarks:     d.Remarks,
	}
	if err := check(p); err != nil {
		return models.FeePayment{}, err
	}
	return p, nil
}

// Announcement kinds offered by the admin form.
const (
	AnnouncementPlain     = "plain"
	AnnouncementFeeNotice = "fee_notice"
)

// AnnouncementDraft is a plain announcement or a pinned fee notice.
type AnnouncementDraft struct {
	Kind    string
	Title   string `label:"Title" validate:"required"`
	Content string `label:"Content"`
	Link    string `label:"Payment Link"`
	From    string `label:"From"`
	To      string `label:"To"`
}

func BindAnnouncement(v Values) AnnouncementDraft {
	kind := field(v, "kind")
	if kind != AnnouncementFeeNotice {
		kind = AnnouncementPlain
	}
	return AnnouncementDraft{
		Kind:    kind,
		Title:   field(v, "title"),
		Content: strings.TrimSpace(v.FormValue("content")),
		Link:    field(v, "link"),
		From:    field(v, "from"),
		To:      field(v, "to"),
	}
}

func (d AnnouncementDraft) Validate() error {
	if err := check(d); err != nil {
		return err
	}
	_, err := d.Body()
	return err
}

// Body returns the content stored by the backend, encoding fee notices.
func (d AnnouncementDraft) Body() (string, error) {
	if d.Kind != AnnouncementFeeNotice {
		if d.Content == "" {
			return "", client.Validation("Please fill in: Content.")
		}
		return d.Content, nil
	}
	if d.Link == "" || d.From == "" || d.To == "" {
		return "", client.Validation("A fee notice needs a payment link and a payment window.")
	}
	if !strings.HasPrefix(d.Link, "http://") && !strings.HasPrefix(d.Link, "https://") {
		return "", client.Validation("Payment link must start with http:// or https://.")
	}
	from, err := models.ParseDate(d.From)
	if err != nil {
		return "", client.Validation("From must be a valid date.")
	}
	to, err := models.ParseDate(d.To)
	if err != nil {
		return "", client.Validation("To must be a valid date.")
	}
	if to.Before(from) {
		return "", client.Validation("The payment window ends before it starts.")
	}
	return models.EncodeFeeNotice(models.FeeNotice{
		Title:     d.Title,
		Link:      d.Link,
		StartDate: from,
		EndDate:   to,
		Body:      d.Content,
	}), nil
}

// DateTimeLayout is the value format of <input type="datetime-local">.
const DateTimeLayout = "2006-01-02T15:04"

// OutpassDraft is a student's leave request.
type OutpassDraft struct {
	Reason    string `label:"Reason" validate:"required"`
	Departure string `label:"Departure Time" validate:"required"`
	Return    string `label:"Expected Return Time" validate:"required"`
}

// NewOutpassDraft pre-fills both times with now, as the request form does.
func NewOutpassDraft(now time.Time) OutpassDraft {
	ts := now.Format(DateTimeLayout)
	return OutpassDraft{Departure: ts, Return: ts}
}

func BindOutpass(v Values) OutpassDraft {
	return OutpassDraft{
		Reason:    strings.TrimSpace(v.FormValue("reason")),
		Departure: field(v, "departure_time"),
		Return:    field(v, "expected_return_time"),
	}
}

func (d OutpassDraft) Validate() error {
	if err := check(d); err != nil {
		return err
	}
	_, err := d.Request()
	return err
}

// Request converts the draft into the body sent to the backend. Times are
// read in the server's local zone.
func (d OutpassDraft) Request() (models.OutpassRequest, error) {
	dep, err := time.ParseInLocation(DateTimeLayout, d.Departure, time.Local)
	if err != nil {
		return models.OutpassRequest{}, client.Validation("Departure time must be a valid date and time.")
	}
	ret, err := time.ParseInLocation(DateTimeLayout, d.Return, time.Local)
	if err != nil {
		return models.OutpassRequest{}, client.Validation("Expected return time must be a valid date and time.")
	}
	req := models.OutpassRequest{Reason: d.Reason, DepartureTime: dep, ExpectedReturnTime: ret}
	if err := check(req); err != nil {
		return models.OutpassRequest{}, err
	}
	return req, nil
}

// PasswordDraft changes the signed-in student's password.
type PasswordDraft struct {
	OldPassword string `label:"Old Password" validate:"required"`
	NewPassword string `label:"New Password" validate:"required"`
}

func BindPassword(v Values) PasswordDraft {
	return PasswordDraft{OldPassword: v.FormValue("oldPassword"), NewPassword: v.FormValue("newPassword")}
}

func (d PasswordDraft) Validate() error { return check(d) }

// Login roles offered by the sign-in form.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// LoginDraft is the sign-in form. Identifier is a roll number for students
// and a username for admins.
type LoginDraft struct {
	Role       string
	Identifier string `label:"Username or Roll Number" validate:"required"`
	Password   string `label:"Password" validate:"required"`
}

func BindLogin(v Values) LoginDraft {
	role := field(v, "role")
	if role != RoleAdmin {
		role = RoleStudent
	}
	return LoginDraft{Role: role, Identifier: field(v, "identifier"), Password: v.FormValue("password")}
}

func (d LoginDraft) Validate() error { return check(d) }

func positiveInt(s, msg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, client.Validation(msg)
	}
	return n, nil
}
