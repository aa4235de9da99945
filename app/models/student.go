package models

// Student is a hostel resident as returned by the backend.
// RollNo is the stable external identifier and never changes after creation.
type Student struct {
	ID            int        `json:"id,omitempty"`
	Name          string     `json:"name" label:"Full Name" validate:"required"`
	RollNo        string     `json:"roll_no" label:"Roll Number" validate:"required"`
	Email         string     `json:"email" label:"Email" validate:"required,email"`
	Phone         string     `json:"phone"`
	RoomNo        string     `json:"room_no" label:"Room Number" validate:"required"`
	Department    string     `json:"department"`
	Year          FlexString `json:"year"`
	Gender        string     `json:"gender"`
	DOB           string     `json:"dob"`
	Address       string     `json:"address"`
	GuardianName  string     `json:"guardian_name"`
	GuardianPhone string     `json:"guardian_phone"`
}

// DOBInput formats the date of birth for an <input type="date">.
func (s Student) DOBInput() string {
	d, err := ParseDate(s.DOB)
	if err != nil {
		return ""
	}
	return d.Format(DateLayout)
}

// YearOptions are the selectable study years on the student form.
var YearOptions = []Option{
	{Value: "1", Label: "1st Year"},
	{Value: "2", Label: "2nd Year"},
	{Value: "3", Label: "3rd Year"},
	{Value: "4", Label: "4th Year"},
}

// GenderOptions are the selectable genders on the student form.
var GenderOptions = []Option{
	{Value: "Male", Label: "Male"},
	{Value: "Female", Label: "Female"},
}

// Option is a value/label pair for <select> inputs.
type Option struct {
	Value string
	Label string
}
