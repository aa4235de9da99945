package devbackend

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/models"
)

func (s *Store) student(id int) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.students[id]
	if !ok {
		return models.Student{}, notFound("Student not found")
	}
	return rec.student, nil
}

// Students returns every student ordered by id.
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, 0, len(s.students))
	for _, id := range sortedKeys(s.students) {
		out = append(out, s.students[id].student)
	}
	return out
}

func (s *Store) roomByNumber(number string) *models.Room {
	for _, r := range s.rooms {
		if strings.EqualFold(r.RoomNumber, number) {
			return r
		}
	}
	return nil
}

func validateStudent(st models.Student) error {
	if strings.TrimSpace(st.Name) == "" || strings.TrimSpace(st.RollNo) == "" ||
		strings.TrimSpace(st.Email) == "" || strings.TrimSpace(st.RoomNo) == "" {
		return badRequest("Name, roll number, email and room number are required")
	}
	return nil
}

// AddStudent creates a student whose initial password is the roll number and
// places them in their room.
func (s *Store) AddStudent(st models.Student) (models.Student, error) {
	if err := validateStudent(st); err != nil {
		return models.Student{}, err
	}
	h, err := s.hash(st.RollNo)
	if err != nil {
		return models.Student{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.students {
		if strings.EqualFold(rec.student.RollNo, st.RollNo) {
			return models.Student{}, conflict("A student with this roll number already exists")
		}
	}
	room := s.roomByNumber(st.RoomNo)
	if room == nil {
		return models.Student{}, notFound("Room " + st.RoomNo + " does not exist")
	}
	if room.CurrentOccupancy >= room.Capacity {
		return models.Student{}, conflict("Room " + room.RoomNumber + " is at full capacity")
	}
	room.CurrentOccupancy++
	st.ID = s.id()
	st.RoomNo = room.RoomNumber
	s.students[st.ID] = &studentRecord{student: st, hash: h}
	return st, nil
}

// updateStudent replaces a record, keeping the roll number, and moves the
// student between rooms when the room changed.
func (s *Store) updateStudent(id int, st models.Student) error {
	if err := validateStudent(st); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.students[id]
	if !ok {
		return notFound("Student not found")
	}
	if !strings.EqualFold(rec.student.RoomNo, st.RoomNo) {
		to := s.roomByNumber(st.RoomNo)
		if to == nil {
			return notFound("Room " + st.RoomNo + " does not exist")
		}
		if to.CurrentOccupancy >= to.Capacity {
			return conflict("Room " + to.RoomNumber + " is at full capacity")
		}
		if from := s.roomByNumber(rec.student.RoomNo); from != nil && from.CurrentOccupancy > 0 {
			from.CurrentOccupancy--
		}
		to.CurrentOccupancy++
		st.RoomNo = to.RoomNumber
	}
	st.ID = id
	st.RollNo = rec.student.RollNo
	rec.student = st
	return nil
}

func (s *Store) deleteStudent(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.students[id]
	if !ok {
		return notFound("Student not found")
	}
	if room := s.roomByNumber(rec.student.RoomNo); room != nil && room.CurrentOccupancy > 0 {
		room.CurrentOccupancy--
	}
	delete(s.students, id)
	for token, acct := range s.sessions {
		if acct.role == roleStudent && acct.id == id {
			delete(s.sessions, token)
		}
	}
	return nil
}

func (s *Server) listStudents(c *fiber.Ctx) error {
	return c.JSON(s.store.Students())
}

func (s *Server) addStudent(c *fiber.Ctx) error {
	var st models.Student
	if err := c.BodyParser(&st); err != nil {
		return badRequest("Invalid request")
	}
	if _, err := s.store.AddStudent(st); err != nil {
		return err
	}
	return message(c, fiber.StatusCreated, "Student added successfully")
}

func (s *Server) updateStudent(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var st models.Student
	if err := c.BodyParser(&st); err != nil {
		return badRequest("Invalid request")
	}
	if err := s.store.updateStudent(id, st); err != nil {
		return err
	}
	return message(c, fiber.StatusOK, "Student updated successfully")
}

func (s *Server) deleteStudent(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := s.store.deleteStudent(id); err != nil {
		return err
	}
	return message(c, fiber.StatusOK, "Student deleted successfully")
}
