package devbackend

import (
	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/models"
)

func (s *Store) feesFor(studentID int) []models.FeePayment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.FeePayment{}
	for i := len(s.fees) - 1; i >= 0; i-- {
		if s.fees[i].StudentID == studentID {
			out = append(out, s.fees[i])
		}
	}
	return out
}

// AddFeePayment appends a payment to a student's ledger.
func (s *Store) AddFeePayment(p models.FeePayment) (models.FeePayment, error) {
	if p.AmountPaid <= 0 {
		return models.FeePayment{}, badRequest("Amount must be a positive number")
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = models.NewDate(s.now())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.students[p.StudentID]; !ok {
		return models.FeePayment{}, notFound("Student not found")
	}
	p.ID = s.id()
	s.fees = append(s.fees, p)
	return p, nil
}

func (s *Server) studentFees(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := s.store.student(id); err != nil {
		return err
	}
	return c.JSON(s.store.feesFor(id))
}

func (s *Server) myFees(c *fiber.Ctx) error {
	return c.JSON(s.store.feesFor(current(c).id))
}

func (s *Server) addFee(c *fiber.Ctx) error {
	var p models.FeePayment
	if err := c.BodyParser(&p); err != nil {
		return badRequest("Invalid request")
	}
	if _, err := s.store.AddFeePayment(p); err != nil {
		return err
	}
	return message(c, fiber.StatusCreated, "Payment recorded successfully")
}
