package models

// FeePayment is one entry of a student's append-only payment ledger.
// PaymentDate is checked by the form layer; struct-typed fields skip "required".
type FeePayment struct {
	ID          int       `json:"id,omitempty"`
	StudentID   int       `json:"student_id" label:"Student" validate:"required,gt=0"`
	AmountPaid  FlexFloat `json:"amount_paid" label:"Amount" validate:"required,gt=0"`
	PaymentDate Date      `json:"payment_date"`
	Remarks     string    `json:"remarks"`
}
