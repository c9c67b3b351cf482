package prescription

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusIssued    = "Issued"
	StatusFulfilled = "Fulfilled"

	PaymentPaid   = "Paid"
	PaymentUnpaid = "Unpaid"
)

// Prescription maps to the prescription table. DateFulfilled, PaymentStatus
// and TotalAmount stay null until the pharmacy fulfills the prescription.
type Prescription struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patientId"`
	DoctorID      uuid.UUID `db:"doctor_id" json:"doctorId"`
	MedicineName  string    `db:"medicine_name" json:"medicineName"`
	Dosage        string    `db:"dosage" json:"dosage"`
	Quantity      int       `db:"quantity" json:"quantity"`
	Frequency     string    `db:"frequency" json:"frequency"`
	Instructions  string    `db:"instructions" json:"instructions"`
	DateIssued    string    `db:"date_issued" json:"dateIssued"`
	Status        string    `db:"status" json:"status"`
	DateFulfilled *string   `db:"date_fulfilled" json:"dateFulfilled,omitempty"`
	PaymentStatus *string   `db:"payment_status" json:"paymentStatus,omitempty"`
	TotalAmount   *float64  `db:"total_amount" json:"totalAmount,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
