package appointment

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"

	PaymentPaid   = "Paid"
	PaymentUnpaid = "Unpaid"

	// PaymentModeNA is forced whenever the appointment is unpaid.
	PaymentModeNA = "N/A"
)

var validStatuses = map[string]bool{
	StatusScheduled: true, StatusCompleted: true, StatusCancelled: true,
}

// Appointment maps to the appointment table. Date is "YYYY-MM-DD" and Time is
// canonical 24-hour "HH:MM"; 12-hour input is normalized at the boundary.
type Appointment struct {
	ID                uuid.UUID `db:"id" json:"id"`
	AppointmentNumber string    `db:"appointment_number" json:"appointmentNumber"`
	PatientID         uuid.UUID `db:"patient_id" json:"patientId"`
	DoctorID          uuid.UUID `db:"doctor_id" json:"doctorId"`
	DepartmentID      uuid.UUID `db:"department_id" json:"departmentId"`
	Date              string    `db:"date" json:"date"`
	Time              string    `db:"time" json:"time"`
	Reason            string    `db:"reason" json:"reason"`
	Status            string    `db:"status" json:"status"`
	ConsultationFee   float64   `db:"consultation_fee" json:"consultationFee"`
	PaymentStatus     string    `db:"payment_status" json:"paymentStatus"`
	PaymentMode       string    `db:"payment_mode" json:"paymentMode"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}
