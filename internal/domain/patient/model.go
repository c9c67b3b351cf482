package patient

import (
	"time"

	"github.com/google/uuid"
)

// Payment states shared by the billing-bearing entities.
const (
	PaymentPaid   = "Paid"
	PaymentUnpaid = "Unpaid"
)

// Patient maps to the patient table. Admit/discharge dates are calendar-date
// strings ("YYYY-MM-DD"); a patient with an admit date and no discharge date
// is currently occupying a bed.
type Patient struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Age            int       `db:"age" json:"age"`
	Gender         string    `db:"gender" json:"gender"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	WhatsAppNumber *string   `db:"whatsapp_number" json:"whatsappNumber,omitempty"`
	Address        string    `db:"address" json:"address"`
	AdmitDate      *string   `db:"admit_date" json:"admitDate,omitempty"`
	DischargeDate  *string   `db:"discharge_date" json:"dischargeDate,omitempty"`
	RoomNumber     *string   `db:"room_number" json:"roomNumber,omitempty"`
	PaymentStatus  *string   `db:"payment_status" json:"paymentStatus,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

var validGenders = map[string]bool{
	"Male": true, "Female": true, "Other": true,
}
