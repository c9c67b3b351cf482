package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

var validStatuses = map[string]bool{
	StatusPending: true, StatusApproved: true, StatusRejected: true,
}

// LeaveRequest maps to the leave_request table. Approved and Rejected are
// terminal; only a Pending request may change status.
type LeaveRequest struct {
	ID          uuid.UUID `db:"id" json:"id"`
	DoctorID    uuid.UUID `db:"doctor_id" json:"doctorId"`
	StartDate   string    `db:"start_date" json:"startDate"`
	EndDate     string    `db:"end_date" json:"endDate"`
	Reason      string    `db:"reason" json:"reason"`
	Status      string    `db:"status" json:"status"`
	RequestDate string    `db:"request_date" json:"requestDate"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
