package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeNewAppointment = "New Appointment"
	TypeLowStock       = "Low Stock"
	TypeInfo           = "Info"
	TypeLeaveRequest   = "Leave Request"
)

var validTypes = map[string]bool{
	TypeNewAppointment: true, TypeLowStock: true, TypeInfo: true, TypeLeaveRequest: true,
}

// Notification is a dashboard feed entry. LinkTo is the frontend route the
// entry points at, e.g. "/appointments".
type Notification struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Type      string    `db:"type" json:"type"`
	Message   string    `db:"message" json:"message"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
	Read      bool      `db:"read" json:"read"`
	LinkTo    string    `db:"link_to" json:"linkTo"`
}
