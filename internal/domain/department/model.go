package department

import (
	"time"

	"github.com/google/uuid"
)

// Department groups doctors and appointments for workload and income
// breakdowns. Head references a doctor but is not enforced as a foreign
// key so departments can be created before their head is hired.
type Department struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Head        *uuid.UUID `db:"head_doctor_id" json:"head,omitempty"`
	Description string     `db:"description" json:"description"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
