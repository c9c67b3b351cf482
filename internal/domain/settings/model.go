package settings

import "time"

// ClinicSettings is a singleton row holding clinic identity and billing
// details shown across the dashboard.
type ClinicSettings struct {
	Name      string    `db:"name" json:"name"`
	Logo      string    `db:"logo" json:"logo"`
	Address   string    `db:"address" json:"address"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	GSTNumber string    `db:"gst_number" json:"gstNumber"`
	GSTRate   float64   `db:"gst_rate" json:"gstRate"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
