package reporting

import (
	"sort"

	"github.com/google/uuid"

	"github.com/medidash/medidash/internal/domain/appointment"
	"github.com/medidash/medidash/internal/domain/doctor"
	"github.com/medidash/medidash/internal/domain/labreport"
	"github.com/medidash/medidash/internal/domain/prescription"
)

// DoctorPerformance is one row of the revenue ranking.
type DoctorPerformance struct {
	DoctorID            uuid.UUID `json:"doctorId"`
	Name                string    `json:"name"`
	Specialty           string    `json:"specialty"`
	AppointmentCount    int       `json:"appointmentCount"`
	ConsultationRevenue float64   `json:"consultationRevenue"`
	RxRevenue           float64   `json:"rxRevenue"`
	LabRevenue          float64   `json:"labRevenue"`
	TotalRevenue        float64   `json:"totalRevenue"`
	PerformancePercent  float64   `json:"performancePercent"`
}

// ComputeDoctorPerformance ranks doctors by paid revenue across all three
// streams. The appointment count is total workload, not just paid visits.
// PerformancePercent scales each doctor against the top earner; when nobody
// has revenue everyone sits at 0 rather than dividing by zero.
func ComputeDoctorPerformance(
	doctors []*doctor.Doctor,
	appointments []*appointment.Appointment,
	prescriptions []*prescription.Prescription,
	labReports []*labreport.LabReport,
) []DoctorPerformance {
	rows := make([]DoctorPerformance, 0, len(doctors))
	for _, d := range doctors {
		row := DoctorPerformance{DoctorID: d.ID, Name: d.Name, Specialty: d.Specialty}

		for _, a := range appointments {
			if a.DoctorID != d.ID {
				continue
			}
			row.AppointmentCount++
			if a.PaymentStatus == appointment.PaymentPaid {
				row.ConsultationRevenue += a.ConsultationFee
			}
		}
		for _, p := range prescriptions {
			if p.DoctorID == d.ID && p.Status == prescription.StatusFulfilled &&
				p.PaymentStatus != nil && *p.PaymentStatus == prescription.PaymentPaid && p.TotalAmount != nil {
				row.RxRevenue += *p.TotalAmount
			}
		}
		for _, r := range labReports {
			if r.DoctorID == d.ID && r.Status == labreport.StatusCompleted && r.PaymentStatus == labreport.PaymentPaid {
				row.LabRevenue += r.TestFee
			}
		}

		row.TotalRevenue = row.ConsultationRevenue + row.RxRevenue + row.LabRevenue
		rows = append(rows, row)
	}

	var maxRevenue float64
	for _, row := range rows {
		if row.TotalRevenue > maxRevenue {
			maxRevenue = row.TotalRevenue
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue > rows[j].TotalRevenue
	})

	if maxRevenue > 0 {
		for i := range rows {
			rows[i].PerformancePercent = rows[i].TotalRevenue / maxRevenue * 100
		}
	}
	return rows
}
