package reporting

import (
	"time"

	"github.com/medidash/medidash/internal/domain/appointment"
	"github.com/medidash/medidash/internal/domain/department"
	"github.com/medidash/medidash/internal/domain/labreport"
	"github.com/medidash/medidash/internal/domain/prescription"
)

// TrendPoint is one month of the income trend chart.
type TrendPoint struct {
	Month    string  `json:"month"`
	Pharmacy float64 `json:"pharmacy"`
	Lab      float64 `json:"lab"`
	Booking  float64 `json:"booking"`
}

// trendSeed is the static six-month baseline the dashboard ships with; only
// the current month's pharmacy and lab cells are replaced by live figures.
// There is no historical aggregation behind the other months.
var trendSeed = []TrendPoint{
	{Month: "Jan", Pharmacy: 12000, Lab: 8000, Booking: 5000},
	{Month: "Feb", Pharmacy: 15000, Lab: 9500, Booking: 6200},
	{Month: "Mar", Pharmacy: 18000, Lab: 11000, Booking: 7100},
	{Month: "Apr", Pharmacy: 16000, Lab: 10500, Booking: 6800},
	{Month: "May", Pharmacy: 22000, Lab: 13000, Booking: 8500},
	{Month: "Jun", Pharmacy: 25000, Lab: 15000, Booking: 9200},
}

// FinancialSummary is the owner/admin income report for one reference month.
type FinancialSummary struct {
	MonthlyLabIncome        float64            `json:"monthlyLabIncome"`
	MonthlyPharmacyIncome   float64            `json:"monthlyPharmacyIncome"`
	MonthlyDepartmentIncome map[string]float64 `json:"monthlyDepartmentIncome"`
	TotalIncomeYTD          float64            `json:"totalIncomeYTD"`
	Trend                   []TrendPoint       `json:"trend"`
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func inMonth(dateStr string, month time.Month, year int) bool {
	t, ok := parseDay(dateStr)
	return ok && t.Month() == month && t.Year() == year
}

func inYear(dateStr string, year int) bool {
	t, ok := parseDay(dateStr)
	return ok && t.Year() == year
}

// ComputeFinancials derives the income report for the given reference month.
// Lab and pharmacy income count a record only when the service was rendered
// (Completed / Fulfilled) and paid for. Department booking income sums
// consultation fees with no payment gate, which mirrors the dashboard the
// clinic already runs its numbers against.
func ComputeFinancials(
	appointments []*appointment.Appointment,
	labReports []*labreport.LabReport,
	prescriptions []*prescription.Prescription,
	departments []*department.Department,
	month time.Month,
	year int,
) FinancialSummary {
	var monthlyLab, ytdLab float64
	for _, r := range labReports {
		if r.Status != labreport.StatusCompleted || r.PaymentStatus != labreport.PaymentPaid {
			continue
		}
		if inMonth(r.ReportDate, month, year) {
			monthlyLab += r.TestFee
		}
		if inYear(r.ReportDate, year) {
			ytdLab += r.TestFee
		}
	}

	var monthlyPharmacy, ytdPharmacy float64
	for _, p := range prescriptions {
		if p.Status != prescription.StatusFulfilled || p.PaymentStatus == nil ||
			*p.PaymentStatus != prescription.PaymentPaid || p.DateFulfilled == nil || p.TotalAmount == nil {
			continue
		}
		if inMonth(*p.DateFulfilled, month, year) {
			monthlyPharmacy += *p.TotalAmount
		}
		if inYear(*p.DateFulfilled, year) {
			ytdPharmacy += *p.TotalAmount
		}
	}

	deptIncome := make(map[string]float64, len(departments))
	for _, d := range departments {
		deptIncome[d.Name] = 0
	}
	deptByID := make(map[string]string, len(departments))
	for _, d := range departments {
		deptByID[d.ID.String()] = d.Name
	}
	var ytdAppointments float64
	for _, a := range appointments {
		if inYear(a.Date, year) {
			ytdAppointments += a.ConsultationFee
		}
		if !inMonth(a.Date, month, year) {
			continue
		}
		if name, ok := deptByID[a.DepartmentID.String()]; ok {
			deptIncome[name] += a.ConsultationFee
		}
	}

	trend := make([]TrendPoint, len(trendSeed))
	copy(trend, trendSeed)
	currentMonthName := month.String()[:3]
	for i := range trend {
		if trend[i].Month == currentMonthName {
			trend[i].Pharmacy = monthlyPharmacy
			trend[i].Lab = monthlyLab
		}
	}

	return FinancialSummary{
		MonthlyLabIncome:        monthlyLab,
		MonthlyPharmacyIncome:   monthlyPharmacy,
		MonthlyDepartmentIncome: deptIncome,
		TotalIncomeYTD:          ytdPharmacy + ytdLab + ytdAppointments,
		Trend:                   trend,
	}
}
