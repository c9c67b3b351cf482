package reporting

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medidash/medidash/internal/domain/appointment"
	"github.com/medidash/medidash/internal/domain/department"
	"github.com/medidash/medidash/internal/domain/labreport"
	"github.com/medidash/medidash/internal/domain/prescription"
)

func paid() *string    { s := prescription.PaymentPaid; return &s }
func unpaid() *string  { s := prescription.PaymentUnpaid; return &s }
func amount(v float64) *float64 { return &v }
func day(s string) *string      { return &s }

func TestComputeFinancialsLabGating(t *testing.T) {
	report := &labreport.LabReport{
		Status:        labreport.StatusCompleted,
		PaymentStatus: labreport.PaymentUnpaid,
		TestFee:       800,
		ReportDate:    "2024-08-10",
	}

	sum := ComputeFinancials(nil, []*labreport.LabReport{report}, nil, nil, time.August, 2024)
	if sum.MonthlyLabIncome != 0 {
		t.Fatalf("unpaid completed report contributed %v, want 0", sum.MonthlyLabIncome)
	}

	report.PaymentStatus = labreport.PaymentPaid
	sum = ComputeFinancials(nil, []*labreport.LabReport{report}, nil, nil, time.August, 2024)
	if sum.MonthlyLabIncome != 800 {
		t.Fatalf("paid completed report contributed %v, want 800", sum.MonthlyLabIncome)
	}

	// Still pending: no income regardless of payment.
	report.Status = labreport.StatusPending
	sum = ComputeFinancials(nil, []*labreport.LabReport{report}, nil, nil, time.August, 2024)
	if sum.MonthlyLabIncome != 0 {
		t.Fatalf("pending report contributed %v, want 0", sum.MonthlyLabIncome)
	}
}

func TestComputeFinancialsPharmacyGating(t *testing.T) {
	prescriptions := []*prescription.Prescription{
		{Status: prescription.StatusFulfilled, PaymentStatus: paid(), TotalAmount: amount(135), DateFulfilled: day("2024-08-15")},
		{Status: prescription.StatusFulfilled, PaymentStatus: unpaid(), TotalAmount: amount(50), DateFulfilled: day("2024-08-16")},
		{Status: prescription.StatusIssued, PaymentStatus: paid(), TotalAmount: amount(99), DateFulfilled: day("2024-08-17")},
		{Status: prescription.StatusFulfilled, PaymentStatus: paid(), TotalAmount: amount(200), DateFulfilled: day("2024-07-01")},
	}

	sum := ComputeFinancials(nil, nil, prescriptions, nil, time.August, 2024)
	if sum.MonthlyPharmacyIncome != 135 {
		t.Fatalf("monthly pharmacy income = %v, want 135", sum.MonthlyPharmacyIncome)
	}
}

func TestComputeFinancialsDepartmentIncomeNotPaymentGated(t *testing.T) {
	dept := &department.Department{ID: uuid.New(), Name: "Cardiology"}
	appointments := []*appointment.Appointment{
		{DepartmentID: dept.ID, Date: "2024-08-05", ConsultationFee: 500, PaymentStatus: appointment.PaymentUnpaid},
		{DepartmentID: dept.ID, Date: "2024-08-06", ConsultationFee: 700, PaymentStatus: appointment.PaymentPaid},
	}

	sum := ComputeFinancials(appointments, nil, nil, []*department.Department{dept}, time.August, 2024)
	if sum.MonthlyDepartmentIncome["Cardiology"] != 1200 {
		t.Fatalf("department income = %v, want 1200 (unpaid fees still count)", sum.MonthlyDepartmentIncome["Cardiology"])
	}
}

func TestComputeFinancialsYTDTotal(t *testing.T) {
	dept := &department.Department{ID: uuid.New(), Name: "Cardiology"}
	appointments := []*appointment.Appointment{
		{DepartmentID: dept.ID, Date: "2024-02-01", ConsultationFee: 1000},
		{DepartmentID: dept.ID, Date: "2023-12-31", ConsultationFee: 9999}, // previous year
	}
	labReports := []*labreport.LabReport{
		{Status: labreport.StatusCompleted, PaymentStatus: labreport.PaymentPaid, TestFee: 300, ReportDate: "2024-03-10"},
	}
	prescriptions := []*prescription.Prescription{
		{Status: prescription.StatusFulfilled, PaymentStatus: paid(), TotalAmount: amount(150), DateFulfilled: day("2024-01-20")},
	}

	sum := ComputeFinancials(appointments, labReports, prescriptions, []*department.Department{dept}, time.August, 2024)
	if sum.TotalIncomeYTD != 1450 {
		t.Fatalf("YTD total = %v, want 1450", sum.TotalIncomeYTD)
	}
}

func TestComputeFinancialsTrendOverwritesCurrentMonth(t *testing.T) {
	labReports := []*labreport.LabReport{
		{Status: labreport.StatusCompleted, PaymentStatus: labreport.PaymentPaid, TestFee: 4321, ReportDate: "2024-03-10"},
	}

	sum := ComputeFinancials(nil, labReports, nil, nil, time.March, 2024)
	for _, point := range sum.Trend {
		switch point.Month {
		case "Mar":
			if point.Lab != 4321 {
				t.Errorf("March lab cell = %v, want live 4321", point.Lab)
			}
			if point.Pharmacy != 0 {
				t.Errorf("March pharmacy cell = %v, want live 0", point.Pharmacy)
			}
		case "Jan":
			if point.Lab != 8000 || point.Pharmacy != 12000 {
				t.Errorf("January seed altered: %+v", point)
			}
		}
	}

	// The package seed must stay untouched across calls.
	if trendSeed[2].Lab != 11000 {
		t.Fatalf("trend seed mutated: %+v", trendSeed[2])
	}
}
