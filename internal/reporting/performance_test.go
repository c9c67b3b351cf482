package reporting

import (
	"testing"

	"github.com/google/uuid"

	"github.com/medidash/medidash/internal/domain/appointment"
	"github.com/medidash/medidash/internal/domain/doctor"
	"github.com/medidash/medidash/internal/domain/labreport"
	"github.com/medidash/medidash/internal/domain/prescription"
)

func TestComputeDoctorPerformanceRanking(t *testing.T) {
	doc1 := &doctor.Doctor{ID: uuid.New(), Name: "Dr. Mehta"}
	doc2 := &doctor.Doctor{ID: uuid.New(), Name: "Dr. Iyer"}

	appointments := []*appointment.Appointment{
		{DoctorID: doc1.ID, ConsultationFee: 500, PaymentStatus: appointment.PaymentPaid},
		{DoctorID: doc1.ID, ConsultationFee: 500, PaymentStatus: appointment.PaymentUnpaid},
		{DoctorID: doc2.ID, ConsultationFee: 2000, PaymentStatus: appointment.PaymentPaid},
	}
	prescriptions := []*prescription.Prescription{
		{DoctorID: doc1.ID, Status: prescription.StatusFulfilled, PaymentStatus: paid(), TotalAmount: amount(300)},
	}
	labReports := []*labreport.LabReport{
		{DoctorID: doc1.ID, Status: labreport.StatusCompleted, PaymentStatus: labreport.PaymentPaid, TestFee: 200},
	}

	rows := ComputeDoctorPerformance([]*doctor.Doctor{doc1, doc2}, appointments, prescriptions, labReports)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// doc2: 2000 paid consultation. doc1: 500 + 300 + 200 = 1000.
	if rows[0].Name != "Dr. Iyer" || rows[0].TotalRevenue != 2000 {
		t.Fatalf("top row = %+v, want Dr. Iyer with 2000", rows[0])
	}
	if rows[1].TotalRevenue != 1000 {
		t.Fatalf("second row revenue = %v, want 1000", rows[1].TotalRevenue)
	}
	if rows[0].PerformancePercent != 100 {
		t.Fatalf("top performance = %v, want 100", rows[0].PerformancePercent)
	}
	if rows[1].PerformancePercent != 50 {
		t.Fatalf("second performance = %v, want 50", rows[1].PerformancePercent)
	}

	// Workload counts every appointment, paid or not.
	if rows[1].AppointmentCount != 2 {
		t.Fatalf("appointment count = %d, want 2", rows[1].AppointmentCount)
	}
}

func TestComputeDoctorPerformanceZeroRevenueGuard(t *testing.T) {
	doctors := []*doctor.Doctor{
		{ID: uuid.New(), Name: "Dr. A"},
		{ID: uuid.New(), Name: "Dr. B"},
	}

	rows := ComputeDoctorPerformance(doctors, nil, nil, nil)
	for _, row := range rows {
		if row.PerformancePercent != 0 {
			t.Fatalf("performance = %v for %s, want 0 with no revenue anywhere", row.PerformancePercent, row.Name)
		}
	}
}
