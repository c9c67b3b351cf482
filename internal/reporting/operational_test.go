package reporting

import (
	"testing"

	"github.com/google/uuid"

	"github.com/medidash/medidash/internal/domain/appointment"
	"github.com/medidash/medidash/internal/domain/department"
	"github.com/medidash/medidash/internal/domain/patient"
)

func TestComputeOperationalOccupancy(t *testing.T) {
	var patients []*patient.Patient
	for i := 0; i < 15; i++ {
		patients = append(patients, &patient.Patient{AdmitDate: day("2024-08-01")})
	}
	// Discharged patients do not occupy beds.
	patients = append(patients, &patient.Patient{AdmitDate: day("2024-08-01"), DischargeDate: day("2024-08-05")})

	sum := ComputeOperational(patients, nil, nil, nil, 150)
	if sum.OccupancyRate != "10.0" {
		t.Fatalf("occupancy = %q, want \"10.0\"", sum.OccupancyRate)
	}

	sum = ComputeOperational(patients, nil, nil, nil, 0)
	if sum.OccupancyRate != "0.0" {
		t.Fatalf("occupancy with no beds = %q, want \"0.0\"", sum.OccupancyRate)
	}
}

func TestComputeOperationalAverageStay(t *testing.T) {
	patients := []*patient.Patient{
		{AdmitDate: day("2024-08-10"), DischargeDate: day("2024-08-15")},
		{AdmitDate: day("2024-08-10"), DischargeDate: day("2024-08-15")},
		{AdmitDate: day("2024-08-01")}, // still admitted, excluded
	}

	sum := ComputeOperational(patients, nil, nil, nil, 150)
	if sum.AverageStay != "5.0" {
		t.Fatalf("average stay = %q, want \"5.0\"", sum.AverageStay)
	}
}

func TestComputeOperationalAverageStaySwappedDates(t *testing.T) {
	// Absolute difference guards against swapped admit/discharge.
	patients := []*patient.Patient{
		{AdmitDate: day("2024-08-15"), DischargeDate: day("2024-08-10")},
	}
	sum := ComputeOperational(patients, nil, nil, nil, 150)
	if sum.AverageStay != "5.0" {
		t.Fatalf("average stay = %q, want \"5.0\" from swapped dates", sum.AverageStay)
	}
}

func TestComputeOperationalNoDischargedPatients(t *testing.T) {
	patients := []*patient.Patient{{AdmitDate: day("2024-08-01")}}
	sum := ComputeOperational(patients, nil, nil, nil, 150)
	if sum.AverageStay != "0" {
		t.Fatalf("average stay = %q, want \"0\" with nobody discharged", sum.AverageStay)
	}
}

func TestComputeOperationalBusiestDepartment(t *testing.T) {
	cardio := &department.Department{ID: uuid.New(), Name: "Cardiology"}
	neuro := &department.Department{ID: uuid.New(), Name: "Neurology"}
	departments := []*department.Department{cardio, neuro}

	// Tie between the two; Cardiology appears first in the appointment list.
	appointments := []*appointment.Appointment{
		{DepartmentID: cardio.ID},
		{DepartmentID: neuro.ID},
		{DepartmentID: cardio.ID},
		{DepartmentID: neuro.ID},
	}

	sum := ComputeOperational(nil, appointments, departments, nil, 150)
	if sum.BusiestDepartment != "Cardiology" {
		t.Fatalf("busiest = %q, want first-seen Cardiology on a tie", sum.BusiestDepartment)
	}
	if sum.AppointmentsByDepartment["Neurology"] != 2 {
		t.Fatalf("Neurology count = %d, want 2", sum.AppointmentsByDepartment["Neurology"])
	}
}

func TestComputeOperationalUnknownDepartment(t *testing.T) {
	appointments := []*appointment.Appointment{{DepartmentID: uuid.New()}}
	sum := ComputeOperational(nil, appointments, nil, nil, 150)
	if sum.AppointmentsByDepartment["Unknown"] != 1 {
		t.Fatalf("deleted department must fall back to Unknown, got %+v", sum.AppointmentsByDepartment)
	}
}

func TestComputeOperationalNoAppointments(t *testing.T) {
	sum := ComputeOperational(nil, nil, nil, nil, 150)
	if sum.BusiestDepartment != "N/A" {
		t.Fatalf("busiest = %q, want \"N/A\" with no appointments", sum.BusiestDepartment)
	}
}

func TestComputeOperationalGenderDemographics(t *testing.T) {
	patients := []*patient.Patient{
		{Gender: "Female"}, {Gender: "Female"}, {Gender: "Male"},
	}
	sum := ComputeOperational(patients, nil, nil, nil, 150)
	if sum.GenderDemographics["Female"] != 2 || sum.GenderDemographics["Male"] != 1 {
		t.Fatalf("demographics = %+v", sum.GenderDemographics)
	}
}
