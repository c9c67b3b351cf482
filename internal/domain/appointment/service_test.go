package appointment

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/medidash/medidash/internal/domain/doctor"
	"github.com/medidash/medidash/internal/domain/patient"
)

type mockRepo struct {
	appointments map[uuid.UUID]*Appointment
}

func newMockRepo() *mockRepo {
	return &mockRepo{appointments: make(map[uuid.UUID]*Appointment)}
}

func (m *mockRepo) Create(_ context.Context, a *Appointment) error {
	a.ID = uuid.New()
	m.appointments[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (m *mockRepo) Update(_ context.Context, a *Appointment) error {
	m.appointments[a.ID] = a
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.appointments, id)
	return nil
}

func (m *mockRepo) List(_ context.Context) ([]*Appointment, error) {
	out := make([]*Appointment, 0, len(m.appointments))
	for _, a := range m.appointments {
		out = append(out, a)
	}
	return out, nil
}

type mockPatientRepo struct {
	created []*patient.Patient
}

func (m *mockPatientRepo) Create(_ context.Context, p *patient.Patient) error {
	p.ID = uuid.New()
	m.created = append(m.created, p)
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id uuid.UUID) (*patient.Patient, error) {
	return nil, errNotFound
}

func (m *mockPatientRepo) Update(_ context.Context, p *patient.Patient) error { return nil }
func (m *mockPatientRepo) Delete(_ context.Context, id uuid.UUID) error       { return nil }
func (m *mockPatientRepo) List(_ context.Context) ([]*patient.Patient, error) { return nil, nil }

type mockDoctorRepo struct {
	slots []*doctor.AvailabilitySlot
}

func (m *mockDoctorRepo) Create(_ context.Context, d *doctor.Doctor) error { return nil }
func (m *mockDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*doctor.Doctor, error) {
	return nil, errNotFound
}
func (m *mockDoctorRepo) Update(_ context.Context, d *doctor.Doctor) error  { return nil }
func (m *mockDoctorRepo) Delete(_ context.Context, id uuid.UUID) error      { return nil }
func (m *mockDoctorRepo) List(_ context.Context) ([]*doctor.Doctor, error)  { return nil, nil }
func (m *mockDoctorRepo) GetSlots(_ context.Context, id uuid.UUID) ([]*doctor.AvailabilitySlot, error) {
	return m.slots, nil
}
func (m *mockDoctorRepo) ReplaceSlots(_ context.Context, id uuid.UUID, slots []*doctor.AvailabilitySlot) error {
	m.slots = slots
	return nil
}

var errNotFound = errString("not found")

type errString string

func (e errString) Error() string { return string(e) }

func newTestService(repo *mockRepo, patients *mockPatientRepo, doctors *mockDoctorRepo) *Service {
	return NewService(repo, patients, doctors, nil, nil)
}

func validAppointment() *Appointment {
	return &Appointment{
		PatientID:       uuid.New(),
		DoctorID:        uuid.New(),
		DepartmentID:    uuid.New(),
		Date:            "2024-08-12",
		Time:            "10:00",
		Status:          StatusScheduled,
		ConsultationFee: 500,
		PaymentStatus:   PaymentPaid,
		PaymentMode:     "Cash",
	}
}

func TestCreateAppointmentAssignsNumber(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockPatientRepo{}, &mockDoctorRepo{})

	a := validAppointment()
	if err := svc.CreateAppointment(context.Background(), a, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(a.AppointmentNumber, "APT-") {
		t.Fatalf("appointment number = %q, want APT- prefix", a.AppointmentNumber)
	}
}

func TestCreateAppointmentForcesPaymentModeWhenUnpaid(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockPatientRepo{}, &mockDoctorRepo{})

	a := validAppointment()
	a.PaymentStatus = PaymentUnpaid
	a.PaymentMode = "Card"
	if err := svc.CreateAppointment(context.Background(), a, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.PaymentMode != PaymentModeNA {
		t.Fatalf("payment mode = %q, want %q for unpaid appointment", a.PaymentMode, PaymentModeNA)
	}
}

func TestCreateAppointmentNormalizesTime(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockPatientRepo{}, &mockDoctorRepo{})

	a := validAppointment()
	a.Time = "02:30 PM"
	if err := svc.CreateAppointment(context.Background(), a, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Time != "14:30" {
		t.Fatalf("time = %q, want canonical 14:30", a.Time)
	}
}

func TestCreateAppointmentWithNewPatient(t *testing.T) {
	patients := &mockPatientRepo{}
	svc := newTestService(newMockRepo(), patients, &mockDoctorRepo{})

	a := validAppointment()
	a.PatientID = uuid.Nil
	newPatient := &patient.Patient{Name: "Asha Rao", Age: 41, Gender: "Female"}
	if err := svc.CreateAppointment(context.Background(), a, newPatient); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients.created) != 1 {
		t.Fatalf("created %d patients, want 1", len(patients.created))
	}
	if a.PatientID != newPatient.ID {
		t.Fatal("appointment not linked to the newly created patient")
	}
}

func TestCreateAppointmentRejectsBadInput(t *testing.T) {
	svc := newTestService(newMockRepo(), &mockPatientRepo{}, &mockDoctorRepo{})

	cases := []struct {
		name   string
		mutate func(a *Appointment)
	}{
		{"bad date", func(a *Appointment) { a.Date = "12/08/2024" }},
		{"bad time", func(a *Appointment) { a.Time = "noonish" }},
		{"bad status", func(a *Appointment) { a.Status = "Done" }},
		{"negative fee", func(a *Appointment) { a.ConsultationFee = -1 }},
		{"bad payment status", func(a *Appointment) { a.PaymentStatus = "Pending" }},
	}
	for _, tc := range cases {
		a := validAppointment()
		tc.mutate(a)
		if err := svc.CreateAppointment(context.Background(), a, nil); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestCreateAppointmentOutsideAvailabilityStillSaves(t *testing.T) {
	repo := newMockRepo()
	doctors := &mockDoctorRepo{slots: []*doctor.AvailabilitySlot{
		{Day: "Monday", StartTime: "09:00", EndTime: "13:00"},
	}}
	svc := newTestService(repo, &mockPatientRepo{}, doctors)

	a := validAppointment()
	a.Date = "2024-01-10" // Wednesday, no slots
	if err := svc.CreateAppointment(context.Background(), a, nil); err != nil {
		t.Fatalf("availability miss must not block the booking: %v", err)
	}
	if len(repo.appointments) != 1 {
		t.Fatal("appointment was not saved")
	}
}

func TestCheckDoctorAvailabilityNormalizesInput(t *testing.T) {
	doctors := &mockDoctorRepo{slots: []*doctor.AvailabilitySlot{
		{Day: "Monday", StartTime: "09:00", EndTime: "13:00"},
	}}
	svc := newTestService(newMockRepo(), &mockPatientRepo{}, doctors)

	res, err := svc.CheckDoctorAvailability(context.Background(), uuid.New(), "2024-01-08", "10:30 AM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Available {
		t.Fatalf("expected 10:30 AM Monday available, got %q", res.Message)
	}
}
