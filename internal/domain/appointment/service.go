package appointment

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/medidash/medidash/internal/domain/doctor"
	"github.com/medidash/medidash/internal/domain/notification"
	"github.com/medidash/medidash/internal/domain/patient"
	"github.com/medidash/medidash/internal/platform/db"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Service struct {
	repo     Repository
	patients patient.Repository
	doctors  doctor.Repository
	notifier *notification.Service
	pool     *pgxpool.Pool
}

// NewService wires the appointment workflow. pool may be nil in tests, in
// which case create-with-new-patient runs without a surrounding transaction.
func NewService(repo Repository, patients patient.Repository, doctors doctor.Repository, notifier *notification.Service, pool *pgxpool.Pool) *Service {
	return &Service{repo: repo, patients: patients, doctors: doctors, notifier: notifier, pool: pool}
}

func (s *Service) validate(a *Appointment) error {
	if !datePattern.MatchString(a.Date) {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	normalized, err := NormalizeTime(a.Time)
	if err != nil {
		return err
	}
	a.Time = normalized
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	if a.ConsultationFee < 0 {
		return fmt.Errorf("consultation fee must not be negative")
	}
	if a.PaymentStatus == "" {
		a.PaymentStatus = PaymentUnpaid
	}
	if a.PaymentStatus != PaymentPaid && a.PaymentStatus != PaymentUnpaid {
		return fmt.Errorf("invalid payment status: %s", a.PaymentStatus)
	}
	if a.PaymentStatus == PaymentUnpaid {
		a.PaymentMode = PaymentModeNA
	}
	return nil
}

// CreateAppointment books a visit, optionally registering a new patient in
// the same transaction. The availability check is advisory: a miss is logged
// but never blocks the booking.
func (s *Service) CreateAppointment(ctx context.Context, a *Appointment, newPatient *patient.Patient) error {
	if err := s.validate(a); err != nil {
		return err
	}
	if a.AppointmentNumber == "" {
		a.AppointmentNumber = fmt.Sprintf("APT-%d", time.Now().Unix())
	}
	s.warnIfUnavailable(ctx, a)

	run := func(ctx context.Context) error {
		if newPatient != nil {
			if newPatient.Name == "" {
				return fmt.Errorf("new patient name is required")
			}
			if err := s.patients.Create(ctx, newPatient); err != nil {
				return err
			}
			a.PatientID = newPatient.ID
		}
		return s.repo.Create(ctx, a)
	}

	var err error
	if newPatient != nil && s.pool != nil {
		err = db.WithTx(ctx, s.pool, run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		return err
	}

	if s.notifier != nil {
		msg := fmt.Sprintf("Appointment %s booked for %s at %s", a.AppointmentNumber, a.Date, a.Time)
		if nerr := s.notifier.Notify(ctx, notification.TypeNewAppointment, msg, "/appointments"); nerr != nil {
			log.Warn().Err(nerr).Str("appointment", a.AppointmentNumber).Msg("failed to create booking notification")
		}
	}
	return nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateAppointment(ctx context.Context, a *Appointment) error {
	if err := s.validate(a); err != nil {
		return err
	}
	s.warnIfUnavailable(ctx, a)
	return s.repo.Update(ctx, a)
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	return s.repo.List(ctx)
}

// CheckDoctorAvailability loads the doctor's weekly windows and runs the
// pure matcher against the requested date and time.
func (s *Service) CheckDoctorAvailability(ctx context.Context, doctorID uuid.UUID, date, timeOfDay string) (AvailabilityResult, error) {
	normalized, err := NormalizeTime(timeOfDay)
	if err != nil {
		return AvailabilityResult{}, err
	}
	slots, err := s.doctors.GetSlots(ctx, doctorID)
	if err != nil {
		return AvailabilityResult{}, err
	}
	return CheckAvailability(slots, date, normalized)
}

func (s *Service) warnIfUnavailable(ctx context.Context, a *Appointment) {
	res, err := s.CheckDoctorAvailability(ctx, a.DoctorID, a.Date, a.Time)
	if err != nil {
		log.Warn().Err(err).Str("doctor_id", a.DoctorID.String()).Msg("availability check failed")
		return
	}
	if !res.Available {
		log.Warn().
			Str("doctor_id", a.DoctorID.String()).
			Str("date", a.Date).
			Str("time", a.Time).
			Str("reason", res.Message).
			Msg("booking outside doctor availability")
	}
}
