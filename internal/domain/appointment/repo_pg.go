package appointment

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medidash/medidash/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const appointmentCols = `id, appointment_number, patient_id, doctor_id, department_id,
	date, time, reason, status, consultation_fee, payment_status, payment_mode,
	created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO appointment (
			id, appointment_number, patient_id, doctor_id, department_id,
			date, time, reason, status, consultation_fee, payment_status, payment_mode
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		a.ID, a.AppointmentNumber, a.PatientID, a.DoctorID, a.DepartmentID,
		a.Date, a.Time, a.Reason, a.Status, a.ConsultationFee, a.PaymentStatus, a.PaymentMode,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return scanAppointment(r.conn(ctx).QueryRow(ctx, `SELECT `+appointmentCols+` FROM appointment WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE appointment SET
			patient_id=$2, doctor_id=$3, department_id=$4, date=$5, time=$6,
			reason=$7, status=$8, consultation_fee=$9, payment_status=$10,
			payment_mode=$11, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.PatientID, a.DoctorID, a.DepartmentID, a.Date, a.Time,
		a.Reason, a.Status, a.ConsultationFee, a.PaymentStatus, a.PaymentMode,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+appointmentCols+` FROM appointment ORDER BY date DESC, time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []*Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(
			&a.ID, &a.AppointmentNumber, &a.PatientID, &a.DoctorID, &a.DepartmentID,
			&a.Date, &a.Time, &a.Reason, &a.Status, &a.ConsultationFee,
			&a.PaymentStatus, &a.PaymentMode, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		appointments = append(appointments, &a)
	}
	return appointments, rows.Err()
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(
		&a.ID, &a.AppointmentNumber, &a.PatientID, &a.DoctorID, &a.DepartmentID,
		&a.Date, &a.Time, &a.Reason, &a.Status, &a.ConsultationFee,
		&a.PaymentStatus, &a.PaymentMode, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
