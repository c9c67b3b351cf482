package prescription

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

const prescriptionCols = `id, patient_id, doctor_id, medicine_name, dosage, quantity,
	frequency, instructions, date_issued, status, date_fulfilled, payment_status,
	total_amount, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO prescription (
			id, patient_id, doctor_id, medicine_name, dosage, quantity,
			frequency, instructions, date_issued, status, date_fulfilled,
			payment_status, total_amount
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.PatientID, p.DoctorID, p.MedicineName, p.Dosage, p.Quantity,
		p.Frequency, p.Instructions, p.DateIssued, p.Status, p.DateFulfilled,
		p.PaymentStatus, p.TotalAmount,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	return scanPrescription(r.conn(ctx).QueryRow(ctx, `SELECT `+prescriptionCols+` FROM prescription WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *Prescription) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE prescription SET
			patient_id=$2, doctor_id=$3, medicine_name=$4, dosage=$5, quantity=$6,
			frequency=$7, instructions=$8, date_issued=$9, status=$10,
			date_fulfilled=$11, payment_status=$12, total_amount=$13, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.PatientID, p.DoctorID, p.MedicineName, p.Dosage, p.Quantity,
		p.Frequency, p.Instructions, p.DateIssued, p.Status, p.DateFulfilled,
		p.PaymentStatus, p.TotalAmount,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM prescription WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context) ([]*Prescription, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+prescriptionCols+` FROM prescription ORDER BY date_issued DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prescriptions []*Prescription
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, err
		}
		prescriptions = append(prescriptions, p)
	}
	return prescriptions, rows.Err()
}

func scanPrescription(row pgx.Row) (*Prescription, error) {
	var p Prescription
	err := row.Scan(
		&p.ID, &p.PatientID, &p.DoctorID, &p.MedicineName, &p.Dosage, &p.Quantity,
		&p.Frequency, &p.Instructions, &p.DateIssued, &p.Status, &p.DateFulfilled,
		&p.PaymentStatus, &p.TotalAmount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
