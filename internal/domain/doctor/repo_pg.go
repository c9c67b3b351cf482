package doctor

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

const doctorCols = `id, name, specialty, email, phone, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO doctor (id, name, specialty, email, phone)
		VALUES ($1,$2,$3,$4,$5)`,
		d.ID, d.Name, d.Specialty, d.Email, d.Phone,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	d, err := scanDoctor(r.conn(ctx).QueryRow(ctx, `SELECT `+doctorCols+` FROM doctor WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	slots, err := r.GetSlots(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Availability = slots
	return d, nil
}

func (r *repoPG) Update(ctx context.Context, d *Doctor) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE doctor SET name=$2, specialty=$3, email=$4, phone=$5, updated_at=NOW()
		WHERE id = $1`,
		d.ID, d.Name, d.Specialty, d.Email, d.Phone,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM doctor WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+doctorCols+` FROM doctor ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []*Doctor
	byID := make(map[uuid.UUID]*Doctor)
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.Email, &d.Phone, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		doctors = append(doctors, &d)
		byID[d.ID] = &d
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slotRows, err := r.conn(ctx).Query(ctx, `
		SELECT id, doctor_id, day, start_time, end_time
		FROM doctor_availability ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var s AvailabilitySlot
		if err := slotRows.Scan(&s.ID, &s.DoctorID, &s.Day, &s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		if d, ok := byID[s.DoctorID]; ok {
			d.Availability = append(d.Availability, &s)
		}
	}
	return doctors, slotRows.Err()
}

func (r *repoPG) GetSlots(ctx context.Context, doctorID uuid.UUID) ([]*AvailabilitySlot, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, doctor_id, day, start_time, end_time
		FROM doctor_availability WHERE doctor_id = $1 ORDER BY created_at`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []*AvailabilitySlot
	for rows.Next() {
		var s AvailabilitySlot
		if err := rows.Scan(&s.ID, &s.DoctorID, &s.Day, &s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		slots = append(slots, &s)
	}
	return slots, rows.Err()
}

func (r *repoPG) ReplaceSlots(ctx context.Context, doctorID uuid.UUID, slots []*AvailabilitySlot) error {
	if _, err := r.conn(ctx).Exec(ctx, `DELETE FROM doctor_availability WHERE doctor_id = $1`, doctorID); err != nil {
		return err
	}
	for _, s := range slots {
		s.ID = uuid.New()
		s.DoctorID = doctorID
		if _, err := r.conn(ctx).Exec(ctx, `
			INSERT INTO doctor_availability (id, doctor_id, day, start_time, end_time)
			VALUES ($1,$2,$3,$4,$5)`,
			s.ID, s.DoctorID, s.Day, s.StartTime, s.EndTime,
		); err != nil {
			return err
		}
	}
	return nil
}

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.Email, &d.Phone, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
