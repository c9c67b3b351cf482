package labreport

import (
	"context"
	"encoding/json"

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

const reportCols = `id, report_number, patient_id, doctor_id, test_name, parameters,
	result_summary, report_date, status, sample_id, sample_status, test_fee,
	payment_status, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, rep *LabReport) error {
	rep.ID = uuid.New()
	params, err := json.Marshal(rep.Parameters)
	if err != nil {
		return err
	}
	_, err = r.conn(ctx).Exec(ctx, `
		INSERT INTO lab_report (
			id, report_number, patient_id, doctor_id, test_name, parameters,
			result_summary, report_date, status, sample_id, sample_status,
			test_fee, payment_status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		rep.ID, rep.ReportNumber, rep.PatientID, rep.DoctorID, rep.TestName, params,
		rep.ResultSummary, rep.ReportDate, rep.Status, rep.SampleID, rep.SampleStatus,
		rep.TestFee, rep.PaymentStatus,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*LabReport, error) {
	return scanReport(r.conn(ctx).QueryRow(ctx, `SELECT `+reportCols+` FROM lab_report WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, rep *LabReport) error {
	params, err := json.Marshal(rep.Parameters)
	if err != nil {
		return err
	}
	_, err = r.conn(ctx).Exec(ctx, `
		UPDATE lab_report SET
			patient_id=$2, doctor_id=$3, test_name=$4, parameters=$5,
			result_summary=$6, report_date=$7, status=$8, sample_status=$9,
			test_fee=$10, payment_status=$11, updated_at=NOW()
		WHERE id = $1`,
		rep.ID, rep.PatientID, rep.DoctorID, rep.TestName, params,
		rep.ResultSummary, rep.ReportDate, rep.Status, rep.SampleStatus,
		rep.TestFee, rep.PaymentStatus,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM lab_report WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context) ([]*LabReport, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+reportCols+` FROM lab_report ORDER BY report_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*LabReport
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

func scanReport(row pgx.Row) (*LabReport, error) {
	var rep LabReport
	var params []byte
	err := row.Scan(
		&rep.ID, &rep.ReportNumber, &rep.PatientID, &rep.DoctorID, &rep.TestName, &params,
		&rep.ResultSummary, &rep.ReportDate, &rep.Status, &rep.SampleID, &rep.SampleStatus,
		&rep.TestFee, &rep.PaymentStatus, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &rep.Parameters); err != nil {
			return nil, err
		}
	}
	return &rep, nil
}
