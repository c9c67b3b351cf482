package labreport

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"

	SampleCollected = "Collected"
	SampleInTransit = "In-Transit"
	SampleReceived  = "Received at Lab"
	SampleAnalysis  = "Under Analysis"

	PaymentPaid   = "Paid"
	PaymentUnpaid = "Unpaid"
)

var validStatuses = map[string]bool{
	StatusPending: true, StatusProcessing: true, StatusCompleted: true,
}

// sampleStage orders the courier pipeline; transitions may only move forward.
var sampleStage = map[string]int{
	SampleCollected: 0, SampleInTransit: 1, SampleReceived: 2, SampleAnalysis: 3,
}

// Parameter is one measured value on a report, kept alongside its reference
// range as free text. Stored as a JSONB array on the report row.
type Parameter struct {
	Name           string `json:"name"`
	ObservedValue  string `json:"observedValue"`
	ReferenceValue string `json:"referenceValue"`
}

// LabReport maps to the lab_report table. Report status and sample status are
// independent dimensions: a report can be Completed while its sample record
// still reads Under Analysis.
type LabReport struct {
	ID            uuid.UUID   `db:"id" json:"id"`
	ReportNumber  string      `db:"report_number" json:"reportNumber"`
	PatientID     uuid.UUID   `db:"patient_id" json:"patientId"`
	DoctorID      uuid.UUID   `db:"doctor_id" json:"doctorId"`
	TestName      string      `db:"test_name" json:"testName"`
	Parameters    []Parameter `db:"parameters" json:"parameters"`
	ResultSummary string      `db:"result_summary" json:"resultSummary"`
	ReportDate    string      `db:"report_date" json:"reportDate"`
	Status        string      `db:"status" json:"status"`
	SampleID      string      `db:"sample_id" json:"sampleId"`
	SampleStatus  string      `db:"sample_status" json:"sampleStatus"`
	TestFee       float64     `db:"test_fee" json:"testFee"`
	PaymentStatus string      `db:"payment_status" json:"paymentStatus"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updated_at"`
}
