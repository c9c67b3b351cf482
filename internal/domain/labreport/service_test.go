package labreport

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	reports map[uuid.UUID]*LabReport
}

func newMockRepo() *mockRepo {
	return &mockRepo{reports: make(map[uuid.UUID]*LabReport)}
}

func (m *mockRepo) Create(_ context.Context, r *LabReport) error {
	r.ID = uuid.New()
	cp := *r
	m.reports[cp.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*LabReport, error) {
	r, ok := m.reports[id]
	if !ok {
		return nil, fmt.Errorf("no report %s", id)
	}
	cp := *r
	return &cp, nil
}

func (m *mockRepo) Update(_ context.Context, r *LabReport) error {
	cp := *r
	m.reports[cp.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.reports, id)
	return nil
}

func (m *mockRepo) List(_ context.Context) ([]*LabReport, error) {
	out := make([]*LabReport, 0, len(m.reports))
	for _, r := range m.reports {
		out = append(out, r)
	}
	return out, nil
}

func createReport(t *testing.T, svc *Service) *LabReport {
	t.Helper()
	r := &LabReport{
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		TestName:  "Complete Blood Count",
		TestFee:   600,
	}
	if err := svc.CreateReport(context.Background(), r); err != nil {
		t.Fatalf("create report: %v", err)
	}
	return r
}

func TestCreateReportAssignsIdentifiers(t *testing.T) {
	svc := NewService(newMockRepo())
	r := createReport(t, svc)

	if r.ReportNumber == "" || r.SampleID == "" {
		t.Fatalf("identifiers not assigned: %q / %q", r.ReportNumber, r.SampleID)
	}
	if r.Status != StatusPending {
		t.Fatalf("status = %q, want default Pending", r.Status)
	}
	if r.SampleStatus != SampleCollected {
		t.Fatalf("sample status = %q, want default Collected", r.SampleStatus)
	}
	if r.ReportDate == "" {
		t.Fatal("report date not defaulted")
	}
}

func TestSampleStatusForwardOnly(t *testing.T) {
	svc := NewService(newMockRepo())
	r := createReport(t, svc)

	r.SampleStatus = SampleReceived
	if err := svc.UpdateReport(context.Background(), r); err != nil {
		t.Fatalf("forward transition rejected: %v", err)
	}

	r.SampleStatus = SampleCollected
	if err := svc.UpdateReport(context.Background(), r); err == nil {
		t.Fatal("expected rejection when rewinding sample status")
	}

	// Staying put is allowed.
	r.SampleStatus = SampleReceived
	if err := svc.UpdateReport(context.Background(), r); err != nil {
		t.Fatalf("same-stage update rejected: %v", err)
	}
}

func TestReportAndSampleStatusIndependent(t *testing.T) {
	svc := NewService(newMockRepo())
	r := createReport(t, svc)

	// Completing the report while the sample sits mid-pipeline is fine, and
	// the report can go back to Processing afterwards.
	r.Status = StatusCompleted
	r.SampleStatus = SampleInTransit
	if err := svc.UpdateReport(context.Background(), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Status = StatusProcessing
	if err := svc.UpdateReport(context.Background(), r); err != nil {
		t.Fatalf("report status must not be forward-only: %v", err)
	}
}

func TestUpdateReportPreservesIdentifiers(t *testing.T) {
	svc := NewService(newMockRepo())
	r := createReport(t, svc)
	origNumber, origSample := r.ReportNumber, r.SampleID

	r.ReportNumber = "LR-FORGED"
	r.SampleID = "SMP-FORGED"
	if err := svc.UpdateReport(context.Background(), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ReportNumber != origNumber || r.SampleID != origSample {
		t.Fatalf("identifiers rewritten on update: %q / %q", r.ReportNumber, r.SampleID)
	}
}

func TestCreateReportValidation(t *testing.T) {
	svc := NewService(newMockRepo())

	if err := svc.CreateReport(context.Background(), &LabReport{}); err == nil {
		t.Error("expected error for missing test name")
	}
	if err := svc.CreateReport(context.Background(), &LabReport{TestName: "CBC", Status: "Finished"}); err == nil {
		t.Error("expected error for unknown status")
	}
	if err := svc.CreateReport(context.Background(), &LabReport{TestName: "CBC", SampleStatus: "Lost"}); err == nil {
		t.Error("expected error for unknown sample status")
	}
	if err := svc.CreateReport(context.Background(), &LabReport{TestName: "CBC", TestFee: -5}); err == nil {
		t.Error("expected error for negative fee")
	}
}
