package settings

import (
	"context"
	"fmt"
	"testing"
)

type mockRepo struct {
	stored *ClinicSettings
}

func (m *mockRepo) Get(_ context.Context) (*ClinicSettings, error) {
	if m.stored == nil {
		return nil, fmt.Errorf("settings not configured")
	}
	return m.stored, nil
}

func (m *mockRepo) Upsert(_ context.Context, s *ClinicSettings) error {
	m.stored = s
	return nil
}

func TestSaveSettingsUpsert(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	first := &ClinicSettings{Name: "MediDash Clinic", GSTNumber: "27ABCDE1234F1Z5", GSTRate: 18}
	if err := svc.SaveSettings(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := &ClinicSettings{Name: "MediDash Hospital", GSTRate: 12}
	if err := svc.SaveSettings(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "MediDash Hospital" {
		t.Fatalf("name = %q, want the replaced value", got.Name)
	}
}

func TestSaveSettingsValidation(t *testing.T) {
	svc := NewService(&mockRepo{})
	ctx := context.Background()

	if err := svc.SaveSettings(ctx, &ClinicSettings{}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := svc.SaveSettings(ctx, &ClinicSettings{Name: "X", GSTNumber: "not-a-gstin"}); err == nil {
		t.Error("expected error for malformed GST number")
	}
	if err := svc.SaveSettings(ctx, &ClinicSettings{Name: "X", GSTRate: 101}); err == nil {
		t.Error("expected error for out-of-range GST rate")
	}
	if err := svc.SaveSettings(ctx, &ClinicSettings{Name: "X", GSTNumber: "27ABCDE1234F1Z5"}); err != nil {
		t.Errorf("valid GSTIN rejected: %v", err)
	}
}
