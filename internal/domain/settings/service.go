package settings

import (
	"context"
	"fmt"
	"regexp"
)

// GSTIN: 2-digit state code, 10-char PAN, entity digit, "Z", check character.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetSettings(ctx context.Context) (*ClinicSettings, error) {
	return s.repo.Get(ctx)
}

func (s *Service) SaveSettings(ctx context.Context, cs *ClinicSettings) error {
	if cs.Name == "" {
		return fmt.Errorf("clinic name is required")
	}
	if cs.GSTNumber != "" && !gstinPattern.MatchString(cs.GSTNumber) {
		return fmt.Errorf("invalid GST number: %s", cs.GSTNumber)
	}
	if cs.GSTRate < 0 || cs.GSTRate > 100 {
		return fmt.Errorf("gst rate must be between 0 and 100")
	}
	return s.repo.Upsert(ctx, cs)
}
