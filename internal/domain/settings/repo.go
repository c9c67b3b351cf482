package settings

import "context"

type Repository interface {
	Get(ctx context.Context) (*ClinicSettings, error)
	Upsert(ctx context.Context, s *ClinicSettings) error
}
