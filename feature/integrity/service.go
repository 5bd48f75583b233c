package integrity

import (
	"context"
	"fmt"

	"menu-manager/core/storage"
	"menu-manager/feature/catalog/models"
	"menu-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report combines every check. A check that failed to run carries its error instead.
type Report struct {
	Schema       *checks.SchemaReport  `json:"schema,omitempty"`
	SchemaError  string                `json:"schema_error,omitempty"`
	Storage      *checks.StorageReport `json:"storage,omitempty"`
	StorageError string                `json:"storage_error,omitempty"`
}

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
}

// NewService creates a new integrity service. Either db or client may be nil, which disables
// the matching check.
func NewService(db *gorm.DB, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		db:     db,
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// CheckSchema compares the catalog tables with the row models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.All())
}

// CheckStorage inspects the snapshot bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage client is not configured")
	}
	return checks.CheckStorage(ctx, s.client, s.cfg)
}

// FixStorage creates the snapshot bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("storage client is not configured")
	}
	return checks.FixStorage(ctx, s.client, s.cfg, s.logger)
}

// CheckAll runs every check and reports failures per check.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{}

	if schema, err := s.CheckSchema(); err != nil {
		report.SchemaError = err.Error()
	} else {
		report.Schema = schema
	}

	if st, err := s.CheckStorage(ctx); err != nil {
		report.StorageError = err.Error()
	} else {
		report.Storage = st
	}

	return report
}

// Healthy reports whether every check ran and passed.
func (r *Report) Healthy() bool {
	return r.Schema != nil && r.Schema.Matched && r.Storage != nil && r.Storage.BucketExists
}
