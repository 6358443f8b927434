package integrity

import (
	"context"
	"fmt"

	"wardrobe/core/reconcile"
	"wardrobe/core/storage"
	"wardrobe/feature/clothing/feeds"
	"wardrobe/feature/clothing/registry"
	"wardrobe/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client   storage.Client
	bucket   string
	prefix   string
	upstream feeds.Source
	db       *gorm.DB
	emulator string
	registry *registry.Registry
	logger   *zap.Logger
}

// NewService creates a new integrity service. upstream is the live feed source used
// both to verify the feeds and to repopulate the mirror.
func NewService(client storage.Client, bucket, prefix string, upstream feeds.Source, logger *zap.Logger, db *gorm.DB, emulator string) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &Service{
		client:   client,
		bucket:   bucket,
		prefix:   prefix,
		upstream: upstream,
		db:       db,
		emulator: emulator,
		logger:   logger,
	}
	if db != nil {
		reg, err := registry.New(db, emulator, logger)
		if err != nil {
			logger.Warn("Clothing registry disabled for coverage checks", zap.Error(err))
		}
		svc.registry = reg
	}
	return svc
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, checks.RequiredFolders(s.prefix))
}

// FixStructure creates the bucket if needed and the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if err := checks.EnsureBucket(ctx, s.client, s.bucket, s.logger); err != nil {
		return err
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckMirror reports which feed documents are present in the mirror.
func (s *Service) CheckMirror(ctx context.Context) (*checks.MirrorReport, error) {
	return checks.CheckMirror(ctx, s.client, s.bucket, s.prefix)
}

// FixMirror copies the live feed documents into the mirror.
func (s *Service) FixMirror(ctx context.Context) ([]string, error) {
	if s.upstream == nil {
		return nil, fmt.Errorf("no upstream source configured")
	}
	if err := checks.EnsureBucket(ctx, s.client, s.bucket, s.logger); err != nil {
		return nil, err
	}
	return feeds.Publish(ctx, s.upstream, s.client, s.bucket, s.prefix, s.logger)
}

// CheckUpstream verifies the live feeds resolve and parse.
func (s *Service) CheckUpstream(ctx context.Context) (*checks.UpstreamReport, error) {
	if s.upstream == nil {
		return nil, fmt.Errorf("no upstream source configured")
	}
	return checks.CheckUpstream(ctx, s.upstream), nil
}

// CheckRegistry verifies the emulator's catalog_clothing schema.
func (s *Service) CheckRegistry() (*checks.SchemaReport, error) {
	return checks.CheckRegistrySchema(s.db, s.emulator)
}

// CheckCoverage reconciles registry classnames, furnidata clothing records and the
// classnames the live catalog links to items.
func (s *Service) CheckCoverage(ctx context.Context) (*reconcile.Report, error) {
	if s.upstream == nil {
		return nil, fmt.Errorf("no upstream source configured")
	}
	return reconcile.Run(ctx, checks.NewCoverage(s.upstream, s.registry, s.logger))
}
