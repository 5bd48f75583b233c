package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"menu-manager/core/apperror"
	"menu-manager/core/reconcile"
	"menu-manager/core/storage"
	"menu-manager/feature/catalog"
	"menu-manager/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// exportConcurrency bounds the uploads running at once in ExportAll.
const exportConcurrency = 4

// Service moves catalog trees between the database and object storage.
type Service struct {
	catalog *catalog.Service
	client  storage.Client
	cfg     storage.Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new snapshot service.
func NewService(catalogSvc *catalog.Service, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog: catalogSvc,
		client:  client,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// KeyFor returns the object key of a restaurant's snapshot.
func (s *Service) KeyFor(restaurantID int) string {
	return s.cfg.SnapshotKey(fmt.Sprintf("restaurant-%d.json", restaurantID))
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.cfg.Bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.cfg.Bucket, err)
	}
	s.logger.Info("Created snapshot bucket", zap.String("bucket", s.cfg.Bucket))
	return nil
}

// Export writes one restaurant tree and returns its object key.
func (s *Service) Export(ctx context.Context, restaurantID int) (string, error) {
	r, err := s.catalog.GetRestaurant(restaurantID)
	if err != nil {
		return "", err
	}
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}
	return s.put(ctx, r)
}

// ExportAll writes every restaurant tree and returns the object keys in restaurant order.
func (s *Service) ExportAll(ctx context.Context) ([]string, error) {
	restaurants, err := s.catalog.ListRestaurants()
	if err != nil {
		return nil, err
	}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	keys := make([]string, len(restaurants))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)

	for i, r := range restaurants {
		g.Go(func() error {
			key, err := s.put(gctx, r)
			if err != nil {
				return err
			}
			keys[i] = key
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("Exported restaurants", zap.Int("count", len(keys)))
	return keys, nil
}

func (s *Service) put(ctx context.Context, r models.Restaurant) (string, error) {
	id, _ := r.ID.Value()
	key := s.KeyFor(id)

	data, err := json.MarshalIndent(Document{Version: FormatVersion, ExportedAt: s.now().UTC(), Restaurant: r}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal restaurant %d: %w", id, err)
	}

	_, err = s.client.PutObject(ctx, s.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return key, nil
}

// Read downloads and decodes a snapshot.
func (s *Service) Read(ctx context.Context, key string) (*Document, error) {
	if err := s.checkKey(key); err != nil {
		return nil, err
	}

	reader, err := s.client.GetObject(ctx, s.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectError(err, key)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, objectError(err, key)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperror.InvalidArgument("snapshot %s is not valid JSON: %v", key, err)
	}
	if doc.Version != FormatVersion {
		return nil, apperror.InvalidArgument("snapshot %s has version %d, expected %d", key, doc.Version, FormatVersion)
	}
	return &doc, nil
}

// Import reconciles the catalog with a stored snapshot. A snapshot whose root is
// persisted updates that restaurant; a pending root, or AsNew, creates a new one.
func (s *Service) Import(ctx context.Context, key string, opts ImportOptions) (*catalog.Result[models.Restaurant], error) {
	doc, err := s.Read(ctx, key)
	if err != nil {
		return nil, err
	}

	r := doc.Restaurant
	if opts.AsNew {
		r = Detach(r)
	}

	applied, err := s.catalog.ApplyRestaurants([]models.Restaurant{r}, reconcile.Options{DryRun: opts.DryRun})
	if err != nil {
		return nil, err
	}
	res := &catalog.Result[models.Restaurant]{
		Data:    applied.Data[0],
		DryRun:  applied.DryRun,
		Summary: applied.Summary,
		Actions: applied.Actions,
	}

	s.logger.Info("Imported snapshot",
		zap.String("key", key),
		zap.Bool("as_new", opts.AsNew),
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("actions", res.Summary.Total()),
	)
	return res, nil
}

// List returns every stored snapshot.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.cfg.Bucket, err)
	}
	entries := []Entry{}
	if !exists {
		return entries, nil
	}

	opts := minio.ListObjectsOptions{Prefix: s.prefix(), Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.cfg.Bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		entries = append(entries, Entry{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}
	return entries, nil
}

// Delete removes a stored snapshot.
func (s *Service) Delete(ctx context.Context, key string) error {
	if err := s.checkKey(key); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.cfg.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return objectError(err, key)
	}
	s.logger.Info("Deleted snapshot", zap.String("key", key))
	return nil
}

func (s *Service) prefix() string {
	if s.cfg.SnapshotPrefix == "" {
		return ""
	}
	return s.cfg.SnapshotPrefix + "/"
}

// checkKey keeps imports and deletes inside the snapshot prefix.
func (s *Service) checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return apperror.InvalidArgument("snapshot key cannot be empty")
	}
	if !strings.HasPrefix(key, s.prefix()) || strings.Contains(key, "..") {
		return apperror.InvalidArgument("snapshot key %q is outside %q", key, s.prefix())
	}
	return nil
}

func objectError(err error, key string) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return apperror.NotFound("snapshot %s does not exist", key)
	}
	return fmt.Errorf("failed to read %s: %w", key, err)
}
