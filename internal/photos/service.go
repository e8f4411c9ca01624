package photos

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/lokoloapp/lokolo-backend/pkg/config"
	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
	"github.com/lokoloapp/lokolo-backend/pkg/storage/gcs"
)

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

type photosRepository interface {
	Create(ctx context.Context, photo *models.BusinessPhoto) (*models.BusinessPhoto, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.BusinessPhoto, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.BusinessPhoto, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)
	BusinessExists(ctx context.Context, businessID uuid.UUID) (bool, error)
}

type blobStore interface {
	Upload(ctx context.Context, bucket, object, contentType string, data []byte) (string, error)
	DeleteObject(ctx context.Context, bucket, object string) error
}

// Service exposes listing-photo semantics: public blob plus tracked row.
type Service interface {
	Upload(ctx context.Context, input UploadInput) (*PhotoDTO, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]PhotoDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteForBusiness(ctx context.Context, businessID uuid.UUID) error
}

type service struct {
	repo     photosRepository
	blobs    blobStore
	maxBytes int64
	logg     *logger.Logger
}

// NewService constructs a photos service backed by the repo and blob store.
func NewService(repo photosRepository, blobs blobStore, cfg config.PhotosConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("photos repository required")
	}
	if blobs == nil {
		return nil, fmt.Errorf("blob store required")
	}
	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("max upload size must be positive")
	}
	return &service{
		repo:     repo,
		blobs:    blobs,
		maxBytes: int64(cfg.MaxUploadMB) * 1024 * 1024,
		logg:     logg,
	}, nil
}

func (s *service) Upload(ctx context.Context, input UploadInput) (*PhotoDTO, error) {
	if input.BusinessID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "business id is required")
	}
	if len(input.Data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "photo file is required")
	}
	if int64(len(input.Data)) > s.maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("photo exceeds the %d MB limit", s.maxBytes/(1024*1024)))
	}
	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if _, ok := allowedContentTypes[contentType]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unsupported photo content type")
	}

	exists, err := s.repo.BusinessExists(ctx, input.BusinessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking business")
	}
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "business not found")
	}

	object := objectKey(input.BusinessID, input.FileName)
	publicURL, err := s.blobs.Upload(ctx, "", object, contentType, input.Data)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "uploading photo")
	}

	photo := &models.BusinessPhoto{
		BusinessID:  input.BusinessID,
		PhotoURL:    publicURL,
		StoragePath: object,
		IsPrimary:   input.IsPrimary,
	}
	created, err := s.repo.Create(ctx, photo)
	if err != nil {
		// Orphaned blob cleanup; the row is the source of truth.
		if delErr := s.blobs.DeleteObject(ctx, "", object); delErr != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "storage_path", object), "photos.orphan_cleanup.failed")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving photo")
	}
	return FromModel(created), nil
}

func (s *service) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]PhotoDTO, error) {
	if businessID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "business id is required")
	}
	rows, err := s.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing photos")
	}
	return FromModels(rows), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "photo id is required")
	}
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading photo")
	}
	if photo == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "photo not found")
	}

	if err := s.blobs.DeleteObject(ctx, "", photo.StoragePath); err != nil && !errors.Is(err, gcs.ErrObjectNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting photo blob")
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting photo")
	}
	return nil
}

// DeleteForBusiness removes every photo for the business. Blob deletion is
// best effort; rows are removed regardless so the listing delete can finish.
func (s *service) DeleteForBusiness(ctx context.Context, businessID uuid.UUID) error {
	if businessID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "business id is required")
	}
	rows, err := s.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing photos")
	}

	var blobErrs error
	for i := range rows {
		if err := s.blobs.DeleteObject(ctx, "", rows[i].StoragePath); err != nil && !errors.Is(err, gcs.ErrObjectNotFound) {
			blobErrs = multierr.Append(blobErrs, fmt.Errorf("%s: %w", rows[i].StoragePath, err))
		}
	}
	if blobErrs != nil && s.logg != nil {
		s.logg.Error(s.logg.WithField(ctx, "business_id", businessID.String()),
			"photos.cascade.blob_cleanup_failed", blobErrs)
	}

	if _, err := s.repo.DeleteByBusiness(ctx, businessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting photos")
	}
	return nil
}

func objectKey(businessID uuid.UUID, fileName string) string {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(fileName)))
	if ext == "" || len(ext) > 10 {
		ext = ".jpg"
	}
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("business-%s/%d-%s%s", businessID, time.Now().UnixMilli(), hex.EncodeToString(buf), ext)
}
