package photos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokoloapp/lokolo-backend/pkg/config"
	"github.com/lokoloapp/lokolo-backend/pkg/db/models"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
	"github.com/lokoloapp/lokolo-backend/pkg/storage/gcs"
)

type stubPhotosRepo struct {
	createFn           func(ctx context.Context, photo *models.BusinessPhoto) (*models.BusinessPhoto, error)
	findFn             func(ctx context.Context, id uuid.UUID) (*models.BusinessPhoto, error)
	listFn             func(ctx context.Context, businessID uuid.UUID) ([]models.BusinessPhoto, error)
	deleteFn           func(ctx context.Context, id uuid.UUID) (int64, error)
	deleteByBusinessFn func(ctx context.Context, businessID uuid.UUID) (int64, error)
	existsFn           func(ctx context.Context, businessID uuid.UUID) (bool, error)
}

func (s *stubPhotosRepo) Create(ctx context.Context, photo *models.BusinessPhoto) (*models.BusinessPhoto, error) {
	return s.createFn(ctx, photo)
}

func (s *stubPhotosRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.BusinessPhoto, error) {
	return s.findFn(ctx, id)
}

func (s *stubPhotosRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.BusinessPhoto, error) {
	return s.listFn(ctx, businessID)
}

func (s *stubPhotosRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubPhotosRepo) DeleteByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	return s.deleteByBusinessFn(ctx, businessID)
}

func (s *stubPhotosRepo) BusinessExists(ctx context.Context, businessID uuid.UUID) (bool, error) {
	return s.existsFn(ctx, businessID)
}

type stubBlobStore struct {
	uploadFn func(ctx context.Context, bucket, object, contentType string, data []byte) (string, error)
	deleteFn func(ctx context.Context, bucket, object string) error
	deleted  []string
}

func (s *stubBlobStore) Upload(ctx context.Context, bucket, object, contentType string, data []byte) (string, error) {
	if s.uploadFn != nil {
		return s.uploadFn(ctx, bucket, object, contentType, data)
	}
	return "https://storage.googleapis.com/lokolo-business-photos/" + object, nil
}

func (s *stubBlobStore) DeleteObject(ctx context.Context, bucket, object string) error {
	s.deleted = append(s.deleted, object)
	if s.deleteFn != nil {
		return s.deleteFn(ctx, bucket, object)
	}
	return nil
}

func photosTestConfig() config.PhotosConfig {
	return config.PhotosConfig{MaxUploadMB: 10}
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	var coded *pkgerrors.Error
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, code, coded.Code())
}

func TestUploadStoresBlobAndRow(t *testing.T) {
	businessID := uuid.New()
	var created *models.BusinessPhoto
	repo := &stubPhotosRepo{
		existsFn: func(context.Context, uuid.UUID) (bool, error) { return true, nil },
		createFn: func(_ context.Context, photo *models.BusinessPhoto) (*models.BusinessPhoto, error) {
			photo.ID = uuid.New()
			created = photo
			return photo, nil
		},
	}
	blobs := &stubBlobStore{}

	svc, err := NewService(repo, blobs, photosTestConfig(), nil)
	require.NoError(t, err)

	dto, err := svc.Upload(context.Background(), UploadInput{
		BusinessID:  businessID,
		FileName:    "Storefront.JPG",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
		IsPrimary:   true,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, businessID, dto.BusinessID)
	assert.True(t, dto.IsPrimary)
	assert.True(t, strings.HasPrefix(created.StoragePath, "business-"+businessID.String()+"/"))
	assert.True(t, strings.HasSuffix(created.StoragePath, ".jpg"))
	assert.Contains(t, dto.PhotoURL, created.StoragePath)
}

func TestUploadValidation(t *testing.T) {
	repo := &stubPhotosRepo{
		existsFn: func(context.Context, uuid.UUID) (bool, error) { return true, nil },
	}
	svc, err := NewService(repo, &stubBlobStore{}, photosTestConfig(), nil)
	require.NoError(t, err)

	cases := []struct {
		name  string
		input UploadInput
	}{
		{"missing business id", UploadInput{FileName: "a.jpg", ContentType: "image/jpeg", Data: []byte("x")}},
		{"missing file", UploadInput{BusinessID: uuid.New(), FileName: "a.jpg", ContentType: "image/jpeg"}},
		{"bad content type", UploadInput{BusinessID: uuid.New(), FileName: "a.pdf", ContentType: "application/pdf", Data: []byte("x")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), tc.input)
			assertCode(t, err, pkgerrors.CodeValidation)
		})
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	repo := &stubPhotosRepo{
		existsFn: func(context.Context, uuid.UUID) (bool, error) { return true, nil },
	}
	svc, err := NewService(repo, &stubBlobStore{}, config.PhotosConfig{MaxUploadMB: 1}, nil)
	require.NoError(t, err)

	_, err = svc.Upload(context.Background(), UploadInput{
		BusinessID:  uuid.New(),
		FileName:    "big.jpg",
		ContentType: "image/jpeg",
		Data:        make([]byte, 1024*1024+1),
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestUploadUnknownBusiness(t *testing.T) {
	repo := &stubPhotosRepo{
		existsFn: func(context.Context, uuid.UUID) (bool, error) { return false, nil },
	}
	svc, err := NewService(repo, &stubBlobStore{}, photosTestConfig(), nil)
	require.NoError(t, err)

	_, err = svc.Upload(context.Background(), UploadInput{
		BusinessID:  uuid.New(),
		FileName:    "a.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("x"),
	})
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestUploadCleansUpBlobWhenRowInsertFails(t *testing.T) {
	repo := &stubPhotosRepo{
		existsFn: func(context.Context, uuid.UUID) (bool, error) { return true, nil },
		createFn: func(context.Context, *models.BusinessPhoto) (*models.BusinessPhoto, error) {
			return nil, errors.New("insert failed")
		},
	}
	blobs := &stubBlobStore{}
	svc, err := NewService(repo, blobs, photosTestConfig(), nil)
	require.NoError(t, err)

	_, err = svc.Upload(context.Background(), UploadInput{
		BusinessID:  uuid.New(),
		FileName:    "a.png",
		ContentType: "image/png",
		Data:        []byte("x"),
	})
	assertCode(t, err, pkgerrors.CodeDependency)
	require.Len(t, blobs.deleted, 1, "failed insert must remove the just-uploaded blob")
}

func TestDeleteRemovesBlobThenRow(t *testing.T) {
	photoID := uuid.New()
	var rowDeleted bool
	repo := &stubPhotosRepo{
		findFn: func(context.Context, uuid.UUID) (*models.BusinessPhoto, error) {
			return &models.BusinessPhoto{ID: photoID, StoragePath: "business-x/1-abcd.jpg"}, nil
		},
		deleteFn: func(context.Context, uuid.UUID) (int64, error) {
			rowDeleted = true
			return 1, nil
		},
	}
	blobs := &stubBlobStore{}
	svc, err := NewService(repo, blobs, photosTestConfig(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), photoID))
	assert.Equal(t, []string{"business-x/1-abcd.jpg"}, blobs.deleted)
	assert.True(t, rowDeleted)
}

func TestDeleteNotFound(t *testing.T) {
	repo := &stubPhotosRepo{
		findFn: func(context.Context, uuid.UUID) (*models.BusinessPhoto, error) { return nil, nil },
	}
	svc, err := NewService(repo, &stubBlobStore{}, photosTestConfig(), nil)
	require.NoError(t, err)

	assertCode(t, svc.Delete(context.Background(), uuid.New()), pkgerrors.CodeNotFound)
}

func TestDeleteSurfacesBlobFailure(t *testing.T) {
	repo := &stubPhotosRepo{
		findFn: func(context.Context, uuid.UUID) (*models.BusinessPhoto, error) {
			return &models.BusinessPhoto{ID: uuid.New(), StoragePath: "business-x/1.jpg"}, nil
		},
	}
	blobs := &stubBlobStore{
		deleteFn: func(context.Context, string, string) error { return errors.New("storage down") },
	}
	svc, err := NewService(repo, blobs, photosTestConfig(), nil)
	require.NoError(t, err)

	assertCode(t, svc.Delete(context.Background(), uuid.New()), pkgerrors.CodeDependency)
}

func TestDeleteToleratesMissingBlob(t *testing.T) {
	var rowDeleted bool
	repo := &stubPhotosRepo{
		findFn: func(context.Context, uuid.UUID) (*models.BusinessPhoto, error) {
			return &models.BusinessPhoto{ID: uuid.New(), StoragePath: "business-x/1.jpg"}, nil
		},
		deleteFn: func(context.Context, uuid.UUID) (int64, error) {
			rowDeleted = true
			return 1, nil
		},
	}
	blobs := &stubBlobStore{
		deleteFn: func(context.Context, string, string) error { return gcs.ErrObjectNotFound },
	}
	svc, err := NewService(repo, blobs, photosTestConfig(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), uuid.New()))
	assert.True(t, rowDeleted)
}

func TestDeleteForBusinessRemovesRowsDespiteBlobFailures(t *testing.T) {
	businessID := uuid.New()
	var rowsDeleted bool
	repo := &stubPhotosRepo{
		listFn: func(context.Context, uuid.UUID) ([]models.BusinessPhoto, error) {
			return []models.BusinessPhoto{
				{ID: uuid.New(), StoragePath: "business-x/1.jpg"},
				{ID: uuid.New(), StoragePath: "business-x/2.jpg"},
			}, nil
		},
		deleteByBusinessFn: func(context.Context, uuid.UUID) (int64, error) {
			rowsDeleted = true
			return 2, nil
		},
	}
	blobs := &stubBlobStore{
		deleteFn: func(_ context.Context, _, object string) error {
			return fmt.Errorf("cannot delete %s", object)
		},
	}
	svc, err := NewService(repo, blobs, photosTestConfig(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteForBusiness(context.Background(), businessID))
	assert.True(t, rowsDeleted, "rows must go even when blob cleanup fails")
	assert.Len(t, blobs.deleted, 2)
}

func TestNewServiceValidation(t *testing.T) {
	repo := &stubPhotosRepo{}
	blobs := &stubBlobStore{}

	_, err := NewService(nil, blobs, photosTestConfig(), nil)
	require.Error(t, err)
	_, err = NewService(repo, nil, photosTestConfig(), nil)
	require.Error(t, err)
	_, err = NewService(repo, blobs, config.PhotosConfig{}, nil)
	require.Error(t, err)
}
