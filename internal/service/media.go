package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"lmsapi/internal/model"
	"lmsapi/internal/repository"
	"lmsapi/internal/storage"
)

var (
	ErrMediaNotFound   = errors.New("media not found")
	ErrReaderNil       = errors.New("reader is nil")
	ErrInvalidCategory = errors.New("unknown media category")

	// ErrUploadPolicyMissing means the organization has no policy row for the
	// category at all; the two errors below mean the row exists but a specific
	// constraint is unconfigured.
	ErrUploadPolicyMissing = errors.New("no upload policy configured for category")
	ErrSizePolicyMissing   = errors.New("upload policy has no max size configured")
	ErrMimePolicyMissing   = errors.New("upload policy has no allowed mime types configured")

	ErrFileTooLarge   = errors.New("file exceeds the maximum upload size")
	ErrMimeNotAllowed = errors.New("content type is not allowed for this category")

	// ErrCloudDeleteNotImplemented: deleting objects from the cloud backend is
	// deliberately unsupported until lifecycle rules are in place.
	ErrCloudDeleteNotImplemented = errors.New("deleting cloud-backed media is not implemented")
)

// presignExpiry bounds download URLs issued for cloud-backed media.
const presignExpiry = 15 * time.Minute

// MediaService handles policy-checked file uploads and downloads.
type MediaService interface {
	// Upload validates the file against the organization's upload policy for
	// the category, writes it to object storage and records its metadata.
	// Storage is rolled back when the metadata insert fails.
	Upload(ctx context.Context, orgID string, category model.MediaCategory, entityID, filename, contentType string, size int64, r io.Reader) (*model.Media, error)

	// Get returns media metadata by ID.
	Get(ctx context.Context, orgID, id string) (*model.Media, error)

	// DownloadURL returns a URL for fetching the object's bytes.
	DownloadURL(ctx context.Context, orgID, id string) (string, error)

	// Delete removes local-backed media from storage and the database.
	// Cloud-backed media cannot be deleted yet.
	Delete(ctx context.Context, orgID, id string) error
}

type mediaService struct {
	store    storage.Storage
	backend  model.StorageBackend
	media    repository.MediaRepository
	settings repository.SettingsRepository
}

// NewMediaService constructs a new MediaService. backend names where the
// configured store keeps its bytes and is stamped on every created record.
func NewMediaService(store storage.Storage, backend model.StorageBackend, media repository.MediaRepository, settings repository.SettingsRepository) MediaService {
	return &mediaService{store: store, backend: backend, media: media, settings: settings}
}

func (s *mediaService) Upload(ctx context.Context, orgID string, category model.MediaCategory, entityID, filename, contentType string, size int64, r io.Reader) (*model.Media, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if !model.ValidMediaCategory(category) {
		return nil, ErrInvalidCategory
	}

	policy, err := s.settings.FindUploadPolicy(ctx, orgID, category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUploadPolicyMissing
		}
		return nil, err
	}
	if policy.MaxUploadBytes <= 0 {
		return nil, ErrSizePolicyMissing
	}
	if len(policy.AllowedMimeTypes) == 0 {
		return nil, ErrMimePolicyMissing
	}
	if size > policy.MaxUploadBytes {
		return nil, ErrFileTooLarge
	}
	if !policy.AllowsMime(contentType) {
		return nil, ErrMimeNotAllowed
	}

	// Stored name is UUID + original extension; the original filename only
	// survives in object metadata.
	ext := filepath.Ext(filename)
	genName := uuid.New().String() + ext
	key := filepath.ToSlash(filepath.Join(string(category), genName))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	m := &model.Media{
		ID:          uuid.New().String(),
		OrgID:       orgID,
		Category:    category,
		EntityID:    entityID,
		Filename:    genName,
		StoragePath: objInfo.Key,
		Backend:     s.backend,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.media.Create(ctx, m)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *mediaService) Get(ctx context.Context, orgID, id string) (*model.Media, error) {
	m, err := s.media.FindByID(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *mediaService) DownloadURL(ctx context.Context, orgID, id string) (string, error) {
	m, err := s.Get(ctx, orgID, id)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, m.StoragePath, presignExpiry)
}

func (s *mediaService) Delete(ctx context.Context, orgID, id string) error {
	m, err := s.Get(ctx, orgID, id)
	if err != nil {
		return err
	}
	if m.Backend == model.StorageBackendCloud {
		return ErrCloudDeleteNotImplemented
	}
	// Delete from storage first; a failure keeps the DB row so the object
	// stays addressable.
	if err := s.store.Delete(ctx, m.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.media.Delete(ctx, orgID, id)
}
