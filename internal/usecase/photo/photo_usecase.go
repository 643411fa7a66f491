package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStorage stores photo binaries and derives their public URLs.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type PhotoUseCase struct {
	photoRepo   repository.PhotoRepository
	profileRepo repository.ProfileRepository
	storage     ObjectStorage
	logger      *zap.Logger
}

func NewPhotoUseCase(
	photoRepo repository.PhotoRepository,
	profileRepo repository.ProfileRepository,
	storage ObjectStorage,
	logger *zap.Logger,
) *PhotoUseCase {
	return &PhotoUseCase{
		photoRepo:   photoRepo,
		profileRepo: profileRepo,
		storage:     storage,
		logger:      logger,
	}
}

// PhotoView is a photo row with its derived public URL
type PhotoView struct {
	*domain.Photo
	URL string `json:"url"`
}

// Upload stores the binary and inserts the metadata row. The first
// photo of a profile becomes its primary photo.
func (uc *PhotoUseCase) Upload(ctx context.Context, userID, filename, contentType string, body io.Reader) (*PhotoView, error) {
	if !allowedContentTypes[contentType] {
		return nil, domain.ErrInvalidInput
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	orderIndex, err := uc.photoRepo.NextOrderIndex(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine photo order: %w", err)
	}

	key := fmt.Sprintf("%s/%s%s",
		strings.TrimPrefix(userID, "user_"),
		uuid.NewString(),
		strings.ToLower(filepath.Ext(filename)),
	)

	if err := uc.storage.Upload(ctx, key, contentType, body); err != nil {
		return nil, err
	}

	photo := &domain.Photo{
		ID:          uuid.NewString(),
		ProfileID:   profile.ID,
		StoragePath: key,
		IsPrimary:   orderIndex == 0,
		OrderIndex:  orderIndex,
	}
	err = uc.photoRepo.Create(ctx, photo)
	if photo.IsPrimary && errors.Is(err, domain.ErrPrimaryPhotoExists) {
		// A concurrent first upload claimed the primary slot; this one
		// lands as a regular photo.
		photo.IsPrimary = false
		err = uc.photoRepo.Create(ctx, photo)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save photo record: %w", err)
	}

	return &PhotoView{Photo: photo, URL: uc.storage.PublicURL(key)}, nil
}

func (uc *PhotoUseCase) List(ctx context.Context, userID string) ([]*PhotoView, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	photos, err := uc.photoRepo.GetByProfile(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load photos: %w", err)
	}

	views := make([]*PhotoView, 0, len(photos))
	for _, photo := range photos {
		views = append(views, &PhotoView{Photo: photo, URL: uc.storage.PublicURL(photo.StoragePath)})
	}
	return views, nil
}

// SetPrimary flags the given photo as the profile's primary photo;
// every other photo of the profile is unflagged in the same statement.
func (uc *PhotoUseCase) SetPrimary(ctx context.Context, userID, photoID string) error {
	photo, profile, err := uc.ownedPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}
	return uc.photoRepo.SetPrimary(ctx, profile.ID, photo.ID)
}

func (uc *PhotoUseCase) Delete(ctx context.Context, userID, photoID string) error {
	photo, _, err := uc.ownedPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}

	if err := uc.storage.Delete(ctx, photo.StoragePath); err != nil {
		return err
	}
	return uc.photoRepo.Delete(ctx, photo.ID)
}

// ownedPhoto resolves the photo and verifies it belongs to the caller.
func (uc *PhotoUseCase) ownedPhoto(ctx context.Context, userID, photoID string) (*domain.Photo, *domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	photo, err := uc.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, nil, err
	}
	if photo.ProfileID != profile.ID {
		return nil, nil, domain.ErrPhotoNotFound
	}
	return photo, profile, nil
}
