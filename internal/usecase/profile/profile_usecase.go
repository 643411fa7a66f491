package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/google/uuid"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	photoRepo   repository.PhotoRepository
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	photoRepo repository.PhotoRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		photoRepo:   photoRepo,
	}
}

// CreateProfileRequest represents the profile creation form
type CreateProfileRequest struct {
	DisplayName      string   `json:"display_name" binding:"required,min=2,max=100"`
	Age              int      `json:"age" binding:"required,min=18,max=100"`
	Gender           string   `json:"gender" binding:"required,gender"`
	Bio              *string  `json:"bio" binding:"omitempty,min=10,max=500"`
	Occupation       *string  `json:"occupation" binding:"omitempty,max=100"`
	Education        *string  `json:"education" binding:"omitempty,max=100"`
	City             *string  `json:"city" binding:"omitempty,max=100"`
	Country          *string  `json:"country" binding:"omitempty,max=100"`
	RelationshipGoal *string  `json:"relationship_goal" binding:"omitempty,oneof=long-term casual-dating friendship not-sure-yet"`
	Drinking         *string  `json:"drinking" binding:"omitempty,oneof=never rarely socially regularly"`
	Smoking          *string  `json:"smoking" binding:"omitempty,oneof=never socially regularly"`
	Children         *string  `json:"children" binding:"omitempty,oneof=have want dont-want open"`
	Passions         []string `json:"passions" binding:"omitempty,max=10,dive,min=2,max=30"`
}

// UpdateProfileRequest is a partial update of the same fields
type UpdateProfileRequest struct {
	DisplayName      *string   `json:"display_name" binding:"omitempty,min=2,max=100"`
	Age              *int      `json:"age" binding:"omitempty,min=18,max=100"`
	Gender           *string   `json:"gender" binding:"omitempty,gender"`
	Bio              *string   `json:"bio" binding:"omitempty,min=10,max=500"`
	Occupation       *string   `json:"occupation" binding:"omitempty,max=100"`
	Education        *string   `json:"education" binding:"omitempty,max=100"`
	City             *string   `json:"city" binding:"omitempty,max=100"`
	Country          *string   `json:"country" binding:"omitempty,max=100"`
	RelationshipGoal *string   `json:"relationship_goal" binding:"omitempty,oneof=long-term casual-dating friendship not-sure-yet"`
	Drinking         *string   `json:"drinking" binding:"omitempty,oneof=never rarely socially regularly"`
	Smoking          *string   `json:"smoking" binding:"omitempty,oneof=never socially regularly"`
	Children         *string   `json:"children" binding:"omitempty,oneof=have want dont-want open"`
	Passions         *[]string `json:"passions" binding:"omitempty,max=10,dive,min=2,max=30"`
}

// Create creates the one profile for an external identity. A second
// call for the same identity fails with ErrProfileAlreadyExists.
func (uc *ProfileUseCase) Create(ctx context.Context, userID string, req *CreateProfileRequest) (*domain.Profile, error) {
	_, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err == nil {
		return nil, domain.ErrProfileAlreadyExists
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	passions := req.Passions
	if passions == nil {
		passions = []string{}
	}

	profile := &domain.Profile{
		ID:               uuid.NewString(),
		UserID:           userID,
		DisplayName:      req.DisplayName,
		Age:              req.Age,
		Gender:           req.Gender,
		Bio:              req.Bio,
		Occupation:       req.Occupation,
		Education:        req.Education,
		City:             req.City,
		Country:          req.Country,
		RelationshipGoal: req.RelationshipGoal,
		Drinking:         req.Drinking,
		Smoking:          req.Smoking,
		Children:         req.Children,
		Passions:         passions,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

func (uc *ProfileUseCase) GetByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	return uc.profileRepo.GetByID(ctx, profileID)
}

// Update patches the viewer's own profile.
func (uc *ProfileUseCase) Update(ctx context.Context, userID string, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Occupation != nil {
		profile.Occupation = req.Occupation
	}
	if req.Education != nil {
		profile.Education = req.Education
	}
	if req.City != nil {
		profile.City = req.City
	}
	if req.Country != nil {
		profile.Country = req.Country
	}
	if req.RelationshipGoal != nil {
		profile.RelationshipGoal = req.RelationshipGoal
	}
	if req.Drinking != nil {
		profile.Drinking = req.Drinking
	}
	if req.Smoking != nil {
		profile.Smoking = req.Smoking
	}
	if req.Children != nil {
		profile.Children = req.Children
	}
	if req.Passions != nil {
		profile.Passions = *req.Passions
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Complete marks the profile eligible for discovery. It requires at
// least one uploaded photo.
func (uc *ProfileUseCase) Complete(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	photos, err := uc.photoRepo.GetByProfile(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load photos: %w", err)
	}
	if len(photos) == 0 {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.profileRepo.SetComplete(ctx, profile.ID, true); err != nil {
		return nil, err
	}
	profile.ProfileComplete = true
	return profile, nil
}
