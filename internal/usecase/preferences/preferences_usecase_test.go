package preferences

import (
	"context"
	"testing"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	byUserID map[string]*domain.Profile
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error { return nil }
func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}
func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if p, ok := r.byUserID[userID]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}
func (r *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error { return nil }
func (r *fakeProfileRepo) SetComplete(ctx context.Context, id string, complete bool) error {
	return nil
}
func (r *fakeProfileRepo) FindCandidates(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Profile, error) {
	return nil, nil
}

type fakePrefRepo struct {
	rows    map[string]*domain.Preferences
	upserts int
}

func (r *fakePrefRepo) Get(ctx context.Context, profileID string) (*domain.Preferences, error) {
	if p, ok := r.rows[profileID]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *fakePrefRepo) Upsert(ctx context.Context, prefs *domain.Preferences) error {
	clone := *prefs
	r.rows[prefs.ProfileID] = &clone
	r.upserts++
	return nil
}

func newFixture() (*PreferencesUseCase, *fakePrefRepo) {
	prefRepo := &fakePrefRepo{rows: map[string]*domain.Preferences{}}
	profileRepo := &fakeProfileRepo{byUserID: map[string]*domain.Profile{
		"user_1": {ID: "profile-1", UserID: "user_1"},
	}}
	return NewPreferencesUseCase(prefRepo, profileRepo), prefRepo
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestGetReturnsDefaultsWithoutPersisting(t *testing.T) {
	uc, prefRepo := newFixture()

	prefs, err := uc.Get(context.Background(), "user_1")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultMinAge, prefs.MinAge)
	assert.Equal(t, domain.DefaultMaxAge, prefs.MaxAge)
	assert.Equal(t, domain.DefaultMaxDistance, prefs.MaxDistance)
	assert.Empty(t, prefs.InterestedIn)
	assert.True(t, prefs.ShowMe)

	assert.Empty(t, prefRepo.rows)
	assert.Zero(t, prefRepo.upserts)
}

func TestGetReturnsStoredRow(t *testing.T) {
	uc, prefRepo := newFixture()
	prefRepo.rows["profile-1"] = &domain.Preferences{
		ProfileID: "profile-1", MinAge: 21, MaxAge: 35,
		InterestedIn: []string{"female"}, MaxDistance: 50, ShowMe: false,
	}

	prefs, err := uc.Get(context.Background(), "user_1")
	require.NoError(t, err)

	assert.Equal(t, 21, prefs.MinAge)
	assert.Equal(t, 35, prefs.MaxAge)
	assert.Equal(t, []string{"female"}, prefs.InterestedIn)
	assert.False(t, prefs.ShowMe)
}

func TestUpdateMergesPartialOverDefaults(t *testing.T) {
	uc, prefRepo := newFixture()

	prefs, err := uc.Update(context.Background(), "user_1", &UpdateRequest{
		MinAge: intPtr(25),
		ShowMe: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, 25, prefs.MinAge)
	assert.Equal(t, domain.DefaultMaxAge, prefs.MaxAge)
	assert.False(t, prefs.ShowMe)

	stored := prefRepo.rows["profile-1"]
	require.NotNil(t, stored)
	assert.Equal(t, 25, stored.MinAge)
}

func TestUpdateMergesPartialOverStoredRow(t *testing.T) {
	uc, prefRepo := newFixture()
	prefRepo.rows["profile-1"] = &domain.Preferences{
		ProfileID: "profile-1", MinAge: 21, MaxAge: 35,
		InterestedIn: []string{"female"}, MaxDistance: 50, ShowMe: true,
	}

	prefs, err := uc.Update(context.Background(), "user_1", &UpdateRequest{
		MaxAge: intPtr(40),
	})
	require.NoError(t, err)

	// Untouched fields survive the partial update.
	assert.Equal(t, 21, prefs.MinAge)
	assert.Equal(t, 40, prefs.MaxAge)
	assert.Equal(t, []string{"female"}, prefs.InterestedIn)
	assert.Equal(t, 50, prefs.MaxDistance)
}

func TestUpdateIsIdempotent(t *testing.T) {
	uc, prefRepo := newFixture()
	req := &UpdateRequest{MinAge: intPtr(22), MaxAge: intPtr(33)}

	first, err := uc.Update(context.Background(), "user_1", req)
	require.NoError(t, err)
	second, err := uc.Update(context.Background(), "user_1", req)
	require.NoError(t, err)

	assert.Equal(t, first.MinAge, second.MinAge)
	assert.Equal(t, first.MaxAge, second.MaxAge)
	assert.Equal(t, 2, prefRepo.upserts)
	assert.Len(t, prefRepo.rows, 1)
}

func TestUpdateRejectsInvertedAgeWindow(t *testing.T) {
	uc, prefRepo := newFixture()

	_, err := uc.Update(context.Background(), "user_1", &UpdateRequest{
		MinAge: intPtr(40),
		MaxAge: intPtr(25),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, prefRepo.rows)
}

func TestUpdateRejectsMinAboveStoredMax(t *testing.T) {
	uc, prefRepo := newFixture()
	prefRepo.rows["profile-1"] = &domain.Preferences{
		ProfileID: "profile-1", MinAge: 20, MaxAge: 30,
		InterestedIn: []string{}, MaxDistance: 100, ShowMe: true,
	}

	_, err := uc.Update(context.Background(), "user_1", &UpdateRequest{
		MinAge: intPtr(35),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 20, prefRepo.rows["profile-1"].MinAge)
}

func TestUnknownUserFails(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Get(context.Background(), "user_ghost")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	_, err = uc.Update(context.Background(), "user_ghost", &UpdateRequest{})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
