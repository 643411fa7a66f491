package discover

import (
	"context"
	"fmt"
	"testing"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeProfileRepo applies CandidateFilter in memory the way the SQL
// query does: exclusion set, completeness, inclusive age window,
// optional gender filter, newest first, limit.
type fakeProfileRepo struct {
	byID       map[string]*domain.Profile
	byUserID   map[string]*domain.Profile
	insertions []*domain.Profile
	lastFilter *domain.CandidateFilter
}

func newFakeProfileRepo(profiles ...*domain.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{
		byID:     make(map[string]*domain.Profile),
		byUserID: make(map[string]*domain.Profile),
	}
	for _, p := range profiles {
		r.byID[p.ID] = p
		r.byUserID[p.UserID] = p
		r.insertions = append(r.insertions, p)
	}
	return r
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error { return nil }

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
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
	r.lastFilter = &filter

	excluded := make(map[string]bool, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		excluded[id] = true
	}
	wantGender := make(map[string]bool, len(filter.Genders))
	for _, g := range filter.Genders {
		wantGender[g] = true
	}

	var out []*domain.Profile
	// Newest first: reverse insertion order.
	for i := len(r.insertions) - 1; i >= 0; i-- {
		p := r.insertions[i]
		if excluded[p.ID] || !p.ProfileComplete {
			continue
		}
		if p.Age < filter.MinAge || p.Age > filter.MaxAge {
			continue
		}
		if len(wantGender) > 0 && !wantGender[p.Gender] {
			continue
		}
		out = append(out, p)
		if len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

type fakePrefRepo struct {
	rows map[string]*domain.Preferences
}

func (r *fakePrefRepo) Get(ctx context.Context, profileID string) (*domain.Preferences, error) {
	if p, ok := r.rows[profileID]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *fakePrefRepo) Upsert(ctx context.Context, prefs *domain.Preferences) error {
	r.rows[prefs.ProfileID] = prefs
	return nil
}

type fakeMatchRepo struct {
	partners map[string][]string
}

func (r *fakeMatchRepo) Create(ctx context.Context, m *domain.Match) error { return nil }
func (r *fakeMatchRepo) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	return nil, domain.ErrMatchNotFound
}
func (r *fakeMatchRepo) GetByPair(ctx context.Context, a, b string) (*domain.Match, error) {
	return nil, domain.ErrMatchNotFound
}
func (r *fakeMatchRepo) UpdateStatus(ctx context.Context, id, status string) error { return nil }
func (r *fakeMatchRepo) UpdateIcebreakers(ctx context.Context, id string, icebreakers []string) error {
	return nil
}
func (r *fakeMatchRepo) GetPartnerIDs(ctx context.Context, profileID string) ([]string, error) {
	return r.partners[profileID], nil
}
func (r *fakeMatchRepo) GetMatched(ctx context.Context, profileID string) ([]*domain.Match, error) {
	return nil, nil
}

type fakeBlockRepo struct {
	blocked map[string][]string
}

func (r *fakeBlockRepo) Block(ctx context.Context, blockerID, blockedID string) error   { return nil }
func (r *fakeBlockRepo) Unblock(ctx context.Context, blockerID, blockedID string) error { return nil }
func (r *fakeBlockRepo) GetBlockedIDs(ctx context.Context, blockerID string) ([]string, error) {
	return r.blocked[blockerID], nil
}
func (r *fakeBlockRepo) GetBlocked(ctx context.Context, blockerID string) ([]*domain.BlockedUser, error) {
	return nil, nil
}

type fakePhotoRepo struct {
	display map[string]*domain.Photo
}

func (r *fakePhotoRepo) Create(ctx context.Context, p *domain.Photo) error { return nil }
func (r *fakePhotoRepo) GetByID(ctx context.Context, id string) (*domain.Photo, error) {
	return nil, domain.ErrPhotoNotFound
}
func (r *fakePhotoRepo) GetByProfile(ctx context.Context, profileID string) ([]*domain.Photo, error) {
	return nil, nil
}
func (r *fakePhotoRepo) GetDisplayPhoto(ctx context.Context, profileID string) (*domain.Photo, error) {
	return r.display[profileID], nil
}
func (r *fakePhotoRepo) SetPrimary(ctx context.Context, profileID, photoID string) error { return nil }
func (r *fakePhotoRepo) Delete(ctx context.Context, id string) error                     { return nil }
func (r *fakePhotoRepo) NextOrderIndex(ctx context.Context, profileID string) (int, error) {
	return 0, nil
}

type fakeURLs struct{}

func (fakeURLs) PublicURL(key string) string { return "https://cdn.example.com/" + key }

type fixture struct {
	uc          *DiscoverUseCase
	profileRepo *fakeProfileRepo
	prefRepo    *fakePrefRepo
	matchRepo   *fakeMatchRepo
	blockRepo   *fakeBlockRepo
	photoRepo   *fakePhotoRepo
}

func newFixture(profiles ...*domain.Profile) *fixture {
	f := &fixture{
		profileRepo: newFakeProfileRepo(profiles...),
		prefRepo:    &fakePrefRepo{rows: map[string]*domain.Preferences{}},
		matchRepo:   &fakeMatchRepo{partners: map[string][]string{}},
		blockRepo:   &fakeBlockRepo{blocked: map[string][]string{}},
		photoRepo:   &fakePhotoRepo{display: map[string]*domain.Photo{}},
	}
	f.uc = NewDiscoverUseCase(
		f.profileRepo, f.prefRepo, f.matchRepo, f.blockRepo, f.photoRepo,
		fakeURLs{}, zap.NewNop(),
	)
	return f
}

func completeProfile(n int, age int, gender string) *domain.Profile {
	return &domain.Profile{
		ID:              fmt.Sprintf("profile-%d", n),
		UserID:          fmt.Sprintf("user_%d", n),
		DisplayName:     fmt.Sprintf("Person %d", n),
		Age:             age,
		Gender:          gender,
		Passions:        []string{},
		ProfileComplete: true,
	}
}

func candidateIDs(views []*CandidateView) []string {
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ProfileID)
	}
	return ids
}

func TestDiscoverExcludesSelfMatchedAndBlocked(t *testing.T) {
	viewer := completeProfile(1, 30, "male")
	partner := completeProfile(2, 30, "female")  // pending match, either status excludes
	blocked := completeProfile(3, 30, "female")
	fresh := completeProfile(4, 30, "female")
	f := newFixture(viewer, partner, blocked, fresh)

	f.matchRepo.partners[viewer.ID] = []string{partner.ID}
	f.blockRepo.blocked[viewer.ID] = []string{blocked.ID}

	views, err := f.uc.Discover(context.Background(), viewer.UserID)
	require.NoError(t, err)

	assert.Equal(t, []string{fresh.ID}, candidateIDs(views))
}

func TestDiscoverSkipsIncompleteProfiles(t *testing.T) {
	viewer := completeProfile(1, 30, "male")
	incomplete := completeProfile(2, 30, "female")
	incomplete.ProfileComplete = false
	complete := completeProfile(3, 30, "female")
	f := newFixture(viewer, incomplete, complete)

	views, err := f.uc.Discover(context.Background(), viewer.UserID)
	require.NoError(t, err)

	assert.Equal(t, []string{complete.ID}, candidateIDs(views))
}

func TestDiscoverAppliesAgeWindowInclusive(t *testing.T) {
	viewer := completeProfile(1, 30, "male")
	tooYoung := completeProfile(2, 24, "female")
	lowEdge := completeProfile(3, 25, "female")
	highEdge := completeProfile(4, 30, "female")
	tooOld := completeProfile(5, 31, "female")
	f := newFixture(viewer, tooYoung, lowEdge, highEdge, tooOld)

	f.prefRepo.rows[viewer.ID] = &domain.Preferences{
		ProfileID: viewer.ID, MinAge: 25, MaxAge: 30, InterestedIn: []string{}, ShowMe: true,
	}

	views, err := f.uc.Discover(context.Background(), viewer.UserID)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{lowEdge.ID, highEdge.ID}, candidateIDs(views))
}

func TestDiscoverAppliesGenderInterest(t *testing.T) {
	viewer := completeProfile(1, 30, "male")
	wanted := completeProfile(2, 30, "female")
	alsoWanted := completeProfile(3, 30, "non-binary")
	notWanted := completeProfile(4, 30, "male")
	f := newFixture(viewer, wanted, alsoWanted, notWanted)

	f.prefRepo.rows[viewer.ID] = &domain.Preferences{
		ProfileID: viewer.ID, MinAge: 18, MaxAge: 99,
		InterestedIn: []string{"female", "non-binary"}, ShowMe: true,
	}

	views, err := f.uc.Discover(context.Background(), viewer.UserID)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{wanted.ID, alsoWanted.ID}, candidateIDs(views))
}

func TestDiscoverEmptyInterestMatchesAnyGender(t *testing.T) {
	viewer := completeProfile(1, 30, "male")
	a := completeProfile(2, 30, "female")
	b := completeProfile(3, 30, "male")
	f := newFixture(viewer, a, b)

	views, err := f.uc.Discover(context.Background(), viewer.UserID)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{a.ID, b.ID}, candidateIDs(views))
}

func TestDiscoverUsesDefaultsWhenNoPreferencesStored(t *testing.T) {
	viewer := completeProfile(1, 30, "male")
	f := newFixture(viewer)

	_, err := f.uc.Discover(context.Background(), viewer.UserID)
	require.NoError(t, err)

	require.NotNil(t, f.profileRepo.lastFilter)
	assert.Equal(t, domain.DefaultMinAge, f.profileRepo.lastFilter.MinAge)
	assert.Equal(t, domain.DefaultMaxAge, f.profileRepo.lastFilter.MaxAge)
	assert.Empty(t, f.profileRepo.lastFilter.Genders)
	// Reading defaults never persists a preferences row.
	assert.Empty(t, f.prefRepo.rows)
}

func TestDiscoverCapsBatchAtTwenty(t *testing.T) {
	viewer := completeProfile(0, 30, "male")
	profiles := []*domain.Profile{viewer}
	for i := 1; i <= 30; i++ {
		profiles = append(profiles, completeProfile(i, 30, "female"))
	}
	f := newFixture(profiles...)

	views, err := f.uc.Discover(context.Background(), viewer.UserID)
	require.NoError(t, err)

	assert.Len(t, views, 20)
	// Newest first: the latest insertion leads the batch.
	assert.Equal(t, "profile-30", views[0].ProfileID)
}

func TestDiscoverEmptyBatchIsValid(t *testing.T) {
	viewer := completeProfile(1, 30, "male")
	f := newFixture(viewer)

	views, err := f.uc.Discover(context.Background(), viewer.UserID)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestDiscoverUnknownViewerFails(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Discover(context.Background(), "user_ghost")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestDiscoverResolvesDisplayPhotoURL(t *testing.T) {
	viewer := completeProfile(1, 30, "male")
	candidate := completeProfile(2, 30, "female")
	f := newFixture(viewer, candidate)

	f.photoRepo.display[candidate.ID] = &domain.Photo{
		ID: "photo-1", ProfileID: candidate.ID, StoragePath: "2/photo-1.jpg", IsPrimary: true,
	}

	views, err := f.uc.Discover(context.Background(), viewer.UserID)
	require.NoError(t, err)

	require.Len(t, views, 1)
	require.NotNil(t, views[0].PhotoURL)
	assert.Equal(t, "https://cdn.example.com/2/photo-1.jpg", *views[0].PhotoURL)
}
