package block

import (
	"context"
	"testing"
	"time"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	byID     map[string]*domain.Profile
	byUserID map[string]*domain.Profile
}

func newFakeProfileRepo(profiles ...*domain.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{
		byID:     make(map[string]*domain.Profile),
		byUserID: make(map[string]*domain.Profile),
	}
	for _, p := range profiles {
		r.byID[p.ID] = p
		r.byUserID[p.UserID] = p
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
	return nil, nil
}

// fakeBlockRepo keys rows by (blocker, blocked), mirroring the
// composite primary key.
type fakeBlockRepo struct {
	rows map[[2]string]*domain.BlockedUser
}

func newFakeBlockRepo() *fakeBlockRepo {
	return &fakeBlockRepo{rows: make(map[[2]string]*domain.BlockedUser)}
}

func (r *fakeBlockRepo) Block(ctx context.Context, blockerID, blockedID string) error {
	key := [2]string{blockerID, blockedID}
	if _, exists := r.rows[key]; exists {
		return domain.ErrAlreadyBlocked
	}
	r.rows[key] = &domain.BlockedUser{
		BlockerID: blockerID,
		BlockedID: blockedID,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *fakeBlockRepo) Unblock(ctx context.Context, blockerID, blockedID string) error {
	delete(r.rows, [2]string{blockerID, blockedID})
	return nil
}

func (r *fakeBlockRepo) GetBlockedIDs(ctx context.Context, blockerID string) ([]string, error) {
	var ids []string
	for _, b := range r.rows {
		if b.BlockerID == blockerID {
			ids = append(ids, b.BlockedID)
		}
	}
	return ids, nil
}

func (r *fakeBlockRepo) GetBlocked(ctx context.Context, blockerID string) ([]*domain.BlockedUser, error) {
	var blocked []*domain.BlockedUser
	for _, b := range r.rows {
		if b.BlockerID == blockerID {
			blocked = append(blocked, b)
		}
	}
	return blocked, nil
}

func newFixture() (*BlockUseCase, *fakeBlockRepo) {
	blockRepo := newFakeBlockRepo()
	profileRepo := newFakeProfileRepo(
		&domain.Profile{ID: "profile-1", UserID: "user_1", DisplayName: "Alex"},
		&domain.Profile{ID: "profile-2", UserID: "user_2", DisplayName: "Sam"},
	)
	return NewBlockUseCase(blockRepo, profileRepo), blockRepo
}

func TestBlockRecordsDirectedRelation(t *testing.T) {
	uc, blockRepo := newFixture()

	require.NoError(t, uc.Block(context.Background(), "user_1", "profile-2"))

	ids, err := blockRepo.GetBlockedIDs(context.Background(), "profile-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"profile-2"}, ids)

	// The relation is directed; the blocked side has no row.
	reverse, err := blockRepo.GetBlockedIDs(context.Background(), "profile-2")
	require.NoError(t, err)
	assert.Empty(t, reverse)
}

func TestBlockSelfFails(t *testing.T) {
	uc, blockRepo := newFixture()

	err := uc.Block(context.Background(), "user_1", "profile-1")
	assert.ErrorIs(t, err, domain.ErrCannotActOnSelf)
	assert.Empty(t, blockRepo.rows)
}

func TestBlockUnknownTargetFails(t *testing.T) {
	uc, blockRepo := newFixture()

	err := uc.Block(context.Background(), "user_1", "profile-ghost")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Empty(t, blockRepo.rows)
}

func TestBlockTwiceFails(t *testing.T) {
	uc, _ := newFixture()

	require.NoError(t, uc.Block(context.Background(), "user_1", "profile-2"))

	err := uc.Block(context.Background(), "user_1", "profile-2")
	assert.ErrorIs(t, err, domain.ErrAlreadyBlocked)
}

func TestUnblockRemovesRelation(t *testing.T) {
	uc, blockRepo := newFixture()

	require.NoError(t, uc.Block(context.Background(), "user_1", "profile-2"))
	require.NoError(t, uc.Unblock(context.Background(), "user_1", "profile-2"))

	assert.Empty(t, blockRepo.rows)

	// Unblocked means blockable again.
	require.NoError(t, uc.Block(context.Background(), "user_1", "profile-2"))
}

func TestListResolvesDisplayNames(t *testing.T) {
	uc, _ := newFixture()

	require.NoError(t, uc.Block(context.Background(), "user_1", "profile-2"))

	views, err := uc.List(context.Background(), "user_1")
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, "profile-2", views[0].ProfileID)
	assert.Equal(t, "Sam", views[0].DisplayName)
	assert.NotEmpty(t, views[0].BlockedAt)
}

func TestListUnknownUserFails(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.List(context.Background(), "user_ghost")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
