package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const profileColumns = `
	id, user_id, display_name, age, gender, bio, occupation, education,
	city, country, relationship_goal, drinking, smoking, children,
	passions, profile_complete, created_at, updated_at
`

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.Age, &p.Gender,
		&p.Bio, &p.Occupation, &p.Education, &p.City, &p.Country,
		&p.RelationshipGoal, &p.Drinking, &p.Smoking, &p.Children,
		pq.Array(&p.Passions), &p.ProfileComplete, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, user_id, display_name, age, gender, bio, occupation, education,
			city, country, relationship_goal, drinking, smoking, children,
			passions, profile_complete
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.UserID, profile.DisplayName, profile.Age, profile.Gender,
		profile.Bio, profile.Occupation, profile.Education, profile.City, profile.Country,
		profile.RelationshipGoal, profile.Drinking, profile.Smoking, profile.Children,
		pq.Array(profile.Passions), profile.ProfileComplete,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrProfileAlreadyExists
	}
	return err
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE id = $1`, profileColumns)
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE user_id = $1`, profileColumns)
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, age = $2, gender = $3, bio = $4,
		    occupation = $5, education = $6, city = $7, country = $8,
		    relationship_goal = $9, drinking = $10, smoking = $11, children = $12,
		    passions = $13, profile_complete = $14, updated_at = CURRENT_TIMESTAMP
		WHERE id = $15
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.DisplayName, profile.Age, profile.Gender, profile.Bio,
		profile.Occupation, profile.Education, profile.City, profile.Country,
		profile.RelationshipGoal, profile.Drinking, profile.Smoking, profile.Children,
		pq.Array(profile.Passions), profile.ProfileComplete,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *profileRepository) SetComplete(ctx context.Context, id string, complete bool) error {
	query := `
		UPDATE profiles
		SET profile_complete = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, complete, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) FindCandidates(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE profile_complete = true`, profileColumns)
	args := []interface{}{}
	argCount := 1

	if len(filter.ExcludeIDs) > 0 {
		query += fmt.Sprintf(" AND NOT (id = ANY($%d))", argCount)
		args = append(args, pq.Array(filter.ExcludeIDs))
		argCount++
	}

	query += fmt.Sprintf(" AND age BETWEEN $%d AND $%d", argCount, argCount+1)
	args = append(args, filter.MinAge, filter.MaxAge)
	argCount += 2

	if len(filter.Genders) > 0 {
		query += fmt.Sprintf(" AND gender = ANY($%d)", argCount)
		args = append(args, pq.Array(filter.Genders))
		argCount++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argCount)
	args = append(args, filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// isUniqueViolation reports whether err is a postgres unique constraint
// violation (class 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
